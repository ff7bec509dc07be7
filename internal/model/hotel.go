package model

import "time"

// Hotel represents a partner hotel offering rooms to event attendees.
// Hotels and their rooms are seeded by operations tooling; this service
// only reads them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the hotel.
//  Image     – URL of the hotel's cover image (nullable).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
	ID        uint64    `json:"id"`              // hotels.id
	Name      string    `json:"name"`            // hotels.name
	Image     *string   `json:"image,omitempty"` // hotels.image (nullable)
	CreatedAt time.Time `json:"createdAt"`       // hotels.created_at
	UpdatedAt time.Time `json:"updatedAt"`       // hotels.updated_at
}
