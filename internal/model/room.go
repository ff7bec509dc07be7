package model

import "time"

// Room is a bookable hotel room. Capacity is the maximum number of
// simultaneous bookings the room admits; the eligibility service
// compares it against the current occupant count before admitting a
// new or moved booking. Rooms are immutable from this module's point
// of view.
//
// Fields:
//  ID        – primary key identifier.
//  HotelID   – hotel the room belongs to.
//  Name      – room label (e.g. "101").
//  Capacity  – maximum simultaneous bookings (positive).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    `json:"id"`        // rooms.id
	HotelID   uint64    `json:"hotelId"`   // rooms.hotel_id
	Name      string    `json:"name"`      // rooms.name
	Capacity  uint32    `json:"capacity"`  // rooms.capacity
	CreatedAt time.Time `json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `json:"updatedAt"` // rooms.updated_at
}
