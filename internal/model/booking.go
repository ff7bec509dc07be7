package model

import "time"

// Booking associates a user with the room they reserved. A user holds
// at most one active booking; the invariant is enforced by the
// eligibility service, not by a storage constraint. Bookings are never
// deleted by this module — moving to another room updates RoomID in
// place.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user.
//  RoomID    – reserved room.
//  Room      – the joined room row when loaded via FindByUserID.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    `json:"id"`             // bookings.id
	UserID    uint64    `json:"userId"`         // bookings.user_id
	RoomID    uint64    `json:"roomId"`         // bookings.room_id
	Room      *Room     `json:"Room,omitempty"` // joined rooms row; key casing matches the public API
	CreatedAt time.Time `json:"createdAt"`      // bookings.created_at
	UpdatedAt time.Time `json:"updatedAt"`      // bookings.updated_at
}
