// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is created or moved
// to another room. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	RoomID      uint64 `json:"room_id"`
	HotelID     uint64 `json:"hotel_id"`
	RoomName    string `json:"room_name"`
	ConfirmedAt string `json:"confirmed_at"`
}
