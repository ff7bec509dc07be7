package model

import "time"

// Ticket status values as stored in the tickets.status enum column.
const (
	TicketStatusReserved = "RESERVED" // chosen but not yet paid
	TicketStatusPaid     = "PAID"     // payment confirmed
)

// TicketType classifies a ticket: whether it is for remote attendance
// and whether it includes hotel accommodation. Both flags feed the
// booking eligibility check.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the modality.
//  PriceCents    – price in cents.
//  IsRemote      – remote-only attendance; remote tickets cannot book.
//  IncludesHotel – whether hotel accommodation is part of the ticket.
type TicketType struct {
	ID            uint64 // ticket_types.id
	Name          string // ticket_types.name
	PriceCents    uint32 // ticket_types.price_cents
	IsRemote      bool   // ticket_types.is_remote
	IncludesHotel bool   // ticket_types.includes_hotel
}

// Ticket is a purchased entry tied to an enrollment.
//
// Fields:
//  ID           – primary key identifier.
//  EnrollmentID – owning enrollment.
//  TicketTypeID – foreign key into ticket_types.
//  Status       – RESERVED or PAID.
//  TicketType   – the joined type row when loaded via FindByEnrollmentID.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Ticket struct {
	ID           uint64     // tickets.id
	EnrollmentID uint64     // tickets.enrollment_id
	TicketTypeID uint64     // tickets.ticket_type_id
	Status       string     // tickets.status
	TicketType   TicketType // joined ticket_types row
	CreatedAt    time.Time  // tickets.created_at
	UpdatedAt    time.Time  // tickets.updated_at
}
