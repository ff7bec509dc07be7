// Package service holds the booking eligibility rules: who may book a
// hotel room, which rooms can still take a booking, and who may move an
// existing booking. Handlers translate its errors into HTTP statuses;
// repositories do the actual reads and writes.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrNotFound reports that a requested resource (booking, room, ticket)
// does not exist. Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrCannotBook reports that the resource exists but a business rule
// forbids the booking. Handlers translate it into HTTP 403.
var ErrCannotBook = errors.New("cannot book")

// RoomStore supplies room rows. The lookup takes a row lock when called
// inside a BookingStore.WithTx transaction so that concurrent capacity
// checks against the same room serialize.
type RoomStore interface {
	FindByIDForUpdate(ctx context.Context, id uint64) (model.Room, error)
}

// BookingStore persists bookings. Absence is reported as sql.ErrNoRows.
type BookingStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByUserID(ctx context.Context, userID uint64) (model.Booking, error)
	ListByRoomID(ctx context.Context, roomID uint64) ([]model.Booking, error)
	Create(ctx context.Context, userID, roomID uint64) (model.Booking, error)
	Upsert(ctx context.Context, b model.Booking) (model.Booking, error)
}

// EnrollmentStore answers whether a user has a complete enrollment.
type EnrollmentStore interface {
	FindWithAddressByUserID(ctx context.Context, userID uint64) (model.Enrollment, error)
}

// TicketStore supplies a ticket (with its type) for an enrollment.
type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (model.Ticket, error)
}

// BookingService decides whether a user may book or rebook a room and
// orchestrates the create/update. All stores are injected so tests can
// substitute in-memory fakes.
type BookingService struct {
	rooms       RoomStore
	bookings    BookingStore
	enrollments EnrollmentStore
	tickets     TicketStore
}

// NewBookingService constructs a BookingService. All dependencies must
// be non-nil.
func NewBookingService(rooms RoomStore, bookings BookingStore, enrollments EnrollmentStore, tickets TicketStore) *BookingService {
	if rooms == nil || bookings == nil || enrollments == nil || tickets == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{
		rooms:       rooms,
		bookings:    bookings,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// GetBooking returns the user's current booking with its room, or
// ErrNotFound when the user has none. No side effects.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (model.Booking, error) {
	b, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// CreateBooking books a room for a user. The user's ticket must be
// eligible (paid, in-person, hotel included) and the room must have a
// free spot. The capacity check and the insert run in one transaction
// with the room row locked, so two concurrent requests for the last
// free spot cannot both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (model.Booking, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return model.Booking{}, err
	}
	var created model.Booking
	err := s.bookings.WithTx(ctx, func(ctx context.Context) error {
		room, err := s.checkRoomCapacity(ctx, roomID)
		if err != nil {
			return err
		}
		b, err := s.bookings.Create(ctx, userID, roomID)
		if err != nil {
			return err
		}
		b.Room = &room
		created = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

// UpdateBooking moves the user's existing booking to another room. The
// target room must have a free spot; the occupant count includes the
// mover's own booking, so moving within an already-full room fails —
// a quirk of the original rules that is kept on purpose. Fails with
// ErrCannotBook when the user has no booking to move.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID uint64) (model.Booking, error) {
	var moved model.Booking
	err := s.bookings.WithTx(ctx, func(ctx context.Context) error {
		room, err := s.checkRoomCapacity(ctx, roomID)
		if err != nil {
			return err
		}
		current, err := s.bookings.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCannotBook
			}
			return err
		}
		// The lookup already filters by user; the ownership check is kept
		// as documented for the rebooking rule.
		if current.UserID != userID {
			return ErrCannotBook
		}
		b, err := s.bookings.Upsert(ctx, model.Booking{ID: current.ID, UserID: userID, RoomID: roomID})
		if err != nil {
			return err
		}
		b.Room = &room
		moved = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return moved, nil
}

// checkTicketEligibility verifies the user may book at all: they must
// have an enrollment with an address, and a paid in-person ticket whose
// type includes hotel accommodation.
func (s *BookingService) checkTicketEligibility(ctx context.Context, userID uint64) error {
	enrollment, err := s.enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCannotBook
		}
		return err
	}
	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if ticket.Status == model.TicketStatusReserved || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return ErrCannotBook
	}
	return nil
}

// checkRoomCapacity verifies the room exists and still has a free spot,
// returning the room on success. The comparison is against the occupant
// count before the new booking is added: a room at exactly full
// capacity already blocks.
func (s *BookingService) checkRoomCapacity(ctx context.Context, roomID uint64) (model.Room, error) {
	room, err := s.rooms.FindByIDForUpdate(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Room{}, ErrNotFound
		}
		return model.Room{}, err
	}
	occupants, err := s.bookings.ListByRoomID(ctx, roomID)
	if err != nil {
		return model.Room{}, err
	}
	if int(room.Capacity) <= len(occupants) {
		return model.Room{}, ErrCannotBook
	}
	return room, nil
}
