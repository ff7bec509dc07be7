package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// fakeStore backs all four store interfaces with in-memory state so the
// eligibility rules can be exercised without a database.
type fakeStore struct {
	rooms      map[uint64]model.Room
	bookings   []model.Booking
	enrollment *model.Enrollment
	ticket     *model.Ticket
	nextID     uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: map[uint64]model.Room{}, nextID: 1}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeStore) FindByIDForUpdate(_ context.Context, id uint64) (model.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return model.Room{}, sql.ErrNoRows
	}
	return room, nil
}

func (f *fakeStore) FindByUserID(_ context.Context, userID uint64) (model.Booking, error) {
	for _, b := range f.bookings {
		if b.UserID == userID {
			if room, ok := f.rooms[b.RoomID]; ok {
				r := room
				b.Room = &r
			}
			return b, nil
		}
	}
	return model.Booking{}, sql.ErrNoRows
}

func (f *fakeStore) ListByRoomID(_ context.Context, roomID uint64) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, userID, roomID uint64) (model.Booking, error) {
	b := model.Booking{ID: f.nextID, UserID: userID, RoomID: roomID}
	f.nextID++
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeStore) Upsert(_ context.Context, b model.Booking) (model.Booking, error) {
	for i, existing := range f.bookings {
		if existing.ID == b.ID {
			f.bookings[i].RoomID = b.RoomID
			return f.bookings[i], nil
		}
	}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeStore) FindWithAddressByUserID(_ context.Context, userID uint64) (model.Enrollment, error) {
	if f.enrollment == nil || f.enrollment.UserID != userID {
		return model.Enrollment{}, sql.ErrNoRows
	}
	return *f.enrollment, nil
}

func (f *fakeStore) FindByEnrollmentID(_ context.Context, enrollmentID uint64) (model.Ticket, error) {
	if f.ticket == nil || f.ticket.EnrollmentID != enrollmentID {
		return model.Ticket{}, sql.ErrNoRows
	}
	return *f.ticket, nil
}

// withEligibleTicket sets up an enrollment and a PAID, in-person,
// hotel-inclusive ticket for the user.
func (f *fakeStore) withEligibleTicket(userID uint64) *fakeStore {
	f.enrollment = &model.Enrollment{ID: 10, UserID: userID}
	f.ticket = &model.Ticket{
		ID:           20,
		EnrollmentID: 10,
		Status:       model.TicketStatusPaid,
		TicketType:   model.TicketType{ID: 1, IncludesHotel: true},
	}
	return f
}

func newService(f *fakeStore) *BookingService {
	return NewBookingService(f, f, f, f)
}

func TestGetBooking(t *testing.T) {
	t.Parallel()

	t.Run("returns booking with its room", func(t *testing.T) {
		f := newFakeStore()
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 3}
		f.bookings = append(f.bookings, model.Booking{ID: 7, UserID: 42, RoomID: 1})

		b, err := newService(f).GetBooking(context.Background(), 42)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if b.ID != 7 {
			t.Fatalf("expected booking id 7, got %d", b.ID)
		}
		if b.Room == nil || b.Room.ID != 1 {
			t.Fatalf("expected joined room 1, got %+v", b.Room)
		}
	})

	t.Run("not found when user has no booking", func(t *testing.T) {
		_, err := newService(newFakeStore()).GetBooking(context.Background(), 42)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateBooking_TicketEligibility(t *testing.T) {
	t.Parallel()

	room := model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 3}

	cases := []struct {
		name    string
		setup   func(f *fakeStore)
		wantErr error
	}{
		{
			name:    "no enrollment",
			setup:   func(f *fakeStore) {},
			wantErr: ErrCannotBook,
		},
		{
			name: "enrollment without ticket",
			setup: func(f *fakeStore) {
				f.enrollment = &model.Enrollment{ID: 10, UserID: 42}
			},
			wantErr: ErrNotFound,
		},
		{
			name: "ticket only reserved",
			setup: func(f *fakeStore) {
				f.withEligibleTicket(42)
				f.ticket.Status = model.TicketStatusReserved
			},
			wantErr: ErrCannotBook,
		},
		{
			name: "remote ticket",
			setup: func(f *fakeStore) {
				f.withEligibleTicket(42)
				f.ticket.TicketType.IsRemote = true
			},
			wantErr: ErrCannotBook,
		},
		{
			name: "ticket without hotel",
			setup: func(f *fakeStore) {
				f.withEligibleTicket(42)
				f.ticket.TicketType.IncludesHotel = false
			},
			wantErr: ErrCannotBook,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeStore()
			f.rooms[room.ID] = room
			tc.setup(f)

			_, err := newService(f).CreateBooking(context.Background(), 42, room.ID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(f.bookings) != 0 {
				t.Fatalf("expected no booking written, got %d", len(f.bookings))
			}
		})
	}
}

func TestCreateBooking_RoomCapacity(t *testing.T) {
	t.Parallel()

	t.Run("creates booking when room has a free spot", func(t *testing.T) {
		f := newFakeStore().withEligibleTicket(42)
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 1}

		b, err := newService(f).CreateBooking(context.Background(), 42, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if b.RoomID != 1 || b.UserID != 42 {
			t.Fatalf("unexpected booking %+v", b)
		}
		if b.ID == 0 {
			t.Fatalf("expected booking id to be assigned")
		}
	})

	t.Run("room does not exist", func(t *testing.T) {
		f := newFakeStore().withEligibleTicket(42)

		_, err := newService(f).CreateBooking(context.Background(), 42, 99)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("room at full capacity blocks", func(t *testing.T) {
		f := newFakeStore().withEligibleTicket(42)
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 2}
		f.bookings = append(f.bookings,
			model.Booking{ID: 1, UserID: 1, RoomID: 1},
			model.Booking{ID: 2, UserID: 2, RoomID: 1},
		)

		_, err := newService(f).CreateBooking(context.Background(), 42, 1)
		if !errors.Is(err, ErrCannotBook) {
			t.Fatalf("expected ErrCannotBook, got %v", err)
		}
		if len(f.bookings) != 2 {
			t.Fatalf("expected occupant count unchanged, got %d", len(f.bookings))
		}
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Parallel()

	t.Run("moves booking to the target room", func(t *testing.T) {
		f := newFakeStore()
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 1}
		f.rooms[2] = model.Room{ID: 2, HotelID: 5, Name: "102", Capacity: 1}
		f.bookings = append(f.bookings, model.Booking{ID: 7, UserID: 42, RoomID: 1})

		b, err := newService(f).UpdateBooking(context.Background(), 42, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if b.ID != 7 {
			t.Fatalf("expected booking to keep id 7, got %d", b.ID)
		}
		if b.RoomID != 2 {
			t.Fatalf("expected room 2, got %d", b.RoomID)
		}
	})

	t.Run("no booking to move", func(t *testing.T) {
		f := newFakeStore()
		f.rooms[2] = model.Room{ID: 2, HotelID: 5, Name: "102", Capacity: 1}

		_, err := newService(f).UpdateBooking(context.Background(), 42, 2)
		if !errors.Is(err, ErrCannotBook) {
			t.Fatalf("expected ErrCannotBook, got %v", err)
		}
	})

	t.Run("target room full blocks the move", func(t *testing.T) {
		f := newFakeStore()
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 1}
		f.rooms[2] = model.Room{ID: 2, HotelID: 5, Name: "102", Capacity: 1}
		f.bookings = append(f.bookings,
			model.Booking{ID: 7, UserID: 42, RoomID: 1},
			model.Booking{ID: 8, UserID: 43, RoomID: 2},
		)

		_, err := newService(f).UpdateBooking(context.Background(), 42, 2)
		if !errors.Is(err, ErrCannotBook) {
			t.Fatalf("expected ErrCannotBook, got %v", err)
		}
	})

	t.Run("move within own full room fails because own booking counts", func(t *testing.T) {
		// The occupant count does not exclude the mover's booking, so a
		// capacity-1 room occupied by the mover rejects the no-op move.
		f := newFakeStore()
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 1}
		f.bookings = append(f.bookings, model.Booking{ID: 7, UserID: 42, RoomID: 1})

		_, err := newService(f).UpdateBooking(context.Background(), 42, 1)
		if !errors.Is(err, ErrCannotBook) {
			t.Fatalf("expected ErrCannotBook, got %v", err)
		}
	})

	t.Run("repeated move to the same room keeps the booking id", func(t *testing.T) {
		f := newFakeStore()
		f.rooms[1] = model.Room{ID: 1, HotelID: 5, Name: "101", Capacity: 2}
		f.rooms[2] = model.Room{ID: 2, HotelID: 5, Name: "102", Capacity: 2}
		f.bookings = append(f.bookings, model.Booking{ID: 7, UserID: 42, RoomID: 1})

		svc := newService(f)
		first, err := svc.UpdateBooking(context.Background(), 42, 2)
		if err != nil {
			t.Fatalf("first move: %v", err)
		}
		second, err := svc.UpdateBooking(context.Background(), 42, 2)
		if err != nil {
			t.Fatalf("second move: %v", err)
		}
		if first.ID != second.ID {
			t.Fatalf("expected stable booking id, got %d then %d", first.ID, second.ID)
		}
		if len(f.bookings) != 1 {
			t.Fatalf("expected a single booking row, got %d", len(f.bookings))
		}
	})
}
