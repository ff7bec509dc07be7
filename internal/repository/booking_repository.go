package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings. A booking is the
// association of a user with a room; a user is expected to hold at most
// one. All timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// WithTx runs fn inside a single database transaction. Repository calls
// made from fn (on this or any other repository sharing the database)
// join the transaction via the context.
func (r *BookingRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.db, fn)
}

// FindByUserID returns the user's booking together with its room, or
// sql.ErrNoRows when the user has none. When more than one row exists
// (which the service never produces) the oldest wins.
func (r *BookingRepo) FindByUserID(ctx context.Context, userID uint64) (model.Booking, error) {
	const query = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                      r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
	               FROM bookings b
	               JOIN rooms r ON r.id = b.room_id
	               WHERE b.user_id = ?
	               ORDER BY b.id
	               LIMIT 1`
	var b model.Booking
	var rm model.Room
	err := q(ctx, r.db).QueryRowContext(ctx, query, userID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}
	b.Room = &rm
	return b, nil
}

// ListByRoomID returns all bookings currently placed in a room. The
// capacity check only uses the length of the result.
func (r *BookingRepo) ListByRoomID(ctx context.Context, roomID uint64) ([]model.Booking, error) {
	const query = `SELECT id, user_id, room_id, created_at, updated_at
	               FROM bookings WHERE room_id = ? ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts a new booking row and returns it with the generated id
// and timestamps populated.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (model.Booking, error) {
	const ins = `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`
	res, err := q(ctx, r.db).ExecContext(ctx, ins, userID, roomID)
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	return r.getByID(ctx, uint64(id))
}

// Upsert creates the booking when no row with b.ID exists, otherwise it
// updates the row's room_id. The stored row is returned.
func (r *BookingRepo) Upsert(ctx context.Context, b model.Booking) (model.Booking, error) {
	const ups = `INSERT INTO bookings (id, user_id, room_id) VALUES (?, ?, ?)
	             ON DUPLICATE KEY UPDATE room_id = VALUES(room_id)`
	if _, err := q(ctx, r.db).ExecContext(ctx, ups, b.ID, b.UserID, b.RoomID); err != nil {
		return model.Booking{}, err
	}
	return r.getByID(ctx, b.ID)
}

func (r *BookingRepo) getByID(ctx context.Context, id uint64) (model.Booking, error) {
	const sel = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = ? LIMIT 1`
	var b model.Booking
	err := q(ctx, r.db).QueryRowContext(ctx, sel, id).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}
