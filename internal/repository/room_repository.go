package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomRepo provides read access to the rooms table. Rooms are immutable
// for this service; creation and mutation happen in admin tooling.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, hotel_id, name, capacity, created_at, updated_at`

// FindByID returns the room with the given id, or sql.ErrNoRows when it
// does not exist.
func (r *RoomRepo) FindByID(ctx context.Context, id uint64) (model.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = ? LIMIT 1`
	return r.scanRoom(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

// FindByIDForUpdate is FindByID with a row lock. Inside a transaction
// it serializes concurrent capacity checks against the same room, which
// is what keeps two simultaneous bookings from both grabbing the last
// free spot.
func (r *RoomRepo) FindByIDForUpdate(ctx context.Context, id uint64) (model.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = ? LIMIT 1 FOR UPDATE`
	return r.scanRoom(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

// ListByHotelID returns all rooms of a hotel ordered by name.
func (r *RoomRepo) ListByHotelID(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = ? ORDER BY name`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *RoomRepo) scanRoom(row *sql.Row) (model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return model.Room{}, err
	}
	return rm, nil
}
