package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// HotelRepo provides read access to the hotels table. Hotels are
// seeded outside this service, so only lookups are exposed.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// ListAll returns every hotel ordered by id.
func (r *HotelRepo) ListAll(ctx context.Context) ([]model.Hotel, error) {
	const query = `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		var image sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		if image.Valid {
			img := image.String
			h.Image = &img
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetByID returns a single hotel. sql.ErrNoRows is returned when the
// hotel does not exist.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (model.Hotel, error) {
	const query = `SELECT id, name, image, created_at, updated_at FROM hotels WHERE id = ? LIMIT 1`
	var h model.Hotel
	var image sql.NullString
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&h.ID, &h.Name, &image, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return model.Hotel{}, err
	}
	if image.Valid {
		img := image.String
		h.Image = &img
	}
	return h, nil
}
