package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// TicketRepo provides read access to tickets and their types.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// FindByEnrollmentID returns the ticket purchased under an enrollment,
// with its TicketType populated. sql.ErrNoRows is returned when the
// enrollment has no ticket.
func (r *TicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (model.Ticket, error) {
	const query = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	                      tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel
	               FROM tickets t
	               JOIN ticket_types tt ON tt.id = t.ticket_type_id
	               WHERE t.enrollment_id = ?
	               LIMIT 1`
	var t model.Ticket
	err := q(ctx, r.db).QueryRowContext(ctx, query, enrollmentID).Scan(
		&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.TicketType.ID, &t.TicketType.Name, &t.TicketType.PriceCents,
		&t.TicketType.IsRemote, &t.TicketType.IncludesHotel,
	)
	if err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}
