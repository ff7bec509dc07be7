package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// EnrollmentRepo provides read access to event enrollments. The
// booking eligibility check needs to know whether a user is enrolled
// and has completed their address.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo returns a new EnrollmentRepo bound to the given database.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// FindWithAddressByUserID returns the user's enrollment provided it has
// at least one address on file. An enrollment without an address is
// treated as absent (sql.ErrNoRows), matching the eligibility rule that
// incomplete registrations cannot book.
func (r *EnrollmentRepo) FindWithAddressByUserID(ctx context.Context, userID uint64) (model.Enrollment, error) {
	const query = `SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at, e.updated_at
	               FROM enrollments e
	               JOIN addresses a ON a.enrollment_id = e.id
	               WHERE e.user_id = ?
	               LIMIT 1`
	var e model.Enrollment
	err := q(ctx, r.db).QueryRowContext(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return model.Enrollment{}, err
	}
	return e, nil
}
