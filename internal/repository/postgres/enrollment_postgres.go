package postgres

import (
	"context"
	"database/sql"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const enrollmentColumns = `id, full_name, email, phone, country, city, formula, amount, payment_status, status, notes, created_at, updated_at`

// EnrollmentPostgres is a PostgreSQL implementation of repository.EnrollmentRepository.
type EnrollmentPostgres struct {
	db *sql.DB
}

func NewEnrollmentPostgres(db *sql.DB) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

var _ repository.EnrollmentRepository = (*EnrollmentPostgres)(nil)

func scanEnrollment(s scanner) (model.Enrollment, error) {
	var e model.Enrollment
	err := s.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.Country,
		&e.City,
		&e.Formula,
		&e.Amount,
		&e.PaymentStatus,
		&e.Status,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *EnrollmentPostgres) List(ctx context.Context) ([]model.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+enrollmentColumns+` FROM enrollments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEnrollment)
}

func (r *EnrollmentPostgres) FindByID(ctx context.Context, id string) (*model.Enrollment, error) {
	e, err := scanEnrollment(r.db.QueryRowContext(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentPostgres) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	q := `
		INSERT INTO enrollments (` + enrollmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + enrollmentColumns
	out, err := scanEnrollment(r.db.QueryRowContext(ctx, q,
		e.ID,
		e.FullName,
		e.Email,
		e.Phone,
		e.Country,
		e.City,
		e.Formula,
		e.Amount,
		string(e.PaymentStatus),
		string(e.Status),
		e.Notes,
		e.CreatedAt,
		e.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EnrollmentPostgres) UpdateStatus(ctx context.Context, id string, status model.EnrollmentStatus, payment model.PaymentStatus, notes string) error {
	return execOne(ctx, r.db,
		`UPDATE enrollments SET status = $2, payment_status = $3, notes = $4, updated_at = now() WHERE id = $1`,
		id, string(status), string(payment), notes)
}

func (r *EnrollmentPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	return err
}
