package postgres

import (
	"context"
	"database/sql"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const applicationSelect = `
	SELECT a.id, a.job_id, COALESCE(j.title, ''), a.full_name, a.email, a.phone, a.resume_key,
	       a.cover_letter, a.linkedin_url, a.portfolio_url, a.status, a.notes, a.created_at, a.updated_at
	FROM job_applications a
	LEFT JOIN job_openings j ON j.id = a.job_id`

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
type ApplicationPostgres struct {
	db *sql.DB
}

func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

func scanApplication(s scanner) (model.JobApplication, error) {
	var a model.JobApplication
	err := s.Scan(
		&a.ID,
		&a.JobID,
		&a.JobTitle,
		&a.FullName,
		&a.Email,
		&a.Phone,
		&a.ResumeKey,
		&a.CoverLetter,
		&a.LinkedInURL,
		&a.PortfolioURL,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *ApplicationPostgres) List(ctx context.Context) ([]model.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx, applicationSelect+` ORDER BY a.created_at DESC, a.id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanApplication)
}

func (r *ApplicationPostgres) FindByID(ctx context.Context, id string) (*model.JobApplication, error) {
	a, err := scanApplication(r.db.QueryRowContext(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the application and re-reads it so the job title is joined in.
func (r *ApplicationPostgres) Create(ctx context.Context, app *model.JobApplication) (*model.JobApplication, error) {
	const q = `
		INSERT INTO job_applications (id, job_id, full_name, email, phone, resume_key, cover_letter,
		                              linkedin_url, portfolio_url, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err := r.db.ExecContext(ctx, q,
		app.ID,
		app.JobID,
		app.FullName,
		app.Email,
		app.Phone,
		app.ResumeKey,
		app.CoverLetter,
		app.LinkedInURL,
		app.PortfolioURL,
		string(app.Status),
		app.Notes,
		app.CreatedAt,
		app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, app.ID)
}

func (r *ApplicationPostgres) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus, notes string) error {
	return execOne(ctx, r.db,
		`UPDATE job_applications SET status = $2, notes = $3, updated_at = now() WHERE id = $1`,
		id, string(status), notes)
}

func (r *ApplicationPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	return err
}
