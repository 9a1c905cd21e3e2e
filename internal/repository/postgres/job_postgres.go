package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const jobColumns = `id, title, slug, department, location, contract_type, description, requirements, is_active, created_at, updated_at`

// JobPostgres is a PostgreSQL implementation of repository.JobRepository.
type JobPostgres struct {
	db *sql.DB
}

// NewJobPostgres creates a new JobPostgres repository.
func NewJobPostgres(db *sql.DB) *JobPostgres {
	return &JobPostgres{db: db}
}

var _ repository.JobRepository = (*JobPostgres)(nil)

func scanJob(s scanner) (model.JobOpening, error) {
	var (
		j    model.JobOpening
		reqs []byte
	)
	if err := s.Scan(
		&j.ID,
		&j.Title,
		&j.Slug,
		&j.Department,
		&j.Location,
		&j.ContractType,
		&j.Description,
		&reqs,
		&j.IsActive,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return j, err
	}
	j.Requirements = []string{}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &j.Requirements); err != nil {
			return j, fmt.Errorf("decode requirements: %w", err)
		}
	}
	return j, nil
}

func encodeRequirements(reqs []string) (string, error) {
	if reqs == nil {
		reqs = []string{}
	}
	b, err := json.Marshal(reqs)
	if err != nil {
		return "", fmt.Errorf("encode requirements: %w", err)
	}
	return string(b), nil
}

// List returns every opening, newest first.
func (r *JobPostgres) List(ctx context.Context) ([]model.JobOpening, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM job_openings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanJob)
}

// FindByID fetches a single opening by its ID.
func (r *JobPostgres) FindByID(ctx context.Context, id string) (*model.JobOpening, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM job_openings WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new opening and returns the stored record.
func (r *JobPostgres) Create(ctx context.Context, job *model.JobOpening) (*model.JobOpening, error) {
	reqs, err := encodeRequirements(job.Requirements)
	if err != nil {
		return nil, err
	}
	q := `
		INSERT INTO job_openings (id, title, slug, department, location, contract_type, description, requirements, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11)
		RETURNING ` + jobColumns
	row := r.db.QueryRowContext(ctx, q,
		job.ID,
		job.Title,
		job.Slug,
		job.Department,
		job.Location,
		string(job.ContractType),
		job.Description,
		reqs,
		job.IsActive,
		job.CreatedAt,
		job.UpdatedAt,
	)
	out, err := scanJob(row)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// Update rewrites the editable fields of an opening.
func (r *JobPostgres) Update(ctx context.Context, job *model.JobOpening) (*model.JobOpening, error) {
	reqs, err := encodeRequirements(job.Requirements)
	if err != nil {
		return nil, err
	}
	q := `
		UPDATE job_openings
		SET title = $2, slug = $3, department = $4, location = $5, contract_type = $6,
		    description = $7, requirements = $8::jsonb, is_active = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + jobColumns
	row := r.db.QueryRowContext(ctx, q,
		job.ID,
		job.Title,
		job.Slug,
		job.Department,
		job.Location,
		string(job.ContractType),
		job.Description,
		reqs,
		job.IsActive,
		job.UpdatedAt,
	)
	out, err := scanJob(row)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// SetActive opens or closes an opening.
func (r *JobPostgres) SetActive(ctx context.Context, id string, active bool) error {
	return execOne(ctx, r.db, `UPDATE job_openings SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
}

// Delete removes an opening by ID. Applications cascade. A missing row is not an error.
func (r *JobPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_openings WHERE id = $1`, id)
	return err
}
