package postgres

import (
	"context"
	"database/sql"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const leadColumns = `id, full_name, email, phone, company, formula, source, message, status, notes, created_at, updated_at`

// LeadPostgres is a PostgreSQL implementation of repository.LeadRepository.
type LeadPostgres struct {
	db *sql.DB
}

func NewLeadPostgres(db *sql.DB) *LeadPostgres {
	return &LeadPostgres{db: db}
}

var _ repository.LeadRepository = (*LeadPostgres)(nil)

func scanLead(s scanner) (model.Lead, error) {
	var l model.Lead
	err := s.Scan(
		&l.ID,
		&l.FullName,
		&l.Email,
		&l.Phone,
		&l.Company,
		&l.Formula,
		&l.Source,
		&l.Message,
		&l.Status,
		&l.Notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func (r *LeadPostgres) List(ctx context.Context) ([]model.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLead)
}

func (r *LeadPostgres) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	l, err := scanLead(r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadPostgres) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	q := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + leadColumns
	out, err := scanLead(r.db.QueryRowContext(ctx, q,
		lead.ID,
		lead.FullName,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Formula,
		lead.Source,
		lead.Message,
		string(lead.Status),
		lead.Notes,
		lead.CreatedAt,
		lead.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LeadPostgres) UpdateStatus(ctx context.Context, id string, status model.LeadStatus, notes string) error {
	return execOne(ctx, r.db,
		`UPDATE leads SET status = $2, notes = $3, updated_at = now() WHERE id = $1`,
		id, string(status), notes)
}

func (r *LeadPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}
