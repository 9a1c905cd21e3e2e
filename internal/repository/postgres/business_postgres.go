package postgres

import (
	"context"
	"database/sql"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const businessColumns = `id, name, slug, category, description, price, monthly_revenue, image_key, status, created_at, updated_at`

// BusinessPostgres is a PostgreSQL implementation of repository.BusinessRepository.
type BusinessPostgres struct {
	db *sql.DB
}

func NewBusinessPostgres(db *sql.DB) *BusinessPostgres {
	return &BusinessPostgres{db: db}
}

var _ repository.BusinessRepository = (*BusinessPostgres)(nil)

func scanBusiness(s scanner) (model.Business, error) {
	var b model.Business
	err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Category,
		&b.Description,
		&b.Price,
		&b.MonthlyRevenue,
		&b.ImageKey,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *BusinessPostgres) List(ctx context.Context) ([]model.Business, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+businessColumns+` FROM businesses ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBusiness)
}

func (r *BusinessPostgres) FindByID(ctx context.Context, id string) (*model.Business, error) {
	b, err := scanBusiness(r.db.QueryRowContext(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessPostgres) Create(ctx context.Context, b *model.Business) (*model.Business, error) {
	q := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + businessColumns
	out, err := scanBusiness(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Name,
		b.Slug,
		b.Category,
		b.Description,
		b.Price,
		b.MonthlyRevenue,
		b.ImageKey,
		string(b.Status),
		b.CreatedAt,
		b.UpdatedAt,
	))
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// Update rewrites the listing fields and status. The image has its own write.
func (r *BusinessPostgres) Update(ctx context.Context, b *model.Business) (*model.Business, error) {
	q := `
		UPDATE businesses
		SET name = $2, slug = $3, category = $4, description = $5, price = $6, monthly_revenue = $7, status = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + businessColumns
	out, err := scanBusiness(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Name,
		b.Slug,
		b.Category,
		b.Description,
		b.Price,
		b.MonthlyRevenue,
		string(b.Status),
		b.UpdatedAt,
	))
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *BusinessPostgres) UpdateStatus(ctx context.Context, id string, status model.BusinessStatus) error {
	return execOne(ctx, r.db, `UPDATE businesses SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
}

func (r *BusinessPostgres) SetImage(ctx context.Context, id, key string) error {
	return execOne(ctx, r.db, `UPDATE businesses SET image_key = $2, updated_at = now() WHERE id = $1`, id, key)
}

func (r *BusinessPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	return err
}
