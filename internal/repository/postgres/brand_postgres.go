package postgres

import (
	"context"
	"database/sql"

	"tekki/internal/model"
	"tekki/internal/repository"
)

const brandColumns = `id, name, slug, category, description, logo_url, website_url, featured, created_at`

// BrandPostgres is a PostgreSQL implementation of repository.BrandRepository.
type BrandPostgres struct {
	db *sql.DB
}

func NewBrandPostgres(db *sql.DB) *BrandPostgres {
	return &BrandPostgres{db: db}
}

var _ repository.BrandRepository = (*BrandPostgres)(nil)

func scanBrand(s scanner) (model.Brand, error) {
	var b model.Brand
	err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Category,
		&b.Description,
		&b.LogoURL,
		&b.WebsiteURL,
		&b.Featured,
		&b.CreatedAt,
	)
	return b, err
}

// List returns featured brands first, then alphabetically.
func (r *BrandPostgres) List(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY featured DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBrand)
}

func (r *BrandPostgres) FindByID(ctx context.Context, id string) (*model.Brand, error) {
	b, err := scanBrand(r.db.QueryRowContext(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandPostgres) Create(ctx context.Context, b *model.Brand) (*model.Brand, error) {
	q := `
		INSERT INTO brands (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + brandColumns
	out, err := scanBrand(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Name,
		b.Slug,
		b.Category,
		b.Description,
		b.LogoURL,
		b.WebsiteURL,
		b.Featured,
		b.CreatedAt,
	))
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *BrandPostgres) Update(ctx context.Context, b *model.Brand) (*model.Brand, error) {
	q := `
		UPDATE brands
		SET name = $2, slug = $3, category = $4, description = $5, logo_url = $6, website_url = $7, featured = $8
		WHERE id = $1
		RETURNING ` + brandColumns
	out, err := scanBrand(r.db.QueryRowContext(ctx, q,
		b.ID,
		b.Name,
		b.Slug,
		b.Category,
		b.Description,
		b.LogoURL,
		b.WebsiteURL,
		b.Featured,
	))
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *BrandPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	return err
}
