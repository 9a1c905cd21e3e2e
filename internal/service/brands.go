package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/repository"
	"tekki/internal/validation"
)

// BrandInput is the admin payload for a showcased brand.
type BrandInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
	Featured    bool   `json:"featured"`
}

func (in BrandInput) normalized() BrandInput {
	in.Name = trim(in.Name)
	in.Category = trim(in.Category)
	in.Description = trim(in.Description)
	in.LogoURL = trim(in.LogoURL)
	in.WebsiteURL = trim(in.WebsiteURL)
	return in
}

type BrandService interface {
	// Showcase returns every brand, featured first then by name.
	Showcase(ctx context.Context) ([]model.Brand, error)

	List(ctx context.Context, q listing.Query) (*ListResult[model.Brand], error)
	Get(ctx context.Context, id string) (*model.Brand, error)
	Create(ctx context.Context, in BrandInput) (*model.Brand, error)
	Update(ctx context.Context, id string, in BrandInput) (*model.Brand, error)
	Delete(ctx context.Context, id string) error
}

type brandService struct {
	repo      repository.BrandRepository
	validator Validator
	inv       Invalidator
	now       func() time.Time
}

func NewBrandService(repo repository.BrandRepository, v Validator, inv Invalidator) BrandService {
	return &brandService{
		repo:      repo,
		validator: v,
		inv:       orNoopInvalidator(inv),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *brandService) Showcase(ctx context.Context) ([]model.Brand, error) {
	return s.repo.List(ctx)
}

func (s *brandService) List(ctx context.Context, q listing.Query) (*ListResult[model.Brand], error) {
	return page(ctx, s.repo.List, q, brandAccessors)
}

func (s *brandService) Get(ctx context.Context, id string) (*model.Brand, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return lookup(s.repo.FindByID(ctx, id))
}

func (s *brandService) Create(ctx context.Context, in BrandInput) (*model.Brand, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Brand, in); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	b, err := s.repo.Create(ctx, &model.Brand{
		ID:          id,
		Name:        in.Name,
		Slug:        recordSlug(in.Name, id),
		Category:    in.Category,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		WebsiteURL:  in.WebsiteURL,
		Featured:    in.Featured,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", write(err))
	}
	s.inv.Invalidate(ctx)
	return b, nil
}

func (s *brandService) Update(ctx context.Context, id string, in BrandInput) (*model.Brand, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Brand, in); err != nil {
		return nil, err
	}
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = in.Name
	b.Slug = recordSlug(in.Name, b.ID)
	b.Category = in.Category
	b.Description = in.Description
	b.LogoURL = in.LogoURL
	b.WebsiteURL = in.WebsiteURL
	b.Featured = in.Featured

	out, err := lookup(s.repo.Update(ctx, b))
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx)
	return out, nil
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.inv.Invalidate(ctx)
	return nil
}
