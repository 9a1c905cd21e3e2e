// Package repository declares the data access contracts for the back-office tables.
// Implementations live in subpackages (e.g. postgres). They hold no business logic:
// lookups of a missing row return sql.ErrNoRows untouched and services translate it.
package repository

import (
	"context"
	"errors"

	"tekki/internal/model"
)

// ErrDuplicate is returned when a write collides with a unique constraint (slugs).
var ErrDuplicate = errors.New("duplicate key")

// JobRepository persists job openings.
type JobRepository interface {
	// List returns every opening, newest first.
	List(ctx context.Context) ([]model.JobOpening, error)
	FindByID(ctx context.Context, id string) (*model.JobOpening, error)
	Create(ctx context.Context, job *model.JobOpening) (*model.JobOpening, error)
	Update(ctx context.Context, job *model.JobOpening) (*model.JobOpening, error)
	// SetActive opens or closes an opening. Returns sql.ErrNoRows when the id is unknown.
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository persists job applications. Reads join the job title.
type ApplicationRepository interface {
	List(ctx context.Context) ([]model.JobApplication, error)
	FindByID(ctx context.Context, id string) (*model.JobApplication, error)
	Create(ctx context.Context, app *model.JobApplication) (*model.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus, notes string) error
	Delete(ctx context.Context, id string) error
}

// LeadRepository persists contact form leads.
type LeadRepository interface {
	List(ctx context.Context) ([]model.Lead, error)
	FindByID(ctx context.Context, id string) (*model.Lead, error)
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)
	UpdateStatus(ctx context.Context, id string, status model.LeadStatus, notes string) error
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository persists formula enrollments.
type EnrollmentRepository interface {
	List(ctx context.Context) ([]model.Enrollment, error)
	FindByID(ctx context.Context, id string) (*model.Enrollment, error)
	Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, status model.EnrollmentStatus, payment model.PaymentStatus, notes string) error
	Delete(ctx context.Context, id string) error
}

// BusinessRepository persists businesses offered for sale.
type BusinessRepository interface {
	List(ctx context.Context) ([]model.Business, error)
	FindByID(ctx context.Context, id string) (*model.Business, error)
	Create(ctx context.Context, b *model.Business) (*model.Business, error)
	Update(ctx context.Context, b *model.Business) (*model.Business, error)
	UpdateStatus(ctx context.Context, id string, status model.BusinessStatus) error
	SetImage(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}

// BrandRepository persists showcased brands.
type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id string) (*model.Brand, error)
	Create(ctx context.Context, b *model.Brand) (*model.Brand, error)
	Update(ctx context.Context, b *model.Brand) (*model.Brand, error)
	Delete(ctx context.Context, id string) error
}
