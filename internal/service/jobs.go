package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/repository"
	"tekki/internal/storage"
	"tekki/internal/validation"
)

// JobInput is the admin payload for creating or editing an opening.
// A nil IsActive defaults to true on create and keeps the stored value on update.
type JobInput struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	ContractType string   `json:"contract_type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (in JobInput) normalized() JobInput {
	reqs := make([]string, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		if r = trim(r); r != "" {
			reqs = append(reqs, r)
		}
	}
	return JobInput{
		Title:        trim(in.Title),
		Department:   trim(in.Department),
		Location:     trim(in.Location),
		ContractType: trim(in.ContractType),
		Description:  trim(in.Description),
		Requirements: reqs,
		IsActive:     in.IsActive,
	}
}

type JobService interface {
	// ListOpen returns active openings for the careers page, newest first.
	ListOpen(ctx context.Context) ([]model.JobOpening, error)
	// GetOpen returns an active opening; closed ones are reported as ErrNotFound.
	GetOpen(ctx context.Context, id string) (*model.JobOpening, error)

	List(ctx context.Context, q listing.Query) (*ListResult[model.JobOpening], error)
	Get(ctx context.Context, id string) (*model.JobOpening, error)
	Create(ctx context.Context, in JobInput) (*model.JobOpening, error)
	Update(ctx context.Context, id string, in JobInput) (*model.JobOpening, error)
	SetActive(ctx context.Context, id string, active bool) (*model.JobOpening, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, q listing.Query) (export.Table, error)
}

type jobService struct {
	repo      repository.JobRepository
	apps      repository.ApplicationRepository
	storage   storage.Storage
	validator Validator
	inv       Invalidator
	log       *slog.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewJobService wires the job use cases. apps and st are used to clean up
// résumés when an opening and its applications are deleted.
func NewJobService(repo repository.JobRepository, apps repository.ApplicationRepository, st storage.Storage, v Validator, inv Invalidator, log *slog.Logger, loc *time.Location) JobService {
	return &jobService{
		repo:      repo,
		apps:      apps,
		storage:   st,
		validator: v,
		inv:       orNoopInvalidator(inv),
		log:       orDefaultLogger(log),
		loc:       loc,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *jobService) ListOpen(ctx context.Context) ([]model.JobOpening, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]model.JobOpening, 0, len(items))
	for _, j := range items {
		if j.IsActive {
			open = append(open, j)
		}
	}
	listing.Sort(open, listing.SortCreatedAt, listing.OrderDesc, jobAccessors)
	return open, nil
}

func (s *jobService) GetOpen(ctx context.Context, id string) (*model.JobOpening, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, q listing.Query) (*ListResult[model.JobOpening], error) {
	return page(ctx, s.repo.List, q, jobAccessors)
}

func (s *jobService) Get(ctx context.Context, id string) (*model.JobOpening, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return lookup(s.repo.FindByID(ctx, id))
}

func (s *jobService) Create(ctx context.Context, in JobInput) (*model.JobOpening, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Job, in); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	id, now := uuid.NewString(), s.now()
	job, err := s.repo.Create(ctx, &model.JobOpening{
		ID:           id,
		Title:        in.Title,
		Slug:         recordSlug(in.Title, id),
		Department:   in.Department,
		Location:     in.Location,
		ContractType: model.ContractType(in.ContractType),
		Description:  in.Description,
		Requirements: in.Requirements,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create job: %w", write(err))
	}
	s.inv.Invalidate(ctx)
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id string, in JobInput) (*model.JobOpening, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Job, in); err != nil {
		return nil, err
	}
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = in.Title
	job.Slug = recordSlug(in.Title, job.ID)
	job.Department = in.Department
	job.Location = in.Location
	job.ContractType = model.ContractType(in.ContractType)
	job.Description = in.Description
	job.Requirements = in.Requirements
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
	job.UpdatedAt = s.now()

	out, err := lookup(s.repo.Update(ctx, job))
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx)
	return out, nil
}

func (s *jobService) SetActive(ctx context.Context, id string, active bool) (*model.JobOpening, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, write(err)
	}
	s.inv.Invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete removes the opening; its applications cascade in the database, so
// their résumé objects are removed first. Object cleanup failures are logged only.
func (s *jobService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if s.apps != nil && s.storage != nil {
		apps, err := s.apps.List(ctx)
		if err != nil {
			return err
		}
		for _, a := range apps {
			if a.JobID != id || a.ResumeKey == "" {
				continue
			}
			if err := s.storage.Delete(ctx, a.ResumeKey); err != nil {
				s.log.WarnContext(ctx, "resume cleanup failed", "key", a.ResumeKey, "err", err)
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return write(err)
	}
	s.inv.Invalidate(ctx)
	return nil
}

func (s *jobService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	items, err := all(ctx, s.repo.List, q, jobAccessors)
	if err != nil {
		return export.Table{}, err
	}
	return jobColumns(s.loc).Build(items), nil
}
