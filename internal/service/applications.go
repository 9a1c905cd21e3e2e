package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/notify"
	"tekki/internal/repository"
	"tekki/internal/storage"
	"tekki/internal/validation"
)

// DefaultResumeMaxBytes caps résumé uploads when no limit is configured.
const DefaultResumeMaxBytes int64 = 5 << 20

var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ApplicationInput is the form part of a job application.
type ApplicationInput struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CoverLetter  string `json:"cover_letter"`
	LinkedInURL  string `json:"linkedin_url"`
	PortfolioURL string `json:"portfolio_url"`
}

func (in ApplicationInput) normalized() ApplicationInput {
	return ApplicationInput{
		FullName:     trim(in.FullName),
		Email:        trim(in.Email),
		Phone:        trim(in.Phone),
		CoverLetter:  trim(in.CoverLetter),
		LinkedInURL:  trim(in.LinkedInURL),
		PortfolioURL: trim(in.PortfolioURL),
	}
}

type ApplicationService interface {
	// Apply stores the résumé then the application; the object is removed again if the insert fails.
	Apply(ctx context.Context, jobID string, in ApplicationInput, resume *Upload) (*model.JobApplication, error)

	// List filters applications; a non-empty jobID restricts them to one opening.
	List(ctx context.Context, q listing.Query, jobID string) (*ListResult[model.JobApplication], error)
	Get(ctx context.Context, id string) (*model.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, in StatusInput) (*model.JobApplication, error)
	// ResumeURL returns a time-limited download link for the résumé.
	ResumeURL(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, q listing.Query, jobID string) (export.Table, error)
}

type applicationService struct {
	repo      repository.ApplicationRepository
	jobs      repository.JobRepository
	storage   storage.Storage
	validator Validator
	notifier  notify.Notifier
	inv       Invalidator
	log       *slog.Logger
	loc       *time.Location
	maxBytes  int64
	presign   time.Duration
	now       func() time.Time
}

// ApplicationOptions tunes résumé handling.
type ApplicationOptions struct {
	ResumeMaxBytes int64
	PresignExpiry  time.Duration
	Location       *time.Location
}

func NewApplicationService(repo repository.ApplicationRepository, jobs repository.JobRepository, st storage.Storage, v Validator, n notify.Notifier, inv Invalidator, log *slog.Logger, opt ApplicationOptions) ApplicationService {
	if opt.ResumeMaxBytes <= 0 {
		opt.ResumeMaxBytes = DefaultResumeMaxBytes
	}
	if opt.PresignExpiry <= 0 {
		opt.PresignExpiry = 15 * time.Minute
	}
	return &applicationService{
		repo:      repo,
		jobs:      jobs,
		storage:   st,
		validator: v,
		notifier:  n,
		inv:       orNoopInvalidator(inv),
		log:       orDefaultLogger(log),
		loc:       opt.Location,
		maxBytes:  opt.ResumeMaxBytes,
		presign:   opt.PresignExpiry,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *applicationService) Apply(ctx context.Context, jobID string, in ApplicationInput, resume *Upload) (*model.JobApplication, error) {
	if jobID == "" {
		return nil, ErrIDRequired
	}
	job, err := lookup(s.jobs.FindByID(ctx, jobID))
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobClosed
	}

	in = in.normalized()
	if err := validate(s.validator, validation.Application, in); err != nil {
		return nil, err
	}

	if resume == nil || resume.Reader == nil {
		return nil, ErrReaderNil
	}
	if resume.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: résumé is %s, limit is %s", ErrFileTooLarge,
			humanize.IBytes(uint64(resume.Size)), humanize.IBytes(uint64(s.maxBytes)))
	}
	ext := strings.ToLower(path.Ext(resume.Filename))
	contentType, ok := resumeTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected PDF, DOC or DOCX", ErrUnsupportedFile, ext)
	}

	size := resume.Size
	if size <= 0 {
		size = -1
	}
	key := storage.NewKey(storage.PrefixResumes, resume.Filename)
	if _, err := s.storage.Put(ctx, key, resume.Reader, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{storage.MetaOriginalFilename: path.Base(resume.Filename)},
	}); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	now := s.now()
	app, err := s.repo.Create(ctx, &model.JobApplication{
		ID:           uuid.NewString(),
		JobID:        job.ID,
		JobTitle:     job.Title,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		ResumeKey:    key,
		CoverLetter:  in.CoverLetter,
		LinkedInURL:  in.LinkedInURL,
		PortfolioURL: in.PortfolioURL,
		Status:       model.ApplicationPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if derr := s.storage.Delete(ctx, key); derr != nil {
			s.log.ErrorContext(ctx, "resume rollback failed", "key", key, "err", derr)
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	s.inv.Invalidate(ctx)

	deliver(ctx, s.notifier, s.log, notify.Event{
		Type:       notify.EventApplicationCreated,
		ID:         app.ID,
		Summary:    fmt.Sprintf("%s applied for %s", app.FullName, job.Title),
		Fields:     map[string]string{"email": app.Email, "phone": app.Phone, "job_id": job.ID},
		OccurredAt: app.CreatedAt,
	})
	return app, nil
}

func (s *applicationService) fetch(jobID string) func(context.Context) ([]model.JobApplication, error) {
	return func(ctx context.Context) ([]model.JobApplication, error) {
		items, err := s.repo.List(ctx)
		if err != nil || jobID == "" {
			return items, err
		}
		out := make([]model.JobApplication, 0, len(items))
		for _, a := range items {
			if a.JobID == jobID {
				out = append(out, a)
			}
		}
		return out, nil
	}
}

func (s *applicationService) List(ctx context.Context, q listing.Query, jobID string) (*ListResult[model.JobApplication], error) {
	return page(ctx, s.fetch(jobID), q, applicationAccessors)
}

// Get returns the application with a presigned ResumeURL. A presign failure
// only leaves the link empty.
func (s *applicationService) Get(ctx context.Context, id string) (*model.JobApplication, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ResumeKey != "" && s.storage != nil {
		u, err := s.storage.PresignGet(ctx, app.ResumeKey, s.presign)
		if err != nil {
			s.log.WarnContext(ctx, "presign resume failed", "application_id", app.ID, "err", err)
		} else {
			app.ResumeURL = u
		}
	}
	return app, nil
}

func (s *applicationService) find(ctx context.Context, id string) (*model.JobApplication, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return lookup(s.repo.FindByID(ctx, id))
}

func (s *applicationService) UpdateStatus(ctx context.Context, id string, in StatusInput) (*model.JobApplication, error) {
	status := model.ApplicationStatus(trim(in.Status))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	app, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	notes := notesOr(in.Notes, app.Notes)
	if err := s.repo.UpdateStatus(ctx, id, status, notes); err != nil {
		return nil, write(err)
	}
	s.inv.Invalidate(ctx)

	app.Status, app.Notes = status, notes
	return app, nil
}

func (s *applicationService) ResumeURL(ctx context.Context, id string) (string, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	if app.ResumeKey == "" {
		return "", ErrNotFound
	}
	return s.storage.PresignGet(ctx, app.ResumeKey, s.presign)
}

// Delete removes the résumé object first, then the row.
func (s *applicationService) Delete(ctx context.Context, id string) error {
	app, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if app.ResumeKey != "" {
		if err := s.storage.Delete(ctx, app.ResumeKey); err != nil {
			return fmt.Errorf("delete resume: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return write(err)
	}
	s.inv.Invalidate(ctx)
	return nil
}

func (s *applicationService) Export(ctx context.Context, q listing.Query, jobID string) (export.Table, error) {
	items, err := all(ctx, s.fetch(jobID), q, applicationAccessors)
	if err != nil {
		return export.Table{}, err
	}
	return applicationColumns(s.loc).Build(items), nil
}
