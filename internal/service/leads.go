package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tekki/internal/catalog"
	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/notify"
	"tekki/internal/repository"
	"tekki/internal/validation"
)

// LeadInput is the public contact form payload.
type LeadInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Formula  string `json:"formula"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

func (in LeadInput) normalized() LeadInput {
	return LeadInput{
		FullName: trim(in.FullName),
		Email:    trim(in.Email),
		Phone:    trim(in.Phone),
		Company:  trim(in.Company),
		Formula:  trim(in.Formula),
		Source:   trim(in.Source),
		Message:  trim(in.Message),
	}
}

type LeadService interface {
	Submit(ctx context.Context, in LeadInput) (*model.Lead, error)
	List(ctx context.Context, q listing.Query) (*ListResult[model.Lead], error)
	Get(ctx context.Context, id string) (*model.Lead, error)
	UpdateStatus(ctx context.Context, id string, in StatusInput) (*model.Lead, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, q listing.Query) (export.Table, error)
}

type leadService struct {
	repo      repository.LeadRepository
	validator Validator
	catalog   *catalog.Catalog
	notifier  notify.Notifier
	inv       Invalidator
	log       *slog.Logger
	loc       *time.Location
	now       func() time.Time
}

func NewLeadService(repo repository.LeadRepository, v Validator, cat *catalog.Catalog, n notify.Notifier, inv Invalidator, log *slog.Logger, loc *time.Location) LeadService {
	return &leadService{
		repo:      repo,
		validator: v,
		catalog:   cat,
		notifier:  n,
		inv:       orNoopInvalidator(inv),
		log:       orDefaultLogger(log),
		loc:       loc,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *leadService) Submit(ctx context.Context, in LeadInput) (*model.Lead, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Lead, in); err != nil {
		return nil, err
	}
	if in.Formula != "" && s.catalog != nil && !s.catalog.HasFormula(in.Formula) {
		return nil, invalid("formula: unknown formula %q", in.Formula)
	}
	if in.Source == "" {
		in.Source = "website"
	}

	now := s.now()
	lead, err := s.repo.Create(ctx, &model.Lead{
		ID:        uuid.NewString(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Formula:   in.Formula,
		Source:    in.Source,
		Message:   in.Message,
		Status:    model.LeadNew,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	s.inv.Invalidate(ctx)

	deliver(ctx, s.notifier, s.log, notify.Event{
		Type:       notify.EventLeadCreated,
		ID:         lead.ID,
		Summary:    fmt.Sprintf("New lead from %s", lead.FullName),
		Fields:     map[string]string{"email": lead.Email, "phone": lead.Phone, "formula": lead.Formula},
		OccurredAt: lead.CreatedAt,
	})
	return lead, nil
}

func (s *leadService) List(ctx context.Context, q listing.Query) (*ListResult[model.Lead], error) {
	return page(ctx, s.repo.List, q, leadAccessors)
}

func (s *leadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return lookup(s.repo.FindByID(ctx, id))
}

func (s *leadService) UpdateStatus(ctx context.Context, id string, in StatusInput) (*model.Lead, error) {
	status := model.LeadStatus(trim(in.Status))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	notes := notesOr(in.Notes, lead.Notes)
	if err := s.repo.UpdateStatus(ctx, id, status, notes); err != nil {
		return nil, write(err)
	}
	s.inv.Invalidate(ctx)

	lead.Status, lead.Notes = status, notes
	return lead, nil
}

func (s *leadService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return write(err)
	}
	s.inv.Invalidate(ctx)
	return nil
}

func (s *leadService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	items, err := all(ctx, s.repo.List, q, leadAccessors)
	if err != nil {
		return export.Table{}, err
	}
	return leadColumns(s.loc).Build(items), nil
}
