package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
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

// EnrollmentInput is the public sign-up payload. Amount 0 means the formula list price.
type EnrollmentInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Formula  string `json:"formula"`
	Amount   int64  `json:"amount"`
}

func (in EnrollmentInput) normalized() EnrollmentInput {
	return EnrollmentInput{
		FullName: trim(in.FullName),
		Email:    trim(in.Email),
		Phone:    trim(in.Phone),
		Country:  trim(in.Country),
		City:     trim(in.City),
		Formula:  trim(in.Formula),
		Amount:   in.Amount,
	}
}

// EnrollmentStatusInput changes the enrollment and/or payment status.
// Empty fields keep their stored value; at least one must be set.
type EnrollmentStatusInput struct {
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes"`
}

type EnrollmentService interface {
	Submit(ctx context.Context, in EnrollmentInput) (*model.Enrollment, error)
	List(ctx context.Context, q listing.Query) (*ListResult[model.Enrollment], error)
	Get(ctx context.Context, id string) (*model.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, in EnrollmentStatusInput) (*model.Enrollment, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, q listing.Query) (export.Table, error)
}

type enrollmentService struct {
	repo      repository.EnrollmentRepository
	validator Validator
	catalog   *catalog.Catalog
	notifier  notify.Notifier
	inv       Invalidator
	log       *slog.Logger
	loc       *time.Location
	now       func() time.Time
}

func NewEnrollmentService(repo repository.EnrollmentRepository, v Validator, cat *catalog.Catalog, n notify.Notifier, inv Invalidator, log *slog.Logger, loc *time.Location) EnrollmentService {
	return &enrollmentService{
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

func (s *enrollmentService) Submit(ctx context.Context, in EnrollmentInput) (*model.Enrollment, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Enrollment, in); err != nil {
		return nil, err
	}
	if s.catalog != nil {
		f, err := s.catalog.Formula(in.Formula)
		if err != nil {
			return nil, invalid("formula: unknown formula %q", in.Formula)
		}
		if in.Amount == 0 {
			in.Amount = f.Price
		}
	}

	now := s.now()
	e, err := s.repo.Create(ctx, &model.Enrollment{
		ID:            uuid.NewString(),
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Country:       in.Country,
		City:          in.City,
		Formula:       in.Formula,
		Amount:        in.Amount,
		PaymentStatus: model.PaymentPending,
		Status:        model.EnrollmentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	s.inv.Invalidate(ctx)

	deliver(ctx, s.notifier, s.log, notify.Event{
		Type:    notify.EventEnrollmentCreated,
		ID:      e.ID,
		Summary: fmt.Sprintf("%s enrolled in %s", e.FullName, e.Formula),
		Fields: map[string]string{
			"email":   e.Email,
			"phone":   e.Phone,
			"formula": e.Formula,
			"amount":  strconv.FormatInt(e.Amount, 10),
		},
		OccurredAt: e.CreatedAt,
	})
	return e, nil
}

func (s *enrollmentService) List(ctx context.Context, q listing.Query) (*ListResult[model.Enrollment], error) {
	return page(ctx, s.repo.List, q, enrollmentAccessors)
}

func (s *enrollmentService) Get(ctx context.Context, id string) (*model.Enrollment, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return lookup(s.repo.FindByID(ctx, id))
}

func (s *enrollmentService) UpdateStatus(ctx context.Context, id string, in EnrollmentStatusInput) (*model.Enrollment, error) {
	statusIn, paymentIn := trim(in.Status), trim(in.PaymentStatus)
	if statusIn == "" && paymentIn == "" {
		return nil, ErrInvalidStatus
	}
	if statusIn != "" && !model.EnrollmentStatus(statusIn).Valid() {
		return nil, ErrInvalidStatus
	}
	if paymentIn != "" && !model.PaymentStatus(paymentIn).Valid() {
		return nil, ErrInvalidStatus
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	status, payment := e.Status, e.PaymentStatus
	if statusIn != "" {
		status = model.EnrollmentStatus(statusIn)
	}
	if paymentIn != "" {
		payment = model.PaymentStatus(paymentIn)
	}
	notes := notesOr(in.Notes, e.Notes)

	if err := s.repo.UpdateStatus(ctx, id, status, payment, notes); err != nil {
		return nil, write(err)
	}
	s.inv.Invalidate(ctx)

	e.Status, e.PaymentStatus, e.Notes = status, payment, notes
	return e, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return write(err)
	}
	s.inv.Invalidate(ctx)
	return nil
}

func (s *enrollmentService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	items, err := all(ctx, s.repo.List, q, enrollmentAccessors)
	if err != nil {
		return export.Table{}, err
	}
	return enrollmentColumns(s.loc).Build(items), nil
}
