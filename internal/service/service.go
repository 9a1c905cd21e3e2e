// Package service holds the back-office use cases: public submissions, admin
// listing/filtering over fetched rows, status changes, exports and dashboard cards.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tekki/internal/listing"
	"tekki/internal/notify"
	"tekki/internal/repository"
	"tekki/internal/validation"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("resource not found")
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrValidation      = errors.New("validation failed")
	ErrJobClosed       = errors.New("job opening is closed")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrConflict        = errors.New("resource already exists")
)

// Validator checks a payload against a named schema.
type Validator interface {
	Validate(name string, doc any) error
}

// Invalidator drops derived data (dashboard cards) after a write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context) {}

// Upload is a file received from a multipart form.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// ListResult is the service-level DTO for a filtered, paginated list.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

func orDefaultLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

func orNoopInvalidator(inv Invalidator) Invalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return inv
}

// lookup maps sql.ErrNoRows to ErrNotFound and duplicates to ErrConflict.
func lookup[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, write(err)
	}
	return v, nil
}

// write maps sql.ErrNoRows from a single-row write to ErrNotFound and a
// unique violation to ErrConflict.
func write(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// validate runs the named schema and folds violations into ErrValidation.
func validate(v Validator, name string, doc any) error {
	if v == nil {
		return nil
	}
	if err := v.Validate(name, doc); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", ErrValidation, verr.Error())
		}
		return err
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// page fetches every row and runs the in-memory listing pipeline.
func page[T any](ctx context.Context, fetch func(context.Context) ([]T, error), q listing.Query, acc listing.Accessors[T]) (*ListResult[T], error) {
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	p := listing.Apply(items, q, acc)
	return &ListResult[T]{Items: p.Items, Total: p.Total}, nil
}

// all fetches every row matching q, sorted, without paging.
func all[T any](ctx context.Context, fetch func(context.Context) ([]T, error), q listing.Query, acc listing.Accessors[T]) ([]T, error) {
	q.Limit, q.Offset = 0, 0
	res, err := page(ctx, fetch, q, acc)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// StatusInput is an admin status change with optional notes.
// A nil Notes keeps the stored value.
type StatusInput struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func notesOr(n *string, current string) string {
	if n == nil {
		return current
	}
	return trim(*n)
}

// deliver sends ev and only logs failures: a notification never fails a submission.
func deliver(ctx context.Context, n notify.Notifier, log *slog.Logger, ev notify.Event) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, ev); err != nil {
		log.WarnContext(ctx, "notification failed", "event", ev.Type, "id", ev.ID, "err", err)
	}
}
