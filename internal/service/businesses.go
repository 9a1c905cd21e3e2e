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
	"tekki/internal/repository"
	"tekki/internal/storage"
	"tekki/internal/validation"
)

// ImageMaxBytes caps business image uploads.
const ImageMaxBytes int64 = 10 << 20

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// BusinessInput is the admin payload for a business listing. Prices are whole francs.
type BusinessInput struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Price          int64  `json:"price"`
	MonthlyRevenue int64  `json:"monthly_revenue"`
	Status         string `json:"status"`
}

func (in BusinessInput) normalized() BusinessInput {
	in.Name = trim(in.Name)
	in.Category = trim(in.Category)
	in.Description = trim(in.Description)
	in.Status = trim(in.Status)
	return in
}

type BusinessService interface {
	// ListPublic returns available and reserved businesses with presigned image URLs.
	ListPublic(ctx context.Context) ([]model.Business, error)

	List(ctx context.Context, q listing.Query) (*ListResult[model.Business], error)
	Get(ctx context.Context, id string) (*model.Business, error)
	Create(ctx context.Context, in BusinessInput) (*model.Business, error)
	Update(ctx context.Context, id string, in BusinessInput) (*model.Business, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Business, error)
	// UploadImage replaces the listing image; the previous object is removed.
	UploadImage(ctx context.Context, id string, img *Upload) (*model.Business, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, q listing.Query) (export.Table, error)
}

type businessService struct {
	repo      repository.BusinessRepository
	storage   storage.Storage
	validator Validator
	inv       Invalidator
	log       *slog.Logger
	loc       *time.Location
	presign   time.Duration
	now       func() time.Time
}

func NewBusinessService(repo repository.BusinessRepository, st storage.Storage, v Validator, inv Invalidator, log *slog.Logger, loc *time.Location, presign time.Duration) BusinessService {
	if presign <= 0 {
		presign = 15 * time.Minute
	}
	return &businessService{
		repo:      repo,
		storage:   st,
		validator: v,
		inv:       orNoopInvalidator(inv),
		log:       orDefaultLogger(log),
		loc:       loc,
		presign:   presign,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *businessService) ListPublic(ctx context.Context) ([]model.Business, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Business, 0, len(items))
	for _, b := range items {
		if b.Status != model.BusinessAvailable && b.Status != model.BusinessReserved {
			continue
		}
		s.withImageURL(ctx, &b)
		out = append(out, b)
	}
	return out, nil
}

// withImageURL fills ImageURL; a presign failure only drops the image.
func (s *businessService) withImageURL(ctx context.Context, b *model.Business) {
	if b.ImageKey == "" || s.storage == nil {
		return
	}
	u, err := s.storage.PresignGet(ctx, b.ImageKey, s.presign)
	if err != nil {
		s.log.WarnContext(ctx, "presign image failed", "business_id", b.ID, "err", err)
		return
	}
	b.ImageURL = u
}

func (s *businessService) List(ctx context.Context, q listing.Query) (*ListResult[model.Business], error) {
	return page(ctx, s.repo.List, q, businessAccessors)
}

func (s *businessService) Get(ctx context.Context, id string) (*model.Business, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	b, err := lookup(s.repo.FindByID(ctx, id))
	if err != nil {
		return nil, err
	}
	s.withImageURL(ctx, b)
	return b, nil
}

func (s *businessService) Create(ctx context.Context, in BusinessInput) (*model.Business, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Business, in); err != nil {
		return nil, err
	}
	status := model.BusinessAvailable
	if in.Status != "" {
		status = model.BusinessStatus(in.Status)
	}

	id, now := uuid.NewString(), s.now()
	b, err := s.repo.Create(ctx, &model.Business{
		ID:             id,
		Name:           in.Name,
		Slug:           recordSlug(in.Name, id),
		Category:       in.Category,
		Description:    in.Description,
		Price:          in.Price,
		MonthlyRevenue: in.MonthlyRevenue,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create business: %w", write(err))
	}
	s.inv.Invalidate(ctx)
	return b, nil
}

// Update rewrites the listing fields in one write. A non-empty Status is applied as well.
func (s *businessService) Update(ctx context.Context, id string, in BusinessInput) (*model.Business, error) {
	in = in.normalized()
	if err := validate(s.validator, validation.Business, in); err != nil {
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
	b.Price = in.Price
	b.MonthlyRevenue = in.MonthlyRevenue
	if in.Status != "" {
		b.Status = model.BusinessStatus(in.Status)
	}
	b.UpdatedAt = s.now()

	out, err := lookup(s.repo.Update(ctx, b))
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx)
	s.withImageURL(ctx, out)
	return out, nil
}

func (s *businessService) UpdateStatus(ctx context.Context, id string, status string) (*model.Business, error) {
	st := model.BusinessStatus(trim(status))
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, write(err)
	}
	s.inv.Invalidate(ctx)
	return s.Get(ctx, id)
}

func (s *businessService) UploadImage(ctx context.Context, id string, img *Upload) (*model.Business, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Reader == nil {
		return nil, ErrReaderNil
	}
	if img.Size > ImageMaxBytes {
		return nil, fmt.Errorf("%w: image is %s, limit is %s", ErrFileTooLarge,
			humanize.IBytes(uint64(img.Size)), humanize.IBytes(uint64(ImageMaxBytes)))
	}
	ext := strings.ToLower(path.Ext(img.Filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected JPEG, PNG or WebP", ErrUnsupportedFile, ext)
	}

	size := img.Size
	if size <= 0 {
		size = -1
	}
	key := storage.NewKey(storage.PrefixBusinesses, img.Filename)
	if _, err := s.storage.Put(ctx, key, img.Reader, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	if err := s.repo.SetImage(ctx, id, key); err != nil {
		if derr := s.storage.Delete(ctx, key); derr != nil {
			s.log.ErrorContext(ctx, "image rollback failed", "key", key, "err", derr)
		}
		return nil, write(err)
	}
	if old := b.ImageKey; old != "" {
		if err := s.storage.Delete(ctx, old); err != nil {
			s.log.WarnContext(ctx, "old image cleanup failed", "key", old, "err", err)
		}
	}

	s.inv.Invalidate(ctx)

	b.ImageKey, b.ImageURL = key, ""
	s.withImageURL(ctx, b)
	return b, nil
}

func (s *businessService) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if b.ImageKey != "" {
		if err := s.storage.Delete(ctx, b.ImageKey); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return write(err)
	}
	s.inv.Invalidate(ctx)
	return nil
}

func (s *businessService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	items, err := all(ctx, s.repo.List, q, businessAccessors)
	if err != nil {
		return export.Table{}, err
	}
	return businessColumns(s.loc).Build(items), nil
}
