package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/repository"
	repoMocks "tekki/internal/repository/mocks"
	"tekki/internal/storage"
	storeMocks "tekki/internal/storage/mocks"
)

func TestBusinessService_ListPublic(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockBusinessRepository)
	st := new(storeMocks.MockStorage)
	repo.On("List", ctx).Return([]model.Business{
		{ID: "b1", Status: model.BusinessAvailable, ImageKey: "businesses/b1.jpg"},
		{ID: "b2", Status: model.BusinessSold},
		{ID: "b3", Status: model.BusinessReserved, ImageKey: "businesses/b3.png"},
	}, nil)
	st.On("PresignGet", ctx, "businesses/b1.jpg", 15*time.Minute).Return("https://img/b1", nil)
	st.On("PresignGet", ctx, "businesses/b3.png", 15*time.Minute).Return("", errors.New("offline"))
	svc := NewBusinessService(repo, st, nil, nil, nil, time.UTC, 0)

	got, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://img/b1", got[0].ImageURL)
	assert.Equal(t, "b3", got[1].ID)
	assert.Empty(t, got[1].ImageURL)
}

func TestBusinessService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockBusinessRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(b *model.Business) bool {
		return b.Status == model.BusinessAvailable && strings.HasPrefix(b.Slug, "boutique-wax-dakar-") && b.Slug == recordSlug(b.Name, b.ID) && b.Price == 1200000
	})).Return(&model.Business{ID: "b1"}, nil)
	svc := NewBusinessService(repo, nil, newValidator(t), nil, nil, time.UTC, 0)

	_, err := svc.Create(ctx, BusinessInput{Name: "Boutique Wax Dakar", Price: 1200000})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = svc.Create(ctx, BusinessInput{Name: "Boutique", Price: 10, Status: "gone"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBusinessService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockBusinessRepository)
	repo.On("UpdateStatus", ctx, "b1", model.BusinessSold).Return(nil)
	repo.On("FindByID", ctx, "b1").Return(&model.Business{ID: "b1", Status: model.BusinessSold}, nil)
	inv := &countingInvalidator{}
	svc := NewBusinessService(repo, nil, nil, inv, nil, time.UTC, 0)

	got, err := svc.UpdateStatus(ctx, "b1", "sold")
	require.NoError(t, err)
	assert.Equal(t, model.BusinessSold, got.Status)
	assert.Equal(t, 1, inv.n)

	_, err = svc.UpdateStatus(ctx, "b1", "burnt")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBusinessService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the previous image", func(t *testing.T) {
		repo := new(repoMocks.MockBusinessRepository)
		st := new(storeMocks.MockStorage)
		img := &Upload{Reader: strings.NewReader("png"), Filename: "shop.PNG", Size: 3}

		repo.On("FindByID", ctx, "b1").Return(&model.Business{ID: "b1", ImageKey: "businesses/old.jpg"}, nil)
		st.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("https://img", nil)
		st.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "businesses/") && strings.HasSuffix(key, ".png")
		}), img.Reader, storage.PutObjectOptions{Size: 3, ContentType: "image/png"}).Return(storage.ObjectInfo{}, nil)
		repo.On("SetImage", ctx, "b1", mock.AnythingOfType("string")).Return(nil)
		st.On("Delete", ctx, "businesses/old.jpg").Return(nil)

		svc := NewBusinessService(repo, st, nil, nil, nil, time.UTC, 0)
		got, err := svc.UploadImage(ctx, "b1", img)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got.ImageKey, ".png"))
		assert.Equal(t, "https://img", got.ImageURL)
		repo.AssertExpectations(t)
		st.AssertExpectations(t)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		repo := new(repoMocks.MockBusinessRepository)
		repo.On("FindByID", ctx, "b1").Return(&model.Business{ID: "b1"}, nil)
		svc := NewBusinessService(repo, nil, nil, nil, nil, time.UTC, 0)

		_, err := svc.UploadImage(ctx, "b1", &Upload{Reader: strings.NewReader("x"), Filename: "shop.gif", Size: 1})
		assert.ErrorIs(t, err, ErrUnsupportedFile)
	})
}

func TestBrandService(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockBrandRepository)
	repo.On("Create", ctx, mock.MatchedBy(func(b *model.Brand) bool {
		return b.Slug == recordSlug("Viens on s'connaît", b.ID) && strings.HasPrefix(b.Slug, "viens-on-s-connait-") && b.Featured
	})).Return(&model.Brand{ID: "br1", Name: "Viens on s'connaît"}, nil)
	repo.On("List", ctx).Return([]model.Brand{
		{ID: "br1", Name: "Zeyna", Featured: true, CreatedAt: time.Unix(10, 0)},
		{ID: "br2", Name: "Aissa", CreatedAt: time.Unix(20, 0)},
	}, nil)
	inv := &countingInvalidator{}
	svc := NewBrandService(repo, newValidator(t), inv)

	_, err := svc.Create(ctx, BrandInput{Name: "Viens on s'connaît", Featured: true})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.n)

	_, err = svc.Create(ctx, BrandInput{Name: "Bad", LogoURL: "ftp://logo"})
	assert.ErrorIs(t, err, ErrValidation)

	page, err := svc.List(ctx, listing.Query{SortBy: "name", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "Aissa", page.Items[0].Name)

	page, err = svc.List(ctx, listing.Query{Status: "featured"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestBusinessService_Update(t *testing.T) {
	ctx := context.Background()
	const id = "c9f0f895-fb98-4b91-8f4e-000000000002"
	existing := func() *model.Business {
		return &model.Business{ID: id, Name: "Boutique", Slug: "boutique-c9f0f895", Status: model.BusinessAvailable, ImageKey: "businesses/b.jpg"}
	}
	reset := errors.New("connection reset")

	tests := []struct {
		name    string
		in      BusinessInput
		setup   func(repo *repoMocks.MockBusinessRepository, st *storeMocks.MockStorage)
		wantErr error
		want    model.BusinessStatus
	}{
		{
			name: "keeps status when none is given",
			in:   BusinessInput{Name: "Boutique Wax", Price: 900000},
			setup: func(repo *repoMocks.MockBusinessRepository, st *storeMocks.MockStorage) {
				repo.On("FindByID", ctx, id).Return(existing(), nil)
				repo.On("Update", ctx, mock.MatchedBy(func(b *model.Business) bool {
					return b.Status == model.BusinessAvailable && b.Slug == "boutique-wax-c9f0f895" && b.Price == 900000
				})).Return(&model.Business{ID: id, Status: model.BusinessAvailable, ImageKey: "businesses/b.jpg"}, nil)
				st.On("PresignGet", ctx, "businesses/b.jpg", 15*time.Minute).Return("https://img/b", nil)
			},
			want: model.BusinessAvailable,
		},
		{
			name: "status change goes through the same write",
			in:   BusinessInput{Name: "Boutique", Price: 10, Status: "reserved"},
			setup: func(repo *repoMocks.MockBusinessRepository, st *storeMocks.MockStorage) {
				repo.On("FindByID", ctx, id).Return(existing(), nil)
				repo.On("Update", ctx, mock.MatchedBy(func(b *model.Business) bool {
					return b.Status == model.BusinessReserved
				})).Return(&model.Business{ID: id, Status: model.BusinessReserved}, nil)
				st.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("https://img/b", nil).Maybe()
			},
			want: model.BusinessReserved,
		},
		{
			name: "unknown business",
			in:   BusinessInput{Name: "Boutique", Price: 10},
			setup: func(repo *repoMocks.MockBusinessRepository, _ *storeMocks.MockStorage) {
				repo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "invalid status",
			in:      BusinessInput{Name: "Boutique", Price: 10, Status: "gone"},
			setup:   func(*repoMocks.MockBusinessRepository, *storeMocks.MockStorage) {},
			wantErr: ErrValidation,
		},
		{
			name: "write failure leaves the cache alone",
			in:   BusinessInput{Name: "Boutique", Price: 10, Status: "sold"},
			setup: func(repo *repoMocks.MockBusinessRepository, st *storeMocks.MockStorage) {
				repo.On("FindByID", ctx, id).Return(existing(), nil)
				st.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("https://img/b", nil).Maybe()
				repo.On("Update", ctx, mock.Anything).Return(nil, reset)
			},
			wantErr: reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockBusinessRepository)
			st := new(storeMocks.MockStorage)
			tt.setup(repo, st)
			inv := &countingInvalidator{}
			svc := NewBusinessService(repo, st, newValidator(t), inv, nil, time.UTC, 0)

			got, err := svc.Update(ctx, id, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, inv.n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, 1, inv.n)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertExpectations(t)
		})
	}
}

func TestBrandService_Update(t *testing.T) {
	ctx := context.Background()
	const id = "45c48cce-2e2d-4fbd-8b3e-000000000003"

	t.Run("renames and invalidates", func(t *testing.T) {
		repo := new(repoMocks.MockBrandRepository)
		repo.On("FindByID", ctx, id).Return(&model.Brand{ID: id, Name: "Zeyna", Slug: "zeyna-45c48cce"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(b *model.Brand) bool {
			return b.Slug == "zeyna-cosmetics-45c48cce" && b.Featured
		})).Return(&model.Brand{ID: id, Name: "Zeyna Cosmetics", Featured: true}, nil)
		inv := &countingInvalidator{}
		svc := NewBrandService(repo, newValidator(t), inv)

		got, err := svc.Update(ctx, id, BrandInput{Name: "Zeyna Cosmetics", Featured: true})
		require.NoError(t, err)
		assert.Equal(t, "Zeyna Cosmetics", got.Name)
		assert.Equal(t, 1, inv.n)
		repo.AssertExpectations(t)
	})

	t.Run("unknown brand", func(t *testing.T) {
		repo := new(repoMocks.MockBrandRepository)
		repo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)
		svc := NewBrandService(repo, newValidator(t), nil)

		_, err := svc.Update(ctx, id, BrandInput{Name: "Zeyna"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid logo url", func(t *testing.T) {
		svc := NewBrandService(new(repoMocks.MockBrandRepository), newValidator(t), nil)

		_, err := svc.Update(ctx, id, BrandInput{Name: "Zeyna", LogoURL: "ftp://logo"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("slug collision", func(t *testing.T) {
		repo := new(repoMocks.MockBrandRepository)
		repo.On("FindByID", ctx, id).Return(&model.Brand{ID: id, Name: "Zeyna"}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil, fmt.Errorf("%w: brands_slug_key", repository.ErrDuplicate))
		svc := NewBrandService(repo, newValidator(t), nil)

		_, err := svc.Update(ctx, id, BrandInput{Name: "Zeyna"})
		assert.ErrorIs(t, err, ErrConflict)
	})
}
