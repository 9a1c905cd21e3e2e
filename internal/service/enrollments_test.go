package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tekki/internal/model"
	"tekki/internal/notify"
	repoMocks "tekki/internal/repository/mocks"
)

func TestEnrollmentService_Submit(t *testing.T) {
	ctx := context.Background()
	in := EnrollmentInput{FullName: "Awa Diop", Email: "awa@example.com", Phone: "+221770000000", Country: "Senegal", Formula: "starter"}

	t.Run("amount defaults to the formula price", func(t *testing.T) {
		repo := new(repoMocks.MockEnrollmentRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(e *model.Enrollment) bool {
			return e.Amount == 250000 && e.Status == model.EnrollmentPending && e.PaymentStatus == model.PaymentPending
		})).Return(&model.Enrollment{ID: "e1", Formula: "starter", Amount: 250000}, nil)
		n := &recordingNotifier{}
		svc := NewEnrollmentService(repo, newValidator(t), newCatalog(t), n, nil, nil, time.UTC)

		got, err := svc.Submit(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "e1", got.ID)
		require.Len(t, n.events, 1)
		assert.Equal(t, notify.EventEnrollmentCreated, n.events[0].Type)
		assert.Equal(t, "250000", n.events[0].Fields["amount"])
		repo.AssertExpectations(t)
	})

	t.Run("unknown formula", func(t *testing.T) {
		repo := new(repoMocks.MockEnrollmentRepository)
		svc := NewEnrollmentService(repo, newValidator(t), newCatalog(t), nil, nil, nil, time.UTC)

		bad := in
		bad.Formula = "gold"
		_, err := svc.Submit(ctx, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("formula is required", func(t *testing.T) {
		repo := new(repoMocks.MockEnrollmentRepository)
		svc := NewEnrollmentService(repo, newValidator(t), newCatalog(t), nil, nil, nil, time.UTC)

		bad := in
		bad.Formula = ""
		_, err := svc.Submit(ctx, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestEnrollmentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	stored := func() *model.Enrollment {
		return &model.Enrollment{ID: "e1", Status: model.EnrollmentPending, PaymentStatus: model.PaymentPending, Notes: "n"}
	}

	tests := []struct {
		name        string
		in          EnrollmentStatusInput
		wantStatus  model.EnrollmentStatus
		wantPayment model.PaymentStatus
		wantErr     error
	}{
		{name: "payment only", in: EnrollmentStatusInput{PaymentStatus: "paid"}, wantStatus: model.EnrollmentPending, wantPayment: model.PaymentPaid},
		{name: "status only", in: EnrollmentStatusInput{Status: "confirmed"}, wantStatus: model.EnrollmentConfirmed, wantPayment: model.PaymentPending},
		{name: "both", in: EnrollmentStatusInput{Status: "completed", PaymentStatus: "paid"}, wantStatus: model.EnrollmentCompleted, wantPayment: model.PaymentPaid},
		{name: "nothing to change", in: EnrollmentStatusInput{}, wantErr: ErrInvalidStatus},
		{name: "unknown payment", in: EnrollmentStatusInput{PaymentStatus: "partial"}, wantErr: ErrInvalidStatus},
		{name: "unknown status", in: EnrollmentStatusInput{Status: "archived"}, wantErr: ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockEnrollmentRepository)
			if tt.wantErr == nil {
				repo.On("FindByID", ctx, "e1").Return(stored(), nil)
				repo.On("UpdateStatus", ctx, "e1", tt.wantStatus, tt.wantPayment, "n").Return(nil)
			}
			svc := NewEnrollmentService(repo, nil, nil, nil, nil, nil, time.UTC)

			got, err := svc.UpdateStatus(ctx, "e1", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantPayment, got.PaymentStatus)
			repo.AssertExpectations(t)
		})
	}
}
