package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/service"
)

// result unpacks a (*T, error) return, tolerating a nil first value.
func result[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func table(args mock.Arguments) (export.Table, error) {
	if args.Get(0) == nil {
		return export.Table{}, args.Error(1)
	}
	return args.Get(0).(export.Table), args.Error(1)
}

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) Submit(ctx context.Context, in service.LeadInput) (*model.Lead, error) {
	return result[model.Lead](m.Called(ctx, in))
}

func (m *MockLeadService) List(ctx context.Context, q listing.Query) (*service.ListResult[model.Lead], error) {
	return result[service.ListResult[model.Lead]](m.Called(ctx, q))
}

func (m *MockLeadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	return result[model.Lead](m.Called(ctx, id))
}

func (m *MockLeadService) UpdateStatus(ctx context.Context, id string, in service.StatusInput) (*model.Lead, error) {
	return result[model.Lead](m.Called(ctx, id, in))
}

func (m *MockLeadService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLeadService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	return table(m.Called(ctx, q))
}

type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Submit(ctx context.Context, in service.EnrollmentInput) (*model.Enrollment, error) {
	return result[model.Enrollment](m.Called(ctx, in))
}

func (m *MockEnrollmentService) List(ctx context.Context, q listing.Query) (*service.ListResult[model.Enrollment], error) {
	return result[service.ListResult[model.Enrollment]](m.Called(ctx, q))
}

func (m *MockEnrollmentService) Get(ctx context.Context, id string) (*model.Enrollment, error) {
	return result[model.Enrollment](m.Called(ctx, id))
}

func (m *MockEnrollmentService) UpdateStatus(ctx context.Context, id string, in service.EnrollmentStatusInput) (*model.Enrollment, error) {
	return result[model.Enrollment](m.Called(ctx, id, in))
}

func (m *MockEnrollmentService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEnrollmentService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	return table(m.Called(ctx, q))
}

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListOpen(ctx context.Context) ([]model.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobOpening), args.Error(1)
}

func (m *MockJobService) GetOpen(ctx context.Context, id string) (*model.JobOpening, error) {
	return result[model.JobOpening](m.Called(ctx, id))
}

func (m *MockJobService) List(ctx context.Context, q listing.Query) (*service.ListResult[model.JobOpening], error) {
	return result[service.ListResult[model.JobOpening]](m.Called(ctx, q))
}

func (m *MockJobService) Get(ctx context.Context, id string) (*model.JobOpening, error) {
	return result[model.JobOpening](m.Called(ctx, id))
}

func (m *MockJobService) Create(ctx context.Context, in service.JobInput) (*model.JobOpening, error) {
	return result[model.JobOpening](m.Called(ctx, in))
}

func (m *MockJobService) Update(ctx context.Context, id string, in service.JobInput) (*model.JobOpening, error) {
	return result[model.JobOpening](m.Called(ctx, id, in))
}

func (m *MockJobService) SetActive(ctx context.Context, id string, active bool) (*model.JobOpening, error) {
	return result[model.JobOpening](m.Called(ctx, id, active))
}

func (m *MockJobService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	return table(m.Called(ctx, q))
}

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, jobID string, in service.ApplicationInput, resume *service.Upload) (*model.JobApplication, error) {
	return result[model.JobApplication](m.Called(ctx, jobID, in, resume))
}

func (m *MockApplicationService) List(ctx context.Context, q listing.Query, jobID string) (*service.ListResult[model.JobApplication], error) {
	return result[service.ListResult[model.JobApplication]](m.Called(ctx, q, jobID))
}

func (m *MockApplicationService) Get(ctx context.Context, id string) (*model.JobApplication, error) {
	return result[model.JobApplication](m.Called(ctx, id))
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, id string, in service.StatusInput) (*model.JobApplication, error) {
	return result[model.JobApplication](m.Called(ctx, id, in))
}

func (m *MockApplicationService) ResumeURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockApplicationService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockApplicationService) Export(ctx context.Context, q listing.Query, jobID string) (export.Table, error) {
	return table(m.Called(ctx, q, jobID))
}

type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) ListPublic(ctx context.Context) ([]model.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessService) List(ctx context.Context, q listing.Query) (*service.ListResult[model.Business], error) {
	return result[service.ListResult[model.Business]](m.Called(ctx, q))
}

func (m *MockBusinessService) Get(ctx context.Context, id string) (*model.Business, error) {
	return result[model.Business](m.Called(ctx, id))
}

func (m *MockBusinessService) Create(ctx context.Context, in service.BusinessInput) (*model.Business, error) {
	return result[model.Business](m.Called(ctx, in))
}

func (m *MockBusinessService) Update(ctx context.Context, id string, in service.BusinessInput) (*model.Business, error) {
	return result[model.Business](m.Called(ctx, id, in))
}

func (m *MockBusinessService) UpdateStatus(ctx context.Context, id string, status string) (*model.Business, error) {
	return result[model.Business](m.Called(ctx, id, status))
}

func (m *MockBusinessService) UploadImage(ctx context.Context, id string, img *service.Upload) (*model.Business, error) {
	return result[model.Business](m.Called(ctx, id, img))
}

func (m *MockBusinessService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBusinessService) Export(ctx context.Context, q listing.Query) (export.Table, error) {
	return table(m.Called(ctx, q))
}

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) Showcase(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Brand), args.Error(1)
}

func (m *MockBrandService) List(ctx context.Context, q listing.Query) (*service.ListResult[model.Brand], error) {
	return result[service.ListResult[model.Brand]](m.Called(ctx, q))
}

func (m *MockBrandService) Get(ctx context.Context, id string) (*model.Brand, error) {
	return result[model.Brand](m.Called(ctx, id))
}

func (m *MockBrandService) Create(ctx context.Context, in service.BrandInput) (*model.Brand, error) {
	return result[model.Brand](m.Called(ctx, in))
}

func (m *MockBrandService) Update(ctx context.Context, id string, in service.BrandInput) (*model.Brand, error) {
	return result[model.Brand](m.Called(ctx, id, in))
}

func (m *MockBrandService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*service.Dashboard, error) {
	return result[service.Dashboard](m.Called(ctx))
}

func (m *MockDashboardService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

var (
	_ service.LeadService        = (*MockLeadService)(nil)
	_ service.EnrollmentService  = (*MockEnrollmentService)(nil)
	_ service.JobService         = (*MockJobService)(nil)
	_ service.ApplicationService = (*MockApplicationService)(nil)
	_ service.BusinessService    = (*MockBusinessService)(nil)
	_ service.BrandService       = (*MockBrandService)(nil)
	_ service.DashboardService   = (*MockDashboardService)(nil)
)
