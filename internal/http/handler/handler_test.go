package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tekki/internal/catalog"
	"tekki/internal/export"
	"tekki/internal/http/middleware"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/service"
	serviceMocks "tekki/internal/service/mocks"
)

type testServices struct {
	jobs        *serviceMocks.MockJobService
	apps        *serviceMocks.MockApplicationService
	leads       *serviceMocks.MockLeadService
	enrollments *serviceMocks.MockEnrollmentService
	businesses  *serviceMocks.MockBusinessService
	brands      *serviceMocks.MockBrandService
	dashboard   *serviceMocks.MockDashboardService
}

func newTestApp(t *testing.T, adminToken string) (*fiber.App, testServices) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	s := testServices{
		jobs:        new(serviceMocks.MockJobService),
		apps:        new(serviceMocks.MockApplicationService),
		leads:       new(serviceMocks.MockLeadService),
		enrollments: new(serviceMocks.MockEnrollmentService),
		businesses:  new(serviceMocks.MockBusinessService),
		brands:      new(serviceMocks.MockBrandService),
		dashboard:   new(serviceMocks.MockDashboardService),
	}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, Deps{
		Catalog:      cat,
		Jobs:         s.jobs,
		Applications: s.apps,
		Leads:        s.leads,
		Enrollments:  s.enrollments,
		Businesses:   s.businesses,
		Brands:       s.brands,
		Dashboard:    s.dashboard,
		AdminToken:   adminToken,
		Logger:       nil,
		Location:     time.UTC,
	})
	return app, s
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", Liveness())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogRoutes(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/formulas", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var formulas []model.Formula
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&formulas))
	assert.NotEmpty(t, formulas)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/formulas/business", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var f model.Formula
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&f))
	assert.True(t, f.Highlighted)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/case-studies/unknown", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
}

func TestSubmitLead(t *testing.T) {
	app, s := newTestApp(t, "")
	in := service.LeadInput{FullName: "Awa Diop", Email: "awa@example.com"}

	t.Run("created", func(t *testing.T) {
		s.leads.On("Submit", mock.Anything, in).Return(&model.Lead{ID: "l1", Status: model.LeadNew}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/leads", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var lead model.Lead
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&lead))
		assert.Equal(t, "l1", lead.ID)
	})

	t.Run("validation failure", func(t *testing.T) {
		s.leads.On("Submit", mock.Anything, mock.Anything).
			Return(nil, errors.Join(service.ErrValidation, errors.New("email: is not valid"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/leads", service.LeadInput{Email: "x"}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "email")
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		s.leads.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/leads", in))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
	})

	s.leads.AssertExpectations(t)
}

func TestSubmitEnrollment(t *testing.T) {
	app, s := newTestApp(t, "")
	in := service.EnrollmentInput{FullName: "Moussa Ndiaye", Email: "moussa@example.com", Phone: "+221770000000", Formula: "starter", Amount: 150000}

	t.Run("created", func(t *testing.T) {
		s.enrollments.On("Submit", mock.Anything, in).
			Return(&model.Enrollment{ID: "e1", Formula: "starter", Amount: 150000, PaymentStatus: model.PaymentPending, Status: model.EnrollmentPending}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/enrollments", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var e model.Enrollment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
		assert.Equal(t, "e1", e.ID)
		assert.Equal(t, model.PaymentPending, e.PaymentStatus)
	})

	t.Run("unknown formula", func(t *testing.T) {
		bad := in
		bad.Formula = "platinum"
		s.enrollments.On("Submit", mock.Anything, bad).
			Return(nil, errors.Join(service.ErrValidation, errors.New("formula: unknown formula"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/enrollments", bad))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "formula")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/enrollments", strings.NewReader(`{"amount":"lots"`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	s.enrollments.AssertExpectations(t)
}

func multipartRequest(t *testing.T, target, fileField, filename string, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		part.Write([]byte("%PDF-1.7 resume"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestApply(t *testing.T) {
	app, s := newTestApp(t, "")
	jobID := uuid.NewString()
	fields := map[string]string{"full_name": "Awa Diop", "email": "awa@example.com", "phone": "+221770000000"}

	t.Run("created", func(t *testing.T) {
		s.apps.On("Apply", mock.Anything, jobID, mock.MatchedBy(func(in service.ApplicationInput) bool {
			return in.FullName == "Awa Diop" && in.Phone == "+221770000000"
		}), mock.MatchedBy(func(u *service.Upload) bool {
			b, _ := io.ReadAll(u.Reader)
			return u.Filename == "cv.pdf" && u.Size == 15 && string(b) == "%PDF-1.7 resume"
		})).Return(&model.JobApplication{ID: "a1", JobID: jobID}, nil).Once()

		resp, _ := app.Test(multipartRequest(t, "/api/jobs/"+jobID+"/applications", "resume", "cv.pdf", fields))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("resume missing", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest(t, "/api/jobs/"+jobID+"/applications", "", "", fields))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("closed job", func(t *testing.T) {
		s.apps.On("Apply", mock.Anything, jobID, mock.Anything, mock.Anything).Return(nil, service.ErrJobClosed).Once()

		resp, _ := app.Test(multipartRequest(t, "/api/jobs/"+jobID+"/applications", "resume", "cv.pdf", fields))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "JOB_CLOSED", decodeError(t, resp).Error.Code)
	})

	t.Run("unsupported file", func(t *testing.T) {
		s.apps.On("Apply", mock.Anything, jobID, mock.Anything, mock.Anything).
			Return(nil, errors.Join(service.ErrUnsupportedFile, errors.New(`".exe"`))).Once()

		resp, _ := app.Test(multipartRequest(t, "/api/jobs/"+jobID+"/applications", "resume", "cv.exe", fields))

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})

	t.Run("invalid job id", func(t *testing.T) {
		resp, _ := app.Test(multipartRequest(t, "/api/jobs/not-a-uuid/applications", "resume", "cv.pdf", fields))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	s.apps.AssertExpectations(t)
}

func TestAdminList(t *testing.T) {
	app, s := newTestApp(t, "")

	t.Run("passes the listing query", func(t *testing.T) {
		s.leads.On("List", mock.Anything, mock.MatchedBy(func(q listing.Query) bool {
			return q.Search == "awa" && q.Status == "new" && q.Limit == 10 && q.Offset == 5 &&
				q.SortBy == "full_name" && q.Order == "asc" &&
				q.From != nil && q.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) && q.To == nil
		})).Return(&service.ListResult[model.Lead]{Items: []model.Lead{{ID: "l1"}}, Total: 11}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet,
			"/admin/leads?q=awa&status=new&limit=10&offset=5&sort=full_name&order=ASC&from=2026-03-01", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var page struct {
			Data  []model.Lead `json:"data"`
			Total int          `json:"total"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		assert.Equal(t, 11, page.Total)
		assert.Len(t, page.Data, 1)
	})

	t.Run("applications filter by job", func(t *testing.T) {
		s.apps.On("List", mock.Anything, mock.Anything, "j-1").
			Return(&service.ListResult[model.JobApplication]{Items: []model.JobApplication{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/applications?job_id=j-1", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	tests := []struct {
		query string
		code  string
	}{
		{"limit=abc", "INVALID_LIMIT"},
		{"limit=-1", "INVALID_LIMIT"},
		{"offset=x", "INVALID_OFFSET"},
		{"order=sideways", "INVALID_ORDER"},
		{"from=01/03/2026", "INVALID_DATE"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/enrollments?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}

	s.leads.AssertExpectations(t)
	s.apps.AssertExpectations(t)
}

func TestAdminExport(t *testing.T) {
	app, s := newTestApp(t, "")
	tbl := export.Table{
		Sheet:   "Leads",
		Headers: []string{"Full name", "Message"},
		Rows:    [][]string{{"Awa Diop", `Hello, "TEKKI"`}},
	}
	s.leads.On("Export", mock.Anything, mock.MatchedBy(func(q listing.Query) bool {
		return q.Search == "awa"
	})).Return(tbl, nil).Twice()

	t.Run("csv", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/leads/export.csv?q=awa", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, contentTypeCSV, resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `attachment; filename="leads-`)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "Full name,Message\nAwa Diop,\"Hello, \"\"TEKKI\"\"\"\n", string(body))
	})

	t.Run("xlsx", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/leads/export.xlsx?q=awa", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, contentTypeXLSX, resp.Header.Get(fiber.HeaderContentType))
		body, _ := io.ReadAll(resp.Body)
		assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx is a zip archive")
	})

	s.leads.AssertExpectations(t)
}

func TestAdminStatusAndDelete(t *testing.T) {
	app, s := newTestApp(t, "")
	id := uuid.NewString()

	t.Run("lead status", func(t *testing.T) {
		notes := "call back monday"
		s.leads.On("UpdateStatus", mock.Anything, id, service.StatusInput{Status: "contacted", Notes: &notes}).
			Return(&model.Lead{ID: id, Status: model.LeadContacted, Notes: notes}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/admin/leads/"+id+"/status", map[string]string{"status": "contacted", "notes": notes}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid status", func(t *testing.T) {
		s.enrollments.On("UpdateStatus", mock.Anything, id, service.EnrollmentStatusInput{PaymentStatus: "partial"}).
			Return(nil, service.ErrInvalidStatus).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/admin/enrollments/"+id+"/status", map[string]string{"payment_status": "partial"}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "INVALID_STATUS", decodeError(t, resp).Error.Code)
	})

	t.Run("job active flag required", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/admin/jobs/"+id+"/active", map[string]string{}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete application", func(t *testing.T) {
		s.apps.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/admin/applications/"+id, nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("delete missing business", func(t *testing.T) {
		s.businesses.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/admin/businesses/"+id, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("resume redirect", func(t *testing.T) {
		s.apps.On("ResumeURL", mock.Anything, id).Return("https://media.example/resumes/x.pdf?sig=1", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/applications/"+id+"/resume", nil))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://media.example/resumes/x.pdf?sig=1", resp.Header.Get(fiber.HeaderLocation))
	})

	s.leads.AssertExpectations(t)
	s.enrollments.AssertExpectations(t)
	s.apps.AssertExpectations(t)
	s.businesses.AssertExpectations(t)
}

func TestAdminCreateJob(t *testing.T) {
	app, s := newTestApp(t, "")
	in := service.JobInput{Title: "Designer", ContractType: "freelance", Requirements: []string{"Figma"}}
	s.jobs.On("Create", mock.Anything, in).Return(&model.JobOpening{ID: "j1", Title: "Designer"}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/jobs", in))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	s.jobs.AssertExpectations(t)
}

func TestAdminUpdate(t *testing.T) {
	app, s := newTestApp(t, "")
	jobID, bizID, brandID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	t.Run("job", func(t *testing.T) {
		in := service.JobInput{Title: "Senior Designer", ContractType: "cdi"}
		s.jobs.On("Update", mock.Anything, jobID, in).
			Return(&model.JobOpening{ID: jobID, Title: "Senior Designer", Slug: "senior-designer-j1"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/jobs/"+jobID, in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var j model.JobOpening
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&j))
		assert.Equal(t, "senior-designer-j1", j.Slug)
	})

	t.Run("business with status", func(t *testing.T) {
		in := service.BusinessInput{Name: "Boutique Wax", Price: 900000, Status: "reserved"}
		s.businesses.On("Update", mock.Anything, bizID, in).
			Return(&model.Business{ID: bizID, Name: "Boutique Wax", Status: model.BusinessReserved}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/businesses/"+bizID, in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var b model.Business
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
		assert.Equal(t, model.BusinessReserved, b.Status)
	})

	t.Run("unknown business", func(t *testing.T) {
		missing := uuid.NewString()
		in := service.BusinessInput{Name: "Ghost", Price: 1}
		s.businesses.On("Update", mock.Anything, missing, in).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/businesses/"+missing, in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("brand slug collision", func(t *testing.T) {
		in := service.BrandInput{Name: "Zeyna"}
		s.brands.On("Update", mock.Anything, brandID, in).
			Return(nil, fmt.Errorf("%w: brands_slug_key", service.ErrConflict)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/brands/"+brandID, in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "CONFLICT", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "brands_slug_key")
	})

	s.jobs.AssertExpectations(t)
	s.businesses.AssertExpectations(t)
	s.brands.AssertExpectations(t)
}

func TestAdminDashboard(t *testing.T) {
	app, s := newTestApp(t, "s3cret")
	s.dashboard.On("Summary", mock.Anything).Return(&service.Dashboard{Jobs: service.JobCards{Total: 3, Active: 2}}, nil).Once()

	t.Run("requires the admin token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("returns the cards", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer s3cret")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var d service.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		assert.Equal(t, 2, d.Jobs.Active)
	})

	s.dashboard.AssertExpectations(t)
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app, _ := newTestApp(t, "")

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.NotEmpty(t, body.RequestID)
}
