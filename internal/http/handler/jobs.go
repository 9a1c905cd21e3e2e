package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/model"
	"tekki/internal/service"
)

// ListJobs godoc
//
// @Summary  Filter job openings
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in title, department, location, contract type"
// @Param    status query string false "active, inactive or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, title, department, location"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.JobOpening]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs [get]
func ListJobs(svc service.JobService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return listHandler(log, loc, svc.List)
}

// ExportJobs godoc
//
// @Summary  Export job openings
// @Tags     admin
// @Produce  text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q      query string false "Search in title, department, location, contract type"
// @Param    status query string false "active, inactive or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, title, department, location"
// @Param    order  query string false "asc or desc"
// @Success  200 {file} file
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs/export.csv [get]
// @Router   /admin/jobs/export.xlsx [get]
func ExportJobs(svc service.JobService, log *slog.Logger, loc *time.Location, format string) fiber.Handler {
	return exportHandler(log, loc, "jobs", format, svc.Export)
}

// CreateJob godoc
//
// @Summary  Create a job opening
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body service.JobInput true "Opening"
// @Success  201 {object} model.JobOpening
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs [post]
func CreateJob(svc service.JobService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, false, fiber.StatusCreated, func(ctx context.Context, _ string, in service.JobInput) (*model.JobOpening, error) {
		return svc.Create(ctx, in)
	})
}

// GetJob godoc
//
// @Summary  Job opening, active or not
// @Tags     admin
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} model.JobOpening
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs/{id} [get]
func GetJob(svc service.JobService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// UpdateJob godoc
//
// @Summary  Rewrite a job opening
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string           true "Job ID"
// @Param    body body service.JobInput true "Opening"
// @Success  200 {object} model.JobOpening
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs/{id} [put]
func UpdateJob(svc service.JobService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.Update)
}

type activeInput struct {
	IsActive *bool `json:"is_active"`
}

// SetJobActive godoc
//
// @Summary  Open or close a job opening
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string      true "Job ID"
// @Param    body body activeInput true "New state"
// @Success  200 {object} model.JobOpening
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs/{id}/active [patch]
func SetJobActive(svc service.JobService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, func(ctx context.Context, id string, in activeInput) (*model.JobOpening, error) {
		if in.IsActive == nil {
			return nil, fmt.Errorf("%w: is_active is required", service.ErrValidation)
		}
		return svc.SetActive(ctx, id, *in.IsActive)
	})
}

// DeleteJob godoc
//
// @Summary  Delete a job opening and its applications
// @Tags     admin
// @Param    id path string true "Job ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/jobs/{id} [delete]
func DeleteJob(svc service.JobService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
