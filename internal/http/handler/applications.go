package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/export"
	"tekki/internal/listing"
	"tekki/internal/model"
	"tekki/internal/service"
)

// ListApplications godoc
//
// @Summary  Filter job applications
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in name, email, phone, job title"
// @Param    status query string false "pending, reviewing, interview, accepted, rejected or all"
// @Param    job_id query string false "Restrict to one opening"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, job_title, status"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.JobApplication]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications [get]
func ListApplications(svc service.ApplicationService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobID := c.Query("job_id")
		return listHandler(log, loc, func(ctx context.Context, q listing.Query) (*service.ListResult[model.JobApplication], error) {
			return svc.List(ctx, q, jobID)
		})(c)
	}
}

// ExportApplications godoc
//
// @Summary  Export job applications
// @Tags     admin
// @Produce  text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q      query string false "Search in name, email, phone, job title"
// @Param    status query string false "pending, reviewing, interview, accepted, rejected or all"
// @Param    job_id query string false "Restrict to one opening"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, job_title, status"
// @Param    order  query string false "asc or desc"
// @Success  200 {file} file
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications/export.csv [get]
// @Router   /admin/applications/export.xlsx [get]
func ExportApplications(svc service.ApplicationService, log *slog.Logger, loc *time.Location, format string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobID := c.Query("job_id")
		return exportHandler(log, loc, "applications", format, func(ctx context.Context, q listing.Query) (export.Table, error) {
			return svc.Export(ctx, q, jobID)
		})(c)
	}
}

// GetApplication godoc
//
// @Summary  Job application with a fresh résumé link
// @Tags     admin
// @Produce  json
// @Param    id path string true "Application ID"
// @Success  200 {object} model.JobApplication
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications/{id} [get]
func GetApplication(svc service.ApplicationService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// DownloadResume redirects to a presigned résumé URL.
//
// @Summary  Résumé download
// @Tags     admin
// @Param    id path string true "Application ID"
// @Success  302
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications/{id}/resume [get]
func DownloadResume(svc service.ApplicationService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}
		u, err := svc.ResumeURL(c.UserContext(), id)
		if err != nil {
			return fail(c, log, err)
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}

// UpdateApplicationStatus godoc
//
// @Summary  Move an application through review
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Application ID"
// @Param    body body service.StatusInput true "Status and notes"
// @Success  200 {object} model.JobApplication
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications/{id}/status [patch]
func UpdateApplicationStatus(svc service.ApplicationService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.UpdateStatus)
}

// DeleteApplication godoc
//
// @Summary  Delete an application and its résumé
// @Tags     admin
// @Param    id path string true "Application ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/applications/{id} [delete]
func DeleteApplication(svc service.ApplicationService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
