package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/service"
)

// ListEnrollments godoc
//
// @Summary  Filter formula enrollments
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in name, email, phone, country, city, formula"
// @Param    status query string false "pending, confirmed, completed, cancelled or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, amount, payment_status"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.Enrollment]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/enrollments [get]
func ListEnrollments(svc service.EnrollmentService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return listHandler(log, loc, svc.List)
}

// ExportEnrollments godoc
//
// @Summary  Export formula enrollments
// @Tags     admin
// @Produce  text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q      query string false "Search in name, email, phone, country, city, formula"
// @Param    status query string false "pending, confirmed, completed, cancelled or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, amount, payment_status"
// @Param    order  query string false "asc or desc"
// @Success  200 {file} file
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/enrollments/export.csv [get]
// @Router   /admin/enrollments/export.xlsx [get]
func ExportEnrollments(svc service.EnrollmentService, log *slog.Logger, loc *time.Location, format string) fiber.Handler {
	return exportHandler(log, loc, "enrollments", format, svc.Export)
}

// GetEnrollment godoc
//
// @Summary  Formula enrollment
// @Tags     admin
// @Produce  json
// @Param    id path string true "Enrollment ID"
// @Success  200 {object} model.Enrollment
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/enrollments/{id} [get]
func GetEnrollment(svc service.EnrollmentService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// UpdateEnrollmentStatus godoc
//
// @Summary  Update enrollment and payment status
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string                        true "Enrollment ID"
// @Param    body body service.EnrollmentStatusInput true "Statuses and notes"
// @Success  200 {object} model.Enrollment
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/enrollments/{id}/status [patch]
func UpdateEnrollmentStatus(svc service.EnrollmentService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.UpdateStatus)
}

// DeleteEnrollment godoc
//
// @Summary  Delete a formula enrollment
// @Tags     admin
// @Param    id path string true "Enrollment ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/enrollments/{id} [delete]
func DeleteEnrollment(svc service.EnrollmentService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
