package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/service"
)

// ListLeads godoc
//
// @Summary  Filter contact requests
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in name, email, phone, company, formula, message"
// @Param    status query string false "new, contacted, qualified, converted, lost or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, company, status"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.Lead]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/leads [get]
func ListLeads(svc service.LeadService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return listHandler(log, loc, svc.List)
}

// ExportLeads godoc
//
// @Summary  Export contact requests
// @Tags     admin
// @Produce  text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q      query string false "Search in name, email, phone, company, formula, message"
// @Param    status query string false "new, contacted, qualified, converted, lost or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, full_name, company, status"
// @Param    order  query string false "asc or desc"
// @Success  200 {file} file
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/leads/export.csv [get]
// @Router   /admin/leads/export.xlsx [get]
func ExportLeads(svc service.LeadService, log *slog.Logger, loc *time.Location, format string) fiber.Handler {
	return exportHandler(log, loc, "leads", format, svc.Export)
}

// GetLead godoc
//
// @Summary  Contact request
// @Tags     admin
// @Produce  json
// @Param    id path string true "Lead ID"
// @Success  200 {object} model.Lead
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/leads/{id} [get]
func GetLead(svc service.LeadService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// UpdateLeadStatus godoc
//
// @Summary  Move a lead through the pipeline
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Lead ID"
// @Param    body body service.StatusInput true "Status and notes"
// @Success  200 {object} model.Lead
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/leads/{id}/status [patch]
func UpdateLeadStatus(svc service.LeadService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.UpdateStatus)
}

// DeleteLead godoc
//
// @Summary  Delete a contact request
// @Tags     admin
// @Param    id path string true "Lead ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/leads/{id} [delete]
func DeleteLead(svc service.LeadService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
