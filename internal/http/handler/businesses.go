package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/model"
	"tekki/internal/service"
)

// ListAdminBusinesses godoc
//
// @Summary  Filter businesses, sold ones included
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in name, category, description"
// @Param    status query string false "available, reserved, sold or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, name, price, monthly_revenue"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.Business]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses [get]
func ListAdminBusinesses(svc service.BusinessService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return listHandler(log, loc, svc.List)
}

// ExportBusinesses godoc
//
// @Summary  Export businesses
// @Tags     admin
// @Produce  text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q      query string false "Search in name, category, description"
// @Param    status query string false "available, reserved, sold or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, name, price, monthly_revenue"
// @Param    order  query string false "asc or desc"
// @Success  200 {file} file
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/export.csv [get]
// @Router   /admin/businesses/export.xlsx [get]
func ExportBusinesses(svc service.BusinessService, log *slog.Logger, loc *time.Location, format string) fiber.Handler {
	return exportHandler(log, loc, "businesses", format, svc.Export)
}

// CreateBusiness godoc
//
// @Summary  List a business for sale
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body service.BusinessInput true "Business"
// @Success  201 {object} model.Business
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses [post]
func CreateBusiness(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, false, fiber.StatusCreated, func(ctx context.Context, _ string, in service.BusinessInput) (*model.Business, error) {
		return svc.Create(ctx, in)
	})
}

// GetBusiness godoc
//
// @Summary  Business with a fresh image link
// @Tags     admin
// @Produce  json
// @Param    id path string true "Business ID"
// @Success  200 {object} model.Business
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/{id} [get]
func GetBusiness(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// UpdateBusiness godoc
//
// @Summary  Rewrite a business listing, status included when set
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string                true "Business ID"
// @Param    body body service.BusinessInput true "Business"
// @Success  200 {object} model.Business
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/{id} [put]
func UpdateBusiness(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.Update)
}

type businessStatusInput struct {
	Status string `json:"status"`
}

// SetBusinessStatus godoc
//
// @Summary  Mark a business available, reserved or sold
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string              true "Business ID"
// @Param    body body businessStatusInput true "New status"
// @Success  200 {object} model.Business
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/{id}/status [patch]
func SetBusinessStatus(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, func(ctx context.Context, id string, in businessStatusInput) (*model.Business, error) {
		return svc.UpdateStatus(ctx, id, in.Status)
	})
}

// UploadBusinessImage godoc
//
// @Summary  Replace a business image
// @Tags     admin
// @Accept   multipart/form-data
// @Produce  json
// @Param    id    path     string true "Business ID"
// @Param    image formData file   true "JPEG, PNG or WebP"
// @Success  200 {object} model.Business
// @Failure  404 {object} errorPayload
// @Failure  413 {object} errorPayload
// @Failure  415 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/{id}/image [post]
func UploadBusinessImage(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "image is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		b, err := svc.UploadImage(c.UserContext(), id, &service.Upload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
		})
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(b)
	}
}

// DeleteBusiness godoc
//
// @Summary  Delete a business and its image
// @Tags     admin
// @Param    id path string true "Business ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/businesses/{id} [delete]
func DeleteBusiness(svc service.BusinessService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
