package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/model"
	"tekki/internal/service"
)

// ListBrands godoc
//
// @Summary  Filter showcase brands
// @Tags     admin
// @Produce  json
// @Param    q      query string false "Search in name, category, description"
// @Param    status query string false "featured, regular or all"
// @Param    from   query string false "YYYY-MM-DD"
// @Param    to     query string false "YYYY-MM-DD"
// @Param    sort   query string false "created_at, name, category"
// @Param    order  query string false "asc or desc"
// @Param    limit  query int    false "Page size, 0 for all"
// @Param    offset query int    false "Offset"
// @Success  200 {object} service.ListResult[model.Brand]
// @Failure  400 {object} errorPayload
// @Security AdminToken
// @Router   /admin/brands [get]
func ListBrands(svc service.BrandService, log *slog.Logger, loc *time.Location) fiber.Handler {
	return listHandler(log, loc, svc.List)
}

// CreateBrand godoc
//
// @Summary  Add a showcase brand
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body body service.BrandInput true "Brand"
// @Success  201 {object} model.Brand
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/brands [post]
func CreateBrand(svc service.BrandService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, false, fiber.StatusCreated, func(ctx context.Context, _ string, in service.BrandInput) (*model.Brand, error) {
		return svc.Create(ctx, in)
	})
}

// GetBrand godoc
//
// @Summary  Showcase brand
// @Tags     admin
// @Produce  json
// @Param    id path string true "Brand ID"
// @Success  200 {object} model.Brand
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/brands/{id} [get]
func GetBrand(svc service.BrandService, log *slog.Logger) fiber.Handler {
	return getHandler(log, svc.Get)
}

// UpdateBrand godoc
//
// @Summary  Rewrite a showcase brand
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string             true "Brand ID"
// @Param    body body service.BrandInput true "Brand"
// @Success  200 {object} model.Brand
// @Failure  404 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security AdminToken
// @Router   /admin/brands/{id} [put]
func UpdateBrand(svc service.BrandService, log *slog.Logger) fiber.Handler {
	return bodyHandler(log, true, fiber.StatusOK, svc.Update)
}

// DeleteBrand godoc
//
// @Summary  Remove a showcase brand
// @Tags     admin
// @Param    id path string true "Brand ID"
// @Success  204
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security AdminToken
// @Router   /admin/brands/{id} [delete]
func DeleteBrand(svc service.BrandService, log *slog.Logger) fiber.Handler {
	return deleteHandler(log, svc.Delete)
}
