package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/listing"
	"tekki/internal/service"
)

func listHandler[T any](log *slog.Logger, loc *time.Location, fn func(ctx context.Context, q listing.Query) (*service.ListResult[T], error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := listQuery(c, loc)
		if err != nil {
			return fail(c, log, err)
		}
		res, err := fn(c.UserContext(), q)
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(res)
	}
}

func getHandler[T any](log *slog.Logger, fn func(ctx context.Context, id string) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}
		v, err := fn(c.UserContext(), id)
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(v)
	}
}

func deleteHandler(log *slog.Logger, fn func(ctx context.Context, id string) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, log, err)
		}
		if err := fn(c.UserContext(), id); err != nil {
			return fail(c, log, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// bodyHandler decodes a JSON body of type In and passes it with the :id (if any) to fn.
func bodyHandler[In, Out any](log *slog.Logger, withID bool, status int, fn func(ctx context.Context, id string, in In) (*Out, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if withID {
			var err error
			if id, err = idParam(c); err != nil {
				return fail(c, log, err)
			}
		}
		var in In
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := fn(c.UserContext(), id, in)
		if err != nil {
			return fail(c, log, err)
		}
		return c.Status(status).JSON(out)
	}
}

// Dashboard godoc
//
// @Summary  Back-office dashboard cards
// @Tags     admin
// @Produce  json
// @Success  200 {object} service.Dashboard
// @Failure  401 {object} errorPayload
// @Security AdminToken
// @Router   /admin/dashboard [get]
func Dashboard(svc service.DashboardService, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Summary(c.UserContext())
		if err != nil {
			return fail(c, log, err)
		}
		return c.JSON(d)
	}
}
