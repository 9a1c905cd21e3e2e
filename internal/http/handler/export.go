package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"tekki/internal/export"
	"tekki/internal/listing"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type tableFunc func(ctx context.Context, q listing.Query) (export.Table, error)

// exportHandler runs the list query without paging and streams the table as a download.
func exportHandler(log *slog.Logger, loc *time.Location, name, format string, fn tableFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := listQuery(c, loc)
		if err != nil {
			return fail(c, log, err)
		}
		t, err := fn(c.UserContext(), q)
		if err != nil {
			return fail(c, log, err)
		}
		return sendTable(c, t, name, format, loc)
	}
}

func sendTable(c *fiber.Ctx, t export.Table, name, format string, loc *time.Location) error {
	var (
		body []byte
		ct   string
		err  error
	)
	switch format {
	case formatXLSX:
		body, err = export.XLSX(t)
		ct = contentTypeXLSX
	default:
		format = formatCSV
		body, err = export.CSV(t)
		ct = contentTypeCSV
	}
	if err != nil {
		return fmt.Errorf("render %s export: %w", format, err)
	}

	if loc == nil {
		loc = time.UTC
	}
	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().In(loc).Format("20060102"), format)
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
