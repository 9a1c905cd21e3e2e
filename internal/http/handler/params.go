package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tekki/internal/listing"
)

const dateLayout = "2006-01-02"

// paramError is a malformed path or query parameter, reported as 400 with its code.
type paramError struct {
	code    string
	message string
}

func (e *paramError) Error() string { return e.message }

func badParam(code, message string) error {
	return &paramError{code: code, message: message}
}

// idParam returns the :id path parameter if it is a UUID.
func idParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", badParam("INVALID_ID", "invalid id format")
	}
	return id, nil
}

// listQuery reads q, status, from, to, sort, order, limit and offset.
// Missing limit means no paging; dates are YYYY-MM-DD in loc or RFC 3339.
func listQuery(c *fiber.Ctx, loc *time.Location) (listing.Query, error) {
	q := listing.Query{
		Search: c.Query("q"),
		Status: c.Query("status"),
		SortBy: c.Query("sort", listing.SortCreatedAt),
		Order:  strings.ToLower(c.Query("order", listing.OrderDesc)),
	}
	if q.Order != listing.OrderAsc && q.Order != listing.OrderDesc {
		return q, badParam("INVALID_ORDER", "order must be asc or desc")
	}

	var err error
	if q.Limit, err = intQuery(c, "limit"); err != nil {
		return q, badParam("INVALID_LIMIT", "invalid limit")
	}
	if q.Offset, err = intQuery(c, "offset"); err != nil {
		return q, badParam("INVALID_OFFSET", "invalid offset")
	}
	if q.From, err = dateQuery(c, "from", loc); err != nil {
		return q, badParam("INVALID_DATE", "from must be YYYY-MM-DD")
	}
	if q.To, err = dateQuery(c, "to", loc); err != nil {
		return q, badParam("INVALID_DATE", "to must be YYYY-MM-DD")
	}
	return q, nil
}

func intQuery(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func dateQuery(c *fiber.Ctx, key string, loc *time.Location) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
