package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// parseDateQuery читает дату из query: "2006-01-02" или RFC3339.
// Пустой или нечитаемый параметр — отсутствие фильтра.
func parseDateQuery(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

// parseInt64Query читает целочисленный фильтр; nil — фильтра нет.
func parseInt64Query(c *fiber.Ctx, key string) *int64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseDecimalQuery читает денежный фильтр; nil — фильтра нет.
func parseDecimalQuery(c *fiber.Ctx, key string) *decimal.Decimal {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &v
}

// parseIDParam читает идентификатор из пути; 0 — некорректный id.
func parseIDParam(c *fiber.Ctx, key string) int64 {
	v, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
