package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/pkg/logger"
)

// RequestLogger пишет структурную строку на каждый запрос: метод, путь,
// статус, длительность. Ошибки обработчиков уже превращены в JSON-ответы,
// сюда доходит только итоговый статус.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.Info()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}
