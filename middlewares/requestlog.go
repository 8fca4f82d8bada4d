package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIdHeader = "X-Request-ID"

// RequestLogger tags every request with an id (client-provided or
// generated) and logs method, path, status and duration.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := c.Get(requestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(requestIdHeader, requestId)

		start := time.Now()
		err := c.Next()

		log.Infow("request",
			"id", requestId,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
