package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"healthcard_backend/internals/configs"
	"healthcard_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan: recover → request id → log → cors → limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	if !configs.GetBool("DISABLE_RATE_LIMIT") {
		app.Use(GlobalRateLimiter())
	}
}

// RequestID: pakai X-Request-ID dari client kalau ada, plus timeout guard per request.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
