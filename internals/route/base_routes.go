package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Healthcard API running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		// Redis opsional: tanpa Redis session flow jatuh ke memori, server tetap OK
		redisStatus := "Disabled"
		if rdb != nil {
			redisStatus = "Connected"
			if err := rdb.Ping(ctx).Err(); err != nil {
				redisStatus = "Redis connection error"
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"redis":          redisStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
