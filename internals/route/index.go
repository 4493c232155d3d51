package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"healthcard_backend/internals/configs"
	"healthcard_backend/internals/middlewares/auth"
	routeDetails "healthcard_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) *routeDetails.Services {
	startTime = time.Now()

	log.Println("[INFO] Building services...")
	svc, err := routeDetails.NewServices(db, rdb)
	if err != nil {
		log.Fatalf("❌ Gagal menyiapkan service: %v", err)
	}

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db, rdb)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Form routes...")
	routeDetails.FormUserRoutes(private, svc)

	log.Println("[INFO] Mounting Progress routes...")
	routeDetails.ProgressUserRoutes(private, svc)

	return svc
}
