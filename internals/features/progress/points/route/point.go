package routes

import (
	pointController "healthcard_backend/internals/features/progress/points/controller"
	"healthcard_backend/internals/features/progress/points/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserPointRoutes(router fiber.Router, db *gorm.DB, ledger *service.Ledger) {
	userPointLogController := pointController.NewUserPointLogController(db, ledger)

	router.Get("/user-point-logs", userPointLogController.GetByUserID)
	router.Post("/update-points", userPointLogController.UpdatePoints)
}
