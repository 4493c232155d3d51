package routes

import (
	progressController "healthcard_backend/internals/features/progress/progress/controller"
	pointService "healthcard_backend/internals/features/progress/points/service"

	"github.com/gofiber/fiber/v2"
)

func UserProgressRoutes(router fiber.Router, ledger *pointService.Ledger) {
	controller := progressController.NewUserProgressController(ledger)
	userProgressRoutes := router.Group("/user-progress")

	userProgressRoutes.Get("/", controller.GetByUserID)
}
