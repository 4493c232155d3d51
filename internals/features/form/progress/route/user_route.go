package route

import (
	"github.com/gofiber/fiber/v2"

	progressController "healthcard_backend/internals/features/form/progress/controller"
	"healthcard_backend/internals/features/form/progress/service"
)

func SublevelProgressUserRoutes(router fiber.Router, reader *service.Reader) {
	ctrl := progressController.NewSublevelProgressController(reader)
	router.Get("/sublevels/:id/progress", ctrl.Get)
}
