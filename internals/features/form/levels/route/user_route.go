package route

import (
	"github.com/gofiber/fiber/v2"

	levelController "healthcard_backend/internals/features/form/levels/controller"
	"healthcard_backend/internals/features/form/levels/service"
)

func LevelUserRoutes(router fiber.Router, roadmap *service.Roadmap) {
	ctrl := levelController.NewLevelController(roadmap)

	router.Get("/levels", ctrl.List)
	router.Get("/form-progress", ctrl.Progress)
}
