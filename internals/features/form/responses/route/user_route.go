package route

import (
	"github.com/gofiber/fiber/v2"

	responseController "healthcard_backend/internals/features/form/responses/controller"
	"healthcard_backend/internals/features/form/responses/service"
)

func ResponseUserRoutes(router fiber.Router, store *service.ResponseStore) {
	ctrl := responseController.NewResponseController(store)

	router.Post("/responses", ctrl.Submit)
	router.Get("/sublevels/:id/responses", ctrl.Resolve)
}
