package route

import (
	"github.com/gofiber/fiber/v2"

	flowController "healthcard_backend/internals/features/form/flow/controller"
	"healthcard_backend/internals/features/form/flow/service"
)

func FlowUserRoutes(router fiber.Router, svc *service.FlowService) {
	ctrl := flowController.NewFlowController(svc)

	flow := router.Group("/flow")
	flow.Get("/", ctrl.Current)
	flow.Post("/start", ctrl.Start)
	flow.Post("/answer", ctrl.Answer)
	flow.Post("/next", ctrl.Next)
	flow.Post("/previous", ctrl.Previous)
	flow.Post("/skip", ctrl.RequestSkip)
	flow.Post("/skip/confirm", ctrl.ConfirmSkip)
	flow.Post("/skip/cancel", ctrl.CancelSkip)
}
