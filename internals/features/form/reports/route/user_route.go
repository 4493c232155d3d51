package route

import (
	"github.com/gofiber/fiber/v2"

	reportController "healthcard_backend/internals/features/form/reports/controller"
	"healthcard_backend/internals/features/form/reports/service"
)

func ReportUserRoutes(router fiber.Router, svc *service.ReportService) {
	ctrl := reportController.NewReportController(svc)
	router.Get("/reports/summary", ctrl.Summary)
}
