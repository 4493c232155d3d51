package details

import (
	"github.com/gofiber/fiber/v2"

	flowRoute "healthcard_backend/internals/features/form/flow/route"
	levelRoute "healthcard_backend/internals/features/form/levels/route"
	formProgressRoute "healthcard_backend/internals/features/form/progress/route"
	reportRoute "healthcard_backend/internals/features/form/reports/route"
	responseRoute "healthcard_backend/internals/features/form/responses/route"
)

// FormUserRoutes: kuesioner kesehatan (/api/u/...).
func FormUserRoutes(r fiber.Router, s *Services) {
	levelRoute.LevelUserRoutes(r, s.Roadmap)
	formProgressRoute.SublevelProgressUserRoutes(r, s.Progress)
	responseRoute.ResponseUserRoutes(r, s.Responses)
	flowRoute.FlowUserRoutes(r, s.Flow)
	reportRoute.ReportUserRoutes(r, s.Reports)
}
