package controller

import (
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/form/reports/service"
	helper "healthcard_backend/internals/helpers"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /api/u/reports/summary
func (ctrl *ReportController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	groups, err := ctrl.Service.Summary(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", groups)
}
