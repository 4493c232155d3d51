package controller

import (
	"github.com/gofiber/fiber/v2"

	pointService "healthcard_backend/internals/features/progress/points/service"
	helper "healthcard_backend/internals/helpers"
)

type UserProgressController struct {
	Ledger *pointService.Ledger
}

func NewUserProgressController(ledger *pointService.Ledger) *UserProgressController {
	return &UserProgressController{Ledger: ledger}
}

// GET /api/u/user-progress
func (ctrl *UserProgressController) GetByUserID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	progress, err := ctrl.Ledger.Progress(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", progress)
}
