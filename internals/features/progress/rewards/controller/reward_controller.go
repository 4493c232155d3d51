package controller

import (
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/progress/rewards/service"
	helper "healthcard_backend/internals/helpers"
)

type RewardController struct {
	Selector *service.Selector
}

func NewRewardController(selector *service.Selector) *RewardController {
	return &RewardController{Selector: selector}
}

// POST /api/u/use-spin
// Hasil random ditentukan server; client hanya menganimasikan.
func (ctrl *RewardController) UseSpin(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	res, err := ctrl.Selector.Draw(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Spin berhasil", res)
}

// GET /api/u/rewards
func (ctrl *RewardController) ListRewards(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", ctrl.Selector.Table)
}
