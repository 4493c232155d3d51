package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/form/progress/service"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type SublevelProgressController struct {
	Reader *service.Reader
}

func NewSublevelProgressController(reader *service.Reader) *SublevelProgressController {
	return &SublevelProgressController{Reader: reader}
}

// GET /api/u/sublevels/:id/progress
func (ctrl *SublevelProgressController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return helper.FromAppError(c, apperr.Validation("sublevel_id", "harus angka positif"))
	}

	view, err := ctrl.Reader.SublevelProgress(c.UserContext(), userID, uint(id))
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}
