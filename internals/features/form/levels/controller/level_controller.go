package controller

import (
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/form/levels/service"
	helper "healthcard_backend/internals/helpers"
)

type LevelController struct {
	Roadmap *service.Roadmap
}

func NewLevelController(roadmap *service.Roadmap) *LevelController {
	return &LevelController{Roadmap: roadmap}
}

// GET /api/u/levels
func (ctrl *LevelController) List(c *fiber.Ctx) error {
	levels, err := ctrl.Roadmap.Catalog.Levels(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", levels)
}

// GET /api/u/form-progress
func (ctrl *LevelController) Progress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	view, err := ctrl.Roadmap.Build(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}
