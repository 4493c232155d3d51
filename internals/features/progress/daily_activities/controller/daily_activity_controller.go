package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/progress/daily_activities/service"
	helper "healthcard_backend/internals/helpers"
)

type DailyActivityController struct {
	Tracker *service.ActivityTracker
}

func NewDailyActivityController(tracker *service.ActivityTracker) *DailyActivityController {
	return &DailyActivityController{Tracker: tracker}
}

// GET /api/u/daily-activity
func (ctrl *DailyActivityController) GetStreak(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	view, err := ctrl.Tracker.Streak(c.UserContext(), userID, time.Now())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}
