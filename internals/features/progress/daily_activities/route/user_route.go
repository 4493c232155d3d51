package route

import (
	"github.com/gofiber/fiber/v2"

	activityController "healthcard_backend/internals/features/progress/daily_activities/controller"
	"healthcard_backend/internals/features/progress/daily_activities/service"
)

func DailyActivityUserRoutes(router fiber.Router, tracker *service.ActivityTracker) {
	ctrl := activityController.NewDailyActivityController(tracker)
	router.Get("/daily-activity", ctrl.GetStreak)
}
