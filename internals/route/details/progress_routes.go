package details

import (
	"github.com/gofiber/fiber/v2"

	activityRoute "healthcard_backend/internals/features/progress/daily_activities/route"
	pointRoute "healthcard_backend/internals/features/progress/points/route"
	progressRoute "healthcard_backend/internals/features/progress/progress/route"
	rewardRoute "healthcard_backend/internals/features/progress/rewards/route"
)

// ProgressUserRoutes: poin, spin dan hadiah (/api/u/...).
func ProgressUserRoutes(r fiber.Router, s *Services) {
	progressRoute.UserProgressRoutes(r, s.Ledger)
	pointRoute.UserPointRoutes(r, s.DB, s.Ledger)
	rewardRoute.RewardUserRoutes(r, s.Selector)
	activityRoute.DailyActivityUserRoutes(r, s.Activity)
}
