package routes

import (
	"github.com/gofiber/fiber/v2"

	rewardController "healthcard_backend/internals/features/progress/rewards/controller"
	"healthcard_backend/internals/features/progress/rewards/service"
	"healthcard_backend/internals/middlewares"
)

func RewardUserRoutes(router fiber.Router, selector *service.Selector) {
	ctrl := rewardController.NewRewardController(selector)

	router.Get("/rewards", ctrl.ListRewards)
	router.Post("/use-spin", middlewares.SpinRateLimiter(), ctrl.UseSpin)
}
