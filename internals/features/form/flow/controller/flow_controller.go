package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/form/flow/dto"
	"healthcard_backend/internals/features/form/flow/service"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type FlowController struct {
	Service   *service.FlowService
	Validator *validator.Validate
}

func NewFlowController(svc *service.FlowService) *FlowController {
	return &FlowController{Service: svc, Validator: helper.NewValidator()}
}

// POST /api/u/flow/start
// Body opsional {sublevel_id}; tanpa id → lanjut sublevel aktif.
func (ctrl *FlowController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.StartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Println("[ERROR] Body parser gagal:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
		}
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.FromAppError(c, err)
	}

	view, err := ctrl.Service.Start(c.UserContext(), userID, req.SublevelID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Sesi dimulai", view)
}

// GET /api/u/flow
func (ctrl *FlowController) Current(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	view, err := ctrl.Service.Current(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}

// POST /api/u/flow/answer
func (ctrl *FlowController) Answer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.FromAppError(c, err)
	}
	if req.Response == nil {
		return helper.FromAppError(c, apperr.Validation("response", "wajib diisi"))
	}

	view, err := ctrl.Service.Answer(c.UserContext(), userID, req.QuestionID, req.Response)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}

// POST /api/u/flow/next
func (ctrl *FlowController) Next(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	res, err := ctrl.Service.Next(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}

// POST /api/u/flow/previous
func (ctrl *FlowController) Previous(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	view, err := ctrl.Service.Previous(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}

// POST /api/u/flow/skip
func (ctrl *FlowController) RequestSkip(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	prompt, err := ctrl.Service.RequestSkip(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Konfirmasi skip", prompt)
}

// POST /api/u/flow/skip/confirm
func (ctrl *FlowController) ConfirmSkip(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	res, err := ctrl.Service.ConfirmSkip(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}

// POST /api/u/flow/skip/cancel
func (ctrl *FlowController) CancelSkip(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	view, err := ctrl.Service.CancelSkip(c.UserContext(), userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}
