package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"healthcard_backend/internals/features/form/responses/dto"
	"healthcard_backend/internals/features/form/responses/service"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type ResponseController struct {
	Store     *service.ResponseStore
	Validator *validator.Validate
}

func NewResponseController(store *service.ResponseStore) *ResponseController {
	return &ResponseController{Store: store, Validator: helper.NewValidator()}
}

// POST /api/u/responses
// Simpan (atau timpa) jawaban satu pertanyaan dan tandai completed.
func (ctrl *ResponseController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Println("[ERROR] Body parser gagal:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.FromAppError(c, err)
	}

	res, err := ctrl.Store.Submit(c.UserContext(), userID, req)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Jawaban tersimpan", res)
}

// GET /api/u/sublevels/:id/responses
// Jawaban tersimpan user untuk satu sublevel dalam bentuk nilai tampil.
func (ctrl *ResponseController) Resolve(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return helper.FromAppError(c, apperr.Validation("sublevel_id", "harus angka positif"))
	}

	values, err := ctrl.Store.Resolve(c.UserContext(), userID, uint(id))
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", values)
}
