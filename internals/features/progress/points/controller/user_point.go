package controllers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"healthcard_backend/internals/features/progress/points/dto"
	"healthcard_backend/internals/features/progress/points/model"
	"healthcard_backend/internals/features/progress/points/service"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type UserPointLogController struct {
	DB        *gorm.DB
	Ledger    *service.Ledger
	Validator *validator.Validate
}

func NewUserPointLogController(db *gorm.DB, ledger *service.Ledger) *UserPointLogController {
	return &UserPointLogController{DB: db, Ledger: ledger, Validator: helper.NewValidator()}
}

// 🟢 GET /api/u/user-point-logs
// Riwayat poin milik user (terbaru dulu), dengan pagination.
func (ctrl *UserPointLogController) GetByUserID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserPointLog{}).
		Where("user_point_log_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung user_point_logs:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poin user")
	}

	var logs []model.UserPointLog
	if err := q.Order("created_at DESC, user_point_log_id DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&logs).Error; err != nil {
		log.Println("[ERROR] Gagal mengambil user_point_logs:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poin user")
	}

	return helper.JsonList(c, "ok", logs, helper.BuildPagination(total, p, len(logs)))
}

// 🟡 POST /api/u/update-points
// Award poin langsung ke ledger user; spin bertambah tiap lewat kelipatan 100.
func (ctrl *UserPointLogController) UpdatePoints(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var req dto.UpdatePointsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Println("[ERROR] Body parser gagal:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.FromAppError(c, err)
	}
	points, ok := req.WholePoints()
	if !ok {
		return helper.FromAppError(c, apperr.Validation("points", "harus bilangan bulat"))
	}

	res, err := ctrl.Ledger.AddPoints(c.UserContext(), userID, points, service.Source{
		Type: model.SourceDirectAward,
	})
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "Poin berhasil ditambahkan", res)
}
