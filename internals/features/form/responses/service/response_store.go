package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	"healthcard_backend/internals/features/form/responses/dto"
	"healthcard_backend/internals/features/form/responses/model"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

// ResponseStore: satu-satunya jalur tulis user_responses & question_progress.
type ResponseStore struct {
	DB      *gorm.DB
	Catalog *questionService.Catalog
	Timeout time.Duration
}

func NewResponseStore(db *gorm.DB, catalog *questionService.Catalog, timeout time.Duration) *ResponseStore {
	return &ResponseStore{DB: db, Catalog: catalog, Timeout: timeout}
}

// Upsert menulis (atau menimpa) jawaban user untuk satu pertanyaan dan
// menandai question_progress completed, dalam satu transaksi.
func (s *ResponseStore) Upsert(ctx context.Context, userID uuid.UUID, questionID uint, value model.AnswerValue, optionID *uint) error {
	if userID == uuid.Nil {
		return apperr.Unauthorized("User belum login")
	}
	if questionID == 0 {
		return apperr.Validation("question_id", "wajib diisi")
	}

	ctx, cancel := helper.PersistContext(ctx, s.Timeout)
	defer cancel()

	now := time.Now()
	row := model.UserResponse{
		UserResponseUserID:           userID,
		UserResponseQuestionID:       questionID,
		UserResponseText:             value.Text,
		UserResponseNumber:           value.Number,
		UserResponseSelectedOptionID: optionID,
		CreatedAt:                    now,
		UpdatedAt:                    now,
	}
	prog := model.QuestionProgress{
		QuestionProgressUserID:      userID,
		QuestionProgressQuestionID:  questionID,
		QuestionProgressCompleted:   true,
		QuestionProgressCompletedAt: &now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_response_user_id"}, {Name: "user_response_question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_response_text",
				"user_response_number",
				"user_response_selected_option_id",
				"updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "question_progress_user_id"}, {Name: "question_progress_question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"question_progress_completed",
				"question_progress_completed_at",
			}),
		}).Create(&prog).Error
	})
	if err != nil {
		log.Printf("[ERROR] upsert response user=%s question=%d: %v", userID, questionID, err)
		return apperr.Persistence("Gagal menyimpan jawaban", err)
	}
	return nil
}

// Responses: jawaban tersimpan user untuk daftar pertanyaan, by question id.
func (s *ResponseStore) Responses(ctx context.Context, userID uuid.UUID, questionIDs []uint) (map[uint]model.UserResponse, error) {
	out := make(map[uint]model.UserResponse, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}
	ctx, cancel := helper.PersistContext(ctx, s.Timeout)
	defer cancel()

	var rows []model.UserResponse
	if err := s.DB.WithContext(ctx).
		Where("user_response_user_id = ? AND user_response_question_id IN ?", userID, questionIDs).
		Find(&rows).Error; err != nil {
		return nil, apperr.Persistence("Gagal memuat jawaban", err)
	}
	for _, r := range rows {
		out[r.UserResponseQuestionID] = r
	}
	return out, nil
}

// ProgressRecords: semua record question_progress user. questionIDs kosong
// berarti tanpa filter pertanyaan.
func (s *ResponseStore) ProgressRecords(ctx context.Context, userID uuid.UUID, questionIDs []uint) ([]model.QuestionProgress, error) {
	ctx, cancel := helper.PersistContext(ctx, s.Timeout)
	defer cancel()

	q := s.DB.WithContext(ctx).Where("question_progress_user_id = ?", userID)
	if questionIDs != nil {
		if len(questionIDs) == 0 {
			return nil, nil
		}
		q = q.Where("question_progress_question_id IN ?", questionIDs)
	}
	var rows []model.QuestionProgress
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperr.Persistence("Gagal memuat progress", err)
	}
	return rows, nil
}

// Resolve: question id → nilai tampil untuk semua pertanyaan sublevel
// (root dan anak) yang punya jawaban.
func (s *ResponseStore) Resolve(ctx context.Context, userID uuid.UUID, sublevelID uint) (map[uint]string, error) {
	g, err := s.Catalog.Graph(ctx, sublevelID)
	if err != nil {
		return nil, err
	}
	stored, err := s.Responses(ctx, userID, g.AllIDs())
	if err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(stored))
	g.Walk(func(n *questionService.Node) {
		r, ok := stored[n.ID()]
		if !ok {
			return
		}
		if v, ok := ResolveDisplay(r, n.Options); ok {
			out[n.ID()] = v
		}
	})
	return out, nil
}

// Submit: jalur answer submission langsung (di luar flow). Response angka yang
// sama dengan id option pertanyaan itu dianggap memilih option tersebut.
func (s *ResponseStore) Submit(ctx context.Context, userID uuid.UUID, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if req.QuestionID == 0 {
		return nil, apperr.Validation("question_id", "wajib diisi")
	}
	if req.Response == nil {
		return nil, apperr.Validation("response", "wajib diisi")
	}
	value, ok := model.ValueFromAny(req.Response)
	if !ok {
		return nil, apperr.Validation("response", "harus berupa string atau angka")
	}

	q, err := s.Catalog.Question(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	optionID := req.OptionID
	if optionID != nil {
		opt, found := findOption(q.Options, *optionID)
		if !found {
			return nil, apperr.Validation("option_id", "Option bukan milik pertanyaan ini")
		}
		if value.IsEmpty() || value.Number != nil {
			value = model.TextValue(opt.QuestionOptionText)
		}
	} else if id, isID := value.OptionID(); isID {
		if opt, found := findOption(q.Options, id); found {
			optionID = &opt.QuestionOptionID
			value = model.TextValue(opt.QuestionOptionText)
		}
	}

	if err := s.Upsert(ctx, userID, q.QuestionID, value, optionID); err != nil {
		return nil, err
	}
	return &dto.SubmitAnswerResponse{
		QuestionID:       q.QuestionID,
		Response:         value,
		SelectedOptionID: optionID,
		Completed:        true,
	}, nil
}

func findOption(options []questionModel.QuestionOption, id uint) (questionModel.QuestionOption, bool) {
	for _, o := range options {
		if o.QuestionOptionID == id {
			return o, true
		}
	}
	return questionModel.QuestionOption{}, false
}
