package dto

import (
	"healthcard_backend/internals/features/form/responses/model"
)

// SubmitAnswerRequest: body POST /api/u/responses.
// Response boleh string atau angka.
type SubmitAnswerRequest struct {
	QuestionID uint  `json:"question_id" validate:"required,gt=0"`
	Response   any   `json:"response"`
	OptionID   *uint `json:"option_id,omitempty" validate:"omitempty,gt=0"`
}

type SubmitAnswerResponse struct {
	QuestionID       uint              `json:"question_id"`
	Response         model.AnswerValue `json:"response"`
	SelectedOptionID *uint             `json:"selected_option_id,omitempty"`
	Completed        bool              `json:"completed"`
}
