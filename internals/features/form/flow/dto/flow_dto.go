package dto

import (
	"healthcard_backend/internals/features/form/flow/model"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	pointDto "healthcard_backend/internals/features/progress/points/dto"
)

type StartRequest struct {
	SublevelID *uint `json:"sublevel_id,omitempty" validate:"omitempty,gt=0"`
}

type AnswerRequest struct {
	QuestionID uint `json:"question_id" validate:"required,gt=0"`
	Response   any  `json:"response"`
}

type OptionView struct {
	OptionID uint   `json:"option_id"`
	Text     string `json:"text"`
}

type QuestionView struct {
	QuestionID     uint                       `json:"question_id"`
	Type           string                     `json:"type"`
	Text           string                     `json:"text"`
	Order          int                        `json:"order"`
	Mandatory      bool                       `json:"mandatory"`
	ImportanceNote *string                    `json:"importance_note,omitempty"`
	Options        []OptionView               `json:"options,omitempty"`
	Answer         *responseModel.AnswerValue `json:"answer,omitempty"`
	Visible        bool                       `json:"visible"`
	Children       []QuestionView             `json:"children,omitempty"`
}

type SessionView struct {
	SessionID   string        `json:"session_id"`
	SublevelID  uint          `json:"sublevel_id"`
	State       model.State   `json:"state"`
	Index       int           `json:"index"`
	Total       int           `json:"total"`
	Percentage  int           `json:"percentage"`
	Saving      bool          `json:"saving"`
	PendingSkip bool          `json:"pending_skip"`
	CanAdvance  bool          `json:"can_advance"`
	CanSkip     bool          `json:"can_skip"`
	CanGoBack   bool          `json:"can_go_back"`
	Current     *QuestionView `json:"current,omitempty"`
}

// TransitionView: hasil Next / ConfirmSkip.
type TransitionView struct {
	Session    SessionView           `json:"session"`
	Saves      []model.SaveResult    `json:"saves"`
	Flushed    bool                  `json:"flushed"`
	Award      *pointDto.AwardResult `json:"award,omitempty"`
	AwardError string                `json:"award_error,omitempty"`
}

// SkipPrompt: konfirmasi sebelum skip, berisi catatan pentingnya pertanyaan.
type SkipPrompt struct {
	QuestionID     uint        `json:"question_id"`
	QuestionText   string      `json:"question_text"`
	ImportanceNote *string     `json:"importance_note,omitempty"`
	Session        SessionView `json:"session"`
}
