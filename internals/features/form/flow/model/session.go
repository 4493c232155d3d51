package model

import (
	"time"

	"github.com/google/uuid"

	responseModel "healthcard_backend/internals/features/form/responses/model"
)

type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
)

// Session = state flow satu user pada satu sublevel. Disimpan utuh di
// session store di antara request.
type Session struct {
	SessionID   uuid.UUID                          `json:"session_id"`
	Revision    int64                              `json:"revision"` // naik di setiap SaveIfCurrent
	UserID      uuid.UUID                          `json:"user_id"`
	SublevelID  uint                               `json:"sublevel_id"`
	Index       int                                `json:"index"`
	Completed   bool                               `json:"completed"`
	Percentage  int                                `json:"percentage"`
	Answers     map[uint]responseModel.AnswerValue `json:"answers"`
	PendingSkip bool                               `json:"pending_skip"`
	StartedAt   time.Time                          `json:"started_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}

func (s *Session) State() State {
	if s.Completed {
		return StateCompleted
	}
	return StateActive
}

func (s *Session) Answer(questionID uint) (responseModel.AnswerValue, bool) {
	v, ok := s.Answers[questionID]
	return v, ok
}

// SaveResult: hasil persist satu pertanyaan pada sebuah transisi.
type SaveResult struct {
	QuestionID uint   `json:"question_id"`
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
}
