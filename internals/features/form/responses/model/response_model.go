package model

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse: satu jawaban hidup per (user, question). Tulis ulang = overwrite.
type UserResponse struct {
	UserResponseID               uint      `gorm:"column:user_response_id;primaryKey" json:"user_response_id"`
	UserResponseUserID           uuid.UUID `gorm:"column:user_response_user_id;type:uuid;not null;uniqueIndex:uq_user_responses_user_question" json:"user_response_user_id"`
	UserResponseQuestionID       uint      `gorm:"column:user_response_question_id;not null;uniqueIndex:uq_user_responses_user_question" json:"user_response_question_id"`
	UserResponseText             *string   `gorm:"column:user_response_text;type:text" json:"user_response_text,omitempty"`
	UserResponseNumber           *float64  `gorm:"column:user_response_number" json:"user_response_number,omitempty"`
	UserResponseSelectedOptionID *uint     `gorm:"column:user_response_selected_option_id" json:"user_response_selected_option_id,omitempty"`
	CreatedAt                    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserResponse) TableName() string {
	return "user_responses"
}

type QuestionProgress struct {
	QuestionProgressID          uint       `gorm:"column:question_progress_id;primaryKey" json:"question_progress_id"`
	QuestionProgressUserID      uuid.UUID  `gorm:"column:question_progress_user_id;type:uuid;not null;uniqueIndex:uq_question_progress_user_question" json:"question_progress_user_id"`
	QuestionProgressQuestionID  uint       `gorm:"column:question_progress_question_id;not null;uniqueIndex:uq_question_progress_user_question" json:"question_progress_question_id"`
	QuestionProgressCompleted   bool       `gorm:"column:question_progress_completed;not null;default:false" json:"question_progress_completed"`
	QuestionProgressCompletedAt *time.Time `gorm:"column:question_progress_completed_at" json:"question_progress_completed_at,omitempty"`
}

func (QuestionProgress) TableName() string {
	return "question_progress"
}
