package model

import "strings"

type QuestionType string

const (
	QuestionTypeSelect      QuestionType = "SELECT"
	QuestionTypeFill        QuestionType = "FILL"
	QuestionTypeRate        QuestionType = "RATE"
	QuestionTypeText        QuestionType = "TEXT"
	QuestionTypeAssist      QuestionType = "ASSIST"
	QuestionTypeMultiSelect QuestionType = "MULTI_SELECT"
	QuestionTypeDate        QuestionType = "DATE"
	QuestionTypeYesNo       QuestionType = "YES_NO"
	QuestionTypeRange       QuestionType = "RANGE"
)

var questionTypes = map[QuestionType]struct{}{
	QuestionTypeSelect: {}, QuestionTypeFill: {}, QuestionTypeRate: {},
	QuestionTypeText: {}, QuestionTypeAssist: {}, QuestionTypeMultiSelect: {},
	QuestionTypeDate: {}, QuestionTypeYesNo: {}, QuestionTypeRange: {},
}

func ParseQuestionType(s string) (QuestionType, bool) {
	t := QuestionType(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := questionTypes[t]
	return t, ok
}

// UsesOptions: tipe yang jawabannya dipetakan ke question_options.
func (t QuestionType) UsesOptions() bool {
	return t == QuestionTypeSelect || t == QuestionTypeYesNo
}

type Question struct {
	QuestionID             uint         `gorm:"column:question_id;primaryKey" json:"question_id"`
	QuestionSublevelID     uint         `gorm:"column:question_sublevel_id;not null;index" json:"question_sublevel_id"`
	QuestionType           QuestionType `gorm:"column:question_type;type:varchar(20);not null" json:"question_type"`
	QuestionText           string       `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOrder          int          `gorm:"column:question_order;not null" json:"question_order"`
	QuestionMandatory      bool         `gorm:"column:question_mandatory;not null;default:false" json:"question_mandatory"`
	QuestionImportanceNote *string      `gorm:"column:question_importance_note;type:text" json:"question_importance_note,omitempty"`
	QuestionParentID       *uint        `gorm:"column:question_parent_id;index" json:"question_parent_id,omitempty"` // null = root

	Options []QuestionOption `gorm:"foreignKey:QuestionOptionQuestionID;references:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

type QuestionOption struct {
	QuestionOptionID         uint   `gorm:"column:question_option_id;primaryKey" json:"question_option_id"`
	QuestionOptionQuestionID uint   `gorm:"column:question_option_question_id;not null;index" json:"question_option_question_id"`
	QuestionOptionText       string `gorm:"column:question_option_text;not null" json:"question_option_text"`
	QuestionOptionOrder      int    `gorm:"column:question_option_order;not null" json:"question_option_order"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
