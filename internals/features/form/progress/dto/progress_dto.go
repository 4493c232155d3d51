package dto

type OptionItem struct {
	OptionID uint   `json:"option_id"`
	Text     string `json:"text"`
}

// QuestionProgressItem: satu pertanyaan dengan status completed dan nilai
// tampil jawaban tersimpan.
type QuestionProgressItem struct {
	QuestionID     uint                   `json:"question_id"`
	Type           string                 `json:"type"`
	Text           string                 `json:"text"`
	Order          int                    `json:"order"`
	Mandatory      bool                   `json:"mandatory"`
	ImportanceNote *string                `json:"importance_note,omitempty"`
	Options        []OptionItem           `json:"options,omitempty"`
	Completed      bool                   `json:"completed"`
	Value          *string                `json:"value,omitempty"`
	Children       []QuestionProgressItem `json:"children,omitempty"`
}

type SublevelProgressView struct {
	SublevelID uint                   `json:"sublevel_id"`
	Completed  int                    `json:"completed"`
	Total      int                    `json:"total"`
	Percentage int                    `json:"percentage"`
	Done       bool                   `json:"done"`
	Questions  []QuestionProgressItem `json:"questions"`
}
