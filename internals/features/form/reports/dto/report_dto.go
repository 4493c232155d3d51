package dto

type ReportItem struct {
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	ResponseText string `json:"response_text"`
}

// ReportGroup: satu sublevel yang sudah selesai.
type ReportGroup struct {
	LevelID       uint         `json:"level_id"`
	LevelTitle    string       `json:"level_title"`
	SublevelID    uint         `json:"sublevel_id"`
	SublevelTitle string       `json:"sublevel_title"`
	Questions     []ReportItem `json:"questions"`
}
