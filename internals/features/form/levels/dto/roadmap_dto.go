package dto

type SublevelStatus struct {
	SublevelID     uint   `json:"sublevel_id"`
	Title          string `json:"title"`
	Order          int    `json:"order"`
	TotalQuestions int    `json:"total_questions"`
	Completed      bool   `json:"completed"`
	Current        bool   `json:"current"`
	Locked         bool   `json:"locked"`
	Percentage     int    `json:"percentage"`
}

type LevelStatus struct {
	LevelID     uint             `json:"level_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Order       int              `json:"order"`
	Completed   bool             `json:"completed"`
	Sublevels   []SublevelStatus `json:"sublevels"`
}

type RoadmapView struct {
	Levels           []LevelStatus `json:"levels"`
	ActiveSublevelID *uint         `json:"active_sublevel_id,omitempty"`
	CompletedCount   int           `json:"completed_count"`
	TotalSublevels   int           `json:"total_sublevels"`
}
