package model

import "time"

// Level mengelompokkan beberapa sublevel (mis. "Level 1 - Basic Health Card").
type Level struct {
	LevelID          uint      `gorm:"column:level_id;primaryKey" json:"level_id"`
	LevelTitle       string    `gorm:"column:level_title;not null" json:"level_title"`
	LevelDescription string    `gorm:"column:level_description;type:text" json:"level_description"`
	LevelOrder       int       `gorm:"column:level_order;not null" json:"level_order"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Sublevels []Sublevel `gorm:"foreignKey:SublevelLevelID;references:LevelID" json:"sublevels,omitempty"`
}

func (Level) TableName() string {
	return "levels"
}

// Sublevel = satu modul pertanyaan yang dikerjakan dalam satu sesi flow.
type Sublevel struct {
	SublevelID      uint      `gorm:"column:sublevel_id;primaryKey" json:"sublevel_id"`
	SublevelLevelID uint      `gorm:"column:sublevel_level_id;not null;index" json:"sublevel_level_id"`
	SublevelTitle   string    `gorm:"column:sublevel_title;not null" json:"sublevel_title"`
	SublevelOrder   int       `gorm:"column:sublevel_order;not null" json:"sublevel_order"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Sublevel) TableName() string {
	return "sublevels"
}
