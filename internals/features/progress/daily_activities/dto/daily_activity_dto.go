package dto

import "time"

type StreakView struct {
	CurrentStreak    int        `json:"current_streak"`
	ActiveToday      bool       `json:"active_today"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}
