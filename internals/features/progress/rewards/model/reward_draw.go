package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserRewardDraw: audit tiap spin. Append-only.
type UserRewardDraw struct {
	UserRewardDrawID          uint           `gorm:"column:user_reward_draw_id;primaryKey" json:"user_reward_draw_id"`
	UserRewardDrawUserID      uuid.UUID      `gorm:"column:user_reward_draw_user_id;type:uuid;not null;index" json:"user_reward_draw_user_id"`
	UserRewardDrawReward      string         `gorm:"column:user_reward_draw_reward;not null" json:"user_reward_draw_reward"`
	UserRewardDrawSpinsBefore int            `gorm:"column:user_reward_draw_spins_before;not null" json:"user_reward_draw_spins_before"`
	UserRewardDrawSpinsAfter  int            `gorm:"column:user_reward_draw_spins_after;not null" json:"user_reward_draw_spins_after"`
	UserRewardDrawPointsAdded int            `gorm:"column:user_reward_draw_points_added;not null;default:0" json:"user_reward_draw_points_added"`
	UserRewardDrawTable       datatypes.JSON `gorm:"column:user_reward_draw_table" json:"user_reward_draw_table"`
	CreatedAt                 time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRewardDraw) TableName() string {
	return "user_reward_draws"
}
