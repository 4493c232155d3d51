package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDailyActivity: satu baris per user per hari ada transisi flow yang
// tersimpan. AmountDay = panjang streak sampai hari itu.
type UserDailyActivity struct {
	UserDailyActivityID           uint      `gorm:"column:user_daily_activity_id;primaryKey" json:"user_daily_activity_id"`
	UserDailyActivityUserID       uuid.UUID `gorm:"column:user_daily_activity_user_id;type:uuid;not null;uniqueIndex:uq_user_daily_activity_user_date,priority:1" json:"user_daily_activity_user_id"`
	UserDailyActivityActivityDate time.Time `gorm:"column:user_daily_activity_activity_date;type:date;not null;uniqueIndex:uq_user_daily_activity_user_date,priority:2" json:"user_daily_activity_activity_date"`
	UserDailyActivityAmountDay    int       `gorm:"column:user_daily_activity_amount_day;not null;default:1" json:"user_daily_activity_amount_day"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (UserDailyActivity) TableName() string {
	return "user_daily_activities"
}
