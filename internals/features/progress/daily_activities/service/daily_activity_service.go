package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthcard_backend/internals/features/progress/daily_activities/dto"
	"healthcard_backend/internals/features/progress/daily_activities/model"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

type ActivityTracker struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func NewActivityTracker(db *gorm.DB, timeout time.Duration) *ActivityTracker {
	return &ActivityTracker{DB: db, Timeout: timeout}
}

// Day: tanggal kalender t, disimpan sebagai tengah malam UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Touch mencatat aktivitas user di hari `now`. Panggilan kedua di hari yang
// sama hanya memperbarui updated_at.
func (a *ActivityTracker) Touch(ctx context.Context, userID uuid.UUID, now time.Time) error {
	today := Day(now)

	pctx, cancel := helper.PersistContext(ctx, a.Timeout)
	defer cancel()

	return a.DB.WithContext(pctx).Transaction(func(tx *gorm.DB) error {
		var existing model.UserDailyActivity
		err := tx.Where("user_daily_activity_user_id = ? AND user_daily_activity_activity_date = ?", userID, today).
			First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Update("updated_at", time.Now()).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Streak lanjut kalau aktivitas terakhir tepat kemarin
		amount := 1
		var last model.UserDailyActivity
		err = tx.Where("user_daily_activity_user_id = ?", userID).
			Order("user_daily_activity_activity_date DESC").
			First(&last).Error
		switch {
		case err == nil && Day(last.UserDailyActivityActivityDate).AddDate(0, 0, 1).Equal(today):
			amount = last.UserDailyActivityAmountDay + 1
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.UserDailyActivity{
			UserDailyActivityUserID:       userID,
			UserDailyActivityActivityDate: today,
			UserDailyActivityAmountDay:    amount,
		}).Error
	})
}

// Streak: streak berjalan per `now`. Putus (0) kalau kemarin dan hari ini kosong.
func (a *ActivityTracker) Streak(ctx context.Context, userID uuid.UUID, now time.Time) (dto.StreakView, error) {
	pctx, cancel := helper.PersistContext(ctx, a.Timeout)
	defer cancel()

	var last model.UserDailyActivity
	err := a.DB.WithContext(pctx).
		Where("user_daily_activity_user_id = ?", userID).
		Order("user_daily_activity_activity_date DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.StreakView{}, nil
	}
	if err != nil {
		log.Printf("[ERROR] Gagal membaca aktivitas harian user=%s: %v", userID, err)
		return dto.StreakView{}, apperr.Persistence("Gagal membaca aktivitas harian", err)
	}

	today := Day(now)
	lastDay := Day(last.UserDailyActivityActivityDate)
	out := dto.StreakView{LastActivityDate: &lastDay}
	switch {
	case lastDay.Equal(today):
		out.ActiveToday = true
		out.CurrentStreak = last.UserDailyActivityAmountDay
	case lastDay.AddDate(0, 0, 1).Equal(today):
		out.CurrentStreak = last.UserDailyActivityAmountDay
	}
	return out, nil
}
