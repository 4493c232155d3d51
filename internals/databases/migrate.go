package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	levelModel "healthcard_backend/internals/features/form/levels/model"
	questionModel "healthcard_backend/internals/features/form/questions/model"
	responseModel "healthcard_backend/internals/features/form/responses/model"
	activityModel "healthcard_backend/internals/features/progress/daily_activities/model"
	pointModel "healthcard_backend/internals/features/progress/points/model"
	progressModel "healthcard_backend/internals/features/progress/progress/model"
	rewardModel "healthcard_backend/internals/features/progress/rewards/model"
)

// Models: urutan penting (tabel parent dulu).
func Models() []any {
	return []any{
		&levelModel.Level{},
		&levelModel.Sublevel{},
		&questionModel.Question{},
		&questionModel.QuestionOption{},
		&responseModel.UserResponse{},
		&responseModel.QuestionProgress{},
		&progressModel.UserProgress{},
		&pointModel.UserPointLog{},
		&rewardModel.UserRewardDraw{},
		&activityModel.UserDailyActivity{},
	}
}

// Migrate menjalankan AutoMigrate untuk semua tabel service ini.
func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	log.Println("✅ Migrasi tabel selesai")
	return nil
}
