package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthcard_backend/internals/features/progress/points/dto"
	pointModel "healthcard_backend/internals/features/progress/points/model"
	progressModel "healthcard_backend/internals/features/progress/progress/model"
	helper "healthcard_backend/internals/helpers"
	"healthcard_backend/internals/helpers/apperr"
)

// PointsPerSpin: tiap kelipatan 100 poin total memberi satu spin.
const PointsPerSpin = 100

type Source struct {
	Type int
	ID   int
}

// Ledger memegang user_progress (total poin + spin). Semua read-modify-write
// untuk satu user diserialisasi: mutex per user di proses ini, lalu row lock
// di dalam transaksi.
type Ledger struct {
	DB      *gorm.DB
	Timeout time.Duration

	locks userLocks
}

func NewLedger(db *gorm.DB, timeout time.Duration) *Ledger {
	return &Ledger{DB: db, Timeout: timeout}
}

// SpinsEarned = floor(new/100) - floor(old/100).
func SpinsEarned(oldPoints, newPoints int) int {
	return newPoints/PointsPerSpin - oldPoints/PointsPerSpin
}

// RunLocked menjalankan fn di dalam transaksi, dengan lock per user.
func (l *Ledger) RunLocked(ctx context.Context, userID uuid.UUID, fn func(tx *gorm.DB) error) error {
	unlock := l.locks.lock(userID)
	defer unlock()

	ctx, cancel := helper.PersistContext(ctx, l.Timeout)
	defer cancel()

	return l.DB.WithContext(ctx).Transaction(fn)
}

// LockProgress membaca row user_progress dengan FOR UPDATE.
// found=false kalau belum ada row.
func LockProgress(tx *gorm.DB, userID uuid.UUID) (progressModel.UserProgress, bool, error) {
	var p progressModel.UserProgress
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_progress_user_id = ?", userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

// CreditTx menambah delta poin ke user di dalam tx, menerapkan aturan
// threshold spin, dan menulis user_point_logs. Row dibuat kalau belum ada.
func CreditTx(tx *gorm.DB, userID uuid.UUID, delta int, src Source) (dto.AwardResult, error) {
	now := time.Now()

	p, found, err := LockProgress(tx, userID)
	if err != nil {
		return dto.AwardResult{}, err
	}

	var res dto.AwardResult
	if !found {
		row := progressModel.UserProgress{
			UserProgressUserID:      userID,
			UserProgressTotalPoints: delta,
			UserProgressSpins:       delta / PointsPerSpin,
			LastUpdated:             now,
		}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if ins.Error != nil {
			return dto.AwardResult{}, ins.Error
		}
		if ins.RowsAffected == 1 {
			res = dto.AwardResult{
				NewPoints:   row.UserProgressTotalPoints,
				NewSpins:    row.UserProgressSpins,
				PointsAdded: delta,
				SpinsEarned: row.UserProgressSpins,
			}
		} else {
			// dibuat proses lain di antara select dan insert
			if p, found, err = LockProgress(tx, userID); err != nil || !found {
				if err == nil {
					err = gorm.ErrRecordNotFound
				}
				return dto.AwardResult{}, err
			}
		}
	}

	if found {
		newPoints := p.UserProgressTotalPoints + delta
		earned := SpinsEarned(p.UserProgressTotalPoints, newPoints)
		res = dto.AwardResult{
			NewPoints:   newPoints,
			NewSpins:    p.UserProgressSpins + earned,
			PointsAdded: delta,
			SpinsEarned: earned,
		}
		if err := tx.Model(&progressModel.UserProgress{}).
			Where("user_progress_user_id = ?", userID).
			Updates(map[string]interface{}{
				"user_progress_total_points": res.NewPoints,
				"user_progress_spins":        res.NewSpins,
				"last_updated":               now,
			}).Error; err != nil {
			return dto.AwardResult{}, err
		}
	}

	logEntry := pointModel.UserPointLog{
		UserPointLogUserID:     userID,
		UserPointLogPoints:     delta,
		UserPointLogSourceType: src.Type,
		UserPointLogSourceID:   src.ID,
		UserPointLogSpinsAfter: res.NewSpins,
		CreatedAt:              now,
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		return dto.AwardResult{}, err
	}
	return res, nil
}

// AddPoints menambah poin user (delta >= 0) dan spin sesuai threshold.
func (l *Ledger) AddPoints(ctx context.Context, userID uuid.UUID, delta int, src Source) (dto.AwardResult, error) {
	log.Printf("[LEDGER] AddPoints - userID: %s sourceType: %d sourceID: %d point: %d",
		userID.String(), src.Type, src.ID, delta)

	if userID == uuid.Nil {
		return dto.AwardResult{}, apperr.Unauthorized("User belum login")
	}
	if delta < 0 {
		return dto.AwardResult{}, apperr.Validation("points", "tidak boleh negatif")
	}

	var res dto.AwardResult
	err := l.RunLocked(ctx, userID, func(tx *gorm.DB) error {
		var err error
		res, err = CreditTx(tx, userID, delta, src)
		return err
	})
	if err != nil {
		log.Println("[ERROR] Gagal update user_progress:", err)
		return dto.AwardResult{}, apperr.Persistence("Gagal menambahkan poin", err)
	}

	if res.SpinsEarned > 0 {
		log.Printf("[SPIN-UP] User %s dapat %d spin (total %d)", userID.String(), res.SpinsEarned, res.NewSpins)
	}
	log.Printf("[SUCCESS] Poin berhasil ditambahkan: %d poin (total %d)", delta, res.NewPoints)
	return res, nil
}

// Progress membaca ledger user tanpa lock.
func (l *Ledger) Progress(ctx context.Context, userID uuid.UUID) (*progressModel.UserProgress, error) {
	ctx, cancel := helper.PersistContext(ctx, l.Timeout)
	defer cancel()

	var p progressModel.UserProgress
	if err := l.DB.WithContext(ctx).Where("user_progress_user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Data progres user tidak ditemukan")
		}
		return nil, apperr.Persistence("Gagal mengambil data progres", err)
	}
	return &p, nil
}
