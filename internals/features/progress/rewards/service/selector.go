package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	pointModel "healthcard_backend/internals/features/progress/points/model"
	pointService "healthcard_backend/internals/features/progress/points/service"
	progressModel "healthcard_backend/internals/features/progress/progress/model"
	"healthcard_backend/internals/features/progress/rewards/dto"
	"healthcard_backend/internals/features/progress/rewards/model"
	"healthcard_backend/internals/helpers/apperr"
)

// Selector menjalankan spin reward memakai lock ledger yang sama dengan award
// poin, jadi draw dan award untuk satu user tidak pernah saling tumpang.
type Selector struct {
	Ledger *pointService.Ledger
	Table  Table
	Rand   RandomSource

	snapshot datatypes.JSON
}

func NewSelector(ledger *pointService.Ledger, table Table, rnd RandomSource) (*Selector, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewCryptoSource()
	}
	snap, err := sonic.Marshal(table)
	if err != nil {
		return nil, err
	}
	return &Selector{Ledger: ledger, Table: table, Rand: rnd, snapshot: datatypes.JSON(snap)}, nil
}

// Draw memakai satu spin user (kecuali hasilnya Try Again) dan mencatat audit.
func (s *Selector) Draw(ctx context.Context, userID uuid.UUID) (dto.DrawResult, error) {
	if userID == uuid.Nil {
		return dto.DrawResult{}, apperr.Unauthorized("User belum login")
	}

	var out dto.DrawResult
	err := s.Ledger.RunLocked(ctx, userID, func(tx *gorm.DB) error {
		p, found, err := pointService.LockProgress(tx, userID)
		if err != nil {
			return apperr.Persistence("Gagal membaca progres user", err)
		}
		if !found {
			return apperr.NotFound("User progress not found")
		}
		if p.UserProgressSpins <= 0 {
			return apperr.Validation("spins", "No spins available")
		}

		reward := s.Table.Pick(s.Rand.Float64() * s.Table.TotalWeight())

		spins := p.UserProgressSpins
		if reward.Label != TryAgain {
			spins--
		}
		if err := tx.Model(&progressModel.UserProgress{}).
			Where("user_progress_user_id = ?", userID).
			Updates(map[string]interface{}{
				"user_progress_spins": spins,
				"last_updated":        time.Now(),
			}).Error; err != nil {
			return apperr.Persistence("Gagal memakai spin", err)
		}

		out = dto.DrawResult{
			Reward:    reward.Label,
			NewPoints: p.UserProgressTotalPoints,
			NewSpins:  spins,
		}
		if reward.BonusPoints > 0 {
			award, err := pointService.CreditTx(tx, userID, reward.BonusPoints, pointService.Source{
				Type: pointModel.SourceRewardBonus,
			})
			if err != nil {
				return apperr.Persistence("Gagal menambah bonus poin", err)
			}
			out.NewPoints = award.NewPoints
			out.NewSpins = award.NewSpins
			out.PointsAdded = award.PointsAdded
		}

		audit := model.UserRewardDraw{
			UserRewardDrawUserID:      userID,
			UserRewardDrawReward:      reward.Label,
			UserRewardDrawSpinsBefore: p.UserProgressSpins,
			UserRewardDrawSpinsAfter:  out.NewSpins,
			UserRewardDrawPointsAdded: out.PointsAdded,
			UserRewardDrawTable:       s.snapshot,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return apperr.Persistence("Gagal mencatat hasil spin", err)
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			err = apperr.Persistence("Gagal menjalankan spin", err)
		}
		return dto.DrawResult{}, err
	}

	log.Printf("[REWARD] User %s dapat %q (sisa spin %d)", userID.String(), out.Reward, out.NewSpins)
	return out, nil
}
