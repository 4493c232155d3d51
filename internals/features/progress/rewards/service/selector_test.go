package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthcard_backend/internals/databases/testdb"
	pointModel "healthcard_backend/internals/features/progress/points/model"
	pointService "healthcard_backend/internals/features/progress/points/service"
	"healthcard_backend/internals/features/progress/rewards/model"
	"healthcard_backend/internals/helpers/apperr"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newSelector(t *testing.T, table Table, r float64) (*Selector, *pointService.Ledger, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	ledger := pointService.NewLedger(db, time.Second)
	sel, err := NewSelector(ledger, table, fixedRand(r))
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	return sel, ledger, db
}

func fund(t *testing.T, l *pointService.Ledger, user uuid.UUID, points int) {
	t.Helper()
	if _, err := l.AddPoints(context.Background(), user, points, pointService.Source{Type: pointModel.SourceDirectAward}); err != nil {
		t.Fatalf("fund: %v", err)
	}
}

func TestDraw_ConsumesOneSpin(t *testing.T) {
	sel, ledger, db := newSelector(t, DefaultTable, 0.1) // r = 10 → 10% Discount
	user := uuid.New()
	fund(t, ledger, user, 200)

	res, err := sel.Draw(context.Background(), user)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if res.Reward != "10% Discount" || res.NewSpins != 1 || res.NewPoints != 200 || res.PointsAdded != 0 {
		t.Fatalf("unexpected %+v", res)
	}

	var audits []model.UserRewardDraw
	db.Where("user_reward_draw_user_id = ?", user).Find(&audits)
	if len(audits) != 1 || audits[0].UserRewardDrawSpinsBefore != 2 || audits[0].UserRewardDrawSpinsAfter != 1 {
		t.Fatalf("audit row missing or wrong: %+v", audits)
	}
	if len(audits[0].UserRewardDrawTable) == 0 {
		t.Fatalf("audit should carry the table snapshot")
	}
}

func TestDraw_TryAgainKeepsSpin(t *testing.T) {
	sel, ledger, _ := newSelector(t, DefaultTable, 0.95) // r = 95 → Try Again
	user := uuid.New()
	fund(t, ledger, user, 100)

	for i := 0; i < 3; i++ {
		res, err := sel.Draw(context.Background(), user)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if res.Reward != TryAgain || res.NewSpins != 1 {
			t.Fatalf("draw %d: %+v", i, res)
		}
	}
}

func TestDraw_NoLedgerRow(t *testing.T) {
	sel, _, _ := newSelector(t, DefaultTable, 0.1)
	_, err := sel.Draw(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDraw_NoSpinsLeavesLedgerUntouched(t *testing.T) {
	sel, ledger, db := newSelector(t, DefaultTable, 0.1)
	user := uuid.New()
	fund(t, ledger, user, 50)

	_, err := sel.Draw(context.Background(), user)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
	p, _ := ledger.Progress(context.Background(), user)
	if p.UserProgressSpins != 0 || p.UserProgressTotalPoints != 50 {
		t.Fatalf("ledger changed: %+v", p)
	}
	var n int64
	db.Model(&model.UserRewardDraw{}).Count(&n)
	if n != 0 {
		t.Fatalf("no audit row expected on rejected draw")
	}
}

func TestDraw_BonusPointsFollowThreshold(t *testing.T) {
	table := Table{{Label: "Bonus", Weight: 1, BonusPoints: 30}}
	sel, ledger, _ := newSelector(t, table, 0)
	user := uuid.New()
	fund(t, ledger, user, 180) // 1 spin

	res, err := sel.Draw(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}
	// 180 → 210: spin 1 - 1 + 1
	if res.NewPoints != 210 || res.PointsAdded != 30 || res.NewSpins != 1 {
		t.Fatalf("unexpected %+v", res)
	}
}

func TestDraw_ConcurrentWithAwardsMatchesSerialResult(t *testing.T) {
	sel, ledger, db := newSelector(t, DefaultTable, 0.1) // selalu 10% Discount, tanpa bonus
	user := uuid.New()
	fund(t, ledger, user, 500) // 5 spin

	const draws, awards = 5, 10
	var wg sync.WaitGroup
	errs := make(chan error, draws+awards)
	for i := 0; i < draws; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sel.Draw(context.Background(), user); err != nil {
				errs <- err
			}
		}()
	}
	for i := 0; i < awards; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.AddPoints(context.Background(), user, 10, pointService.Source{Type: pointModel.SourceDirectAward}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent op failed: %v", err)
	}

	// serial: 500 + 10*10 = 600 poin, spin 5 - 5 + 1
	p, err := ledger.Progress(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}
	if p.UserProgressTotalPoints != 600 || p.UserProgressSpins != 1 {
		t.Fatalf("got %d points %d spins, want 600/1", p.UserProgressTotalPoints, p.UserProgressSpins)
	}

	var n int64
	db.Model(&model.UserRewardDraw{}).Where("user_reward_draw_user_id = ?", user).Count(&n)
	if n != draws {
		t.Fatalf("audit rows = %d, want %d", n, draws)
	}
}
