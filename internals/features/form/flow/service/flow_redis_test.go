package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"healthcard_backend/internals/features/form/flow/dto"
	"healthcard_backend/internals/features/form/flow/store"
	questionModel "healthcard_backend/internals/features/form/questions/model"
	questionService "healthcard_backend/internals/features/form/questions/service"
	"healthcard_backend/internals/helpers/apperr"
)

func newRedisHarness(t *testing.T) (*harness, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := newHarness()
	h.store = store.NewRedisStore(client, time.Hour, 30*time.Second)
	h.svc.Store = h.store
	h.svc.Graphs = fakeGraphs{
		7: questionService.BuildGraph(7, []questionModel.Question{
			question(70, 1, questionModel.QuestionTypeText, false, nil),
		}),
	}
	return h, mr
}

func TestLockTTL_CoversWholeFlush(t *testing.T) {
	svc := &FlowService{Timeout: 5 * time.Second}
	if got := svc.LockTTL(fourQuestionGraph()); got != 30*time.Second {
		t.Fatalf("lock ttl = %v, want 30s", got)
	}
	svc.Timeout = 0
	if got := svc.LockTTL(branchingGraph()); got != 35*time.Second {
		t.Fatalf("lock ttl with default timeout = %v, want 35s", got)
	}
}

func TestNext_ExpiredGuardDoesNotAwardTwice(t *testing.T) {
	h, mr := newRedisHarness(t)
	h.start(t, 7)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once
	h.answers.onUpsert = func() {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-unblock
		}
	}

	type result struct {
		out dto.TransitionView
		err error
	}
	slow := make(chan result, 1)
	go func() {
		out, err := h.svc.Next(context.Background(), h.user)
		slow <- result{out, err}
	}()

	<-entered
	// flush pertama macet sampai guard-nya kedaluwarsa
	mr.FastForward(31 * time.Second)

	fast, err := h.svc.Next(context.Background(), h.user)
	if err != nil {
		t.Fatalf("second next: %v", err)
	}
	if fast.Award == nil || !fast.Flushed {
		t.Fatalf("second next should flush and award: %+v", fast)
	}

	close(unblock)
	late := <-slow
	wantKind(t, late.err, apperr.KindConflict)

	h.awarder.mu.Lock()
	defer h.awarder.mu.Unlock()
	if len(h.awarder.calls) != 1 || h.awarder.calls[0] != 20 {
		t.Fatalf("want exactly one award of 20, got %v", h.awarder.calls)
	}

	sess, err := h.store.Load(context.Background(), h.user)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Completed || sess.Percentage != 100 {
		t.Fatalf("session should stay completed: %+v", sess)
	}
}

func TestNext_SessionRevisionAdvances(t *testing.T) {
	h, _ := newRedisHarness(t)
	h.start(t, 7)
	ctx := context.Background()

	before, err := h.store.Load(ctx, h.user)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.svc.Answer(ctx, h.user, 70, "ok"); err != nil {
		t.Fatal(err)
	}
	after, err := h.store.Load(ctx, h.user)
	if err != nil {
		t.Fatal(err)
	}
	if after.Revision != before.Revision+1 {
		t.Fatalf("revision %d → %d, want +1", before.Revision, after.Revision)
	}

	// salinan lama tidak bisa menimpa
	before.Completed = true
	if err := h.store.SaveIfCurrent(ctx, before); !errors.Is(err, store.ErrStale) {
		t.Fatalf("old copy should be stale, got %v", err)
	}
}
