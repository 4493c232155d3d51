package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"healthcard_backend/internals/features/form/flow/model"
	responseModel "healthcard_backend/internals/features/form/responses/model"
)

func newRedisStore(t *testing.T) (SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour, 5*time.Second), mr
}

func stores(t *testing.T) map[string]SessionStore {
	rs, _ := newRedisStore(t)
	return map[string]SessionStore{
		"redis":  rs,
		"memory": NewMemoryStore(),
	}
}

func sampleSession(user uuid.UUID) *model.Session {
	return &model.Session{
		SessionID:  uuid.New(),
		UserID:     user,
		SublevelID: 3,
		Index:      1,
		Percentage: 50,
		Answers: map[uint]responseModel.AnswerValue{
			1: responseModel.TextValue("yes"),
			2: responseModel.NumberValue(7),
			3: responseModel.TextValue(""),
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := uuid.New()

			if _, err := st.Load(ctx, user); !errors.Is(err, ErrNoSession) {
				t.Fatalf("want ErrNoSession, got %v", err)
			}
			sess := sampleSession(user)
			if err := st.Save(ctx, sess); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := st.Load(ctx, user)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.SessionID != sess.SessionID || got.Index != 1 || got.Percentage != 50 {
				t.Fatalf("unexpected session %+v", got)
			}
			if v := got.Answers[1]; v.Text == nil || *v.Text != "yes" {
				t.Fatalf("text answer lost")
			}
			if v := got.Answers[2]; v.Number == nil || *v.Number != 7 {
				t.Fatalf("number answer lost")
			}
			if v, ok := got.Answers[3]; !ok || !v.IsEmpty() || v.Text == nil {
				t.Fatalf("empty string answer should survive as empty text")
			}

			if err := st.Delete(ctx, user); err != nil {
				t.Fatal(err)
			}
			if _, err := st.Load(ctx, user); !errors.Is(err, ErrNoSession) {
				t.Fatalf("session should be gone after delete")
			}
		})
	}
}

func TestStore_SaveIfCurrentRejectsReplacedSession(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := uuid.New()

			old := sampleSession(user)
			if err := st.SaveIfCurrent(ctx, old); !errors.Is(err, ErrStale) {
				t.Fatalf("missing session should be stale, got %v", err)
			}
			if err := st.Save(ctx, old); err != nil {
				t.Fatal(err)
			}
			old.Index = 2
			if err := st.SaveIfCurrent(ctx, old); err != nil {
				t.Fatalf("same session id should save: %v", err)
			}

			fresh := sampleSession(user)
			if err := st.Save(ctx, fresh); err != nil {
				t.Fatal(err)
			}
			old.Index = 3
			if err := st.SaveIfCurrent(ctx, old); !errors.Is(err, ErrStale) {
				t.Fatalf("want ErrStale, got %v", err)
			}
			got, _ := st.Load(ctx, user)
			if got.SessionID != fresh.SessionID || got.Index != 1 {
				t.Fatalf("fresh session must not be overwritten")
			}
		})
	}
}

func TestStore_AcquireIsExclusive(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := uuid.New()

			release, err := st.Acquire(ctx, user, 0)
			if err != nil {
				t.Fatalf("acquire: %v", err)
			}
			if busy, _ := st.Busy(ctx, user); !busy {
				t.Fatalf("Busy should report held guard")
			}
			if _, err := st.Acquire(ctx, user, 0); !errors.Is(err, ErrBusy) {
				t.Fatalf("second acquire should be ErrBusy, got %v", err)
			}
			if r2, err := st.Acquire(ctx, uuid.New(), 0); err != nil {
				t.Fatalf("other user should not be blocked: %v", err)
			} else {
				r2()
			}

			release()
			if busy, _ := st.Busy(ctx, user); busy {
				t.Fatalf("guard should be released")
			}
			r3, err := st.Acquire(ctx, user, 0)
			if err != nil {
				t.Fatalf("acquire after release: %v", err)
			}
			r3()
		})
	}
}

func TestRedisStore_LockExpires(t *testing.T) {
	st, mr := newRedisStore(t)
	ctx := context.Background()
	user := uuid.New()

	if _, err := st.Acquire(ctx, user, 0); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(6 * time.Second)
	release, err := st.Acquire(ctx, user, 0)
	if err != nil {
		t.Fatalf("expired guard should be acquirable: %v", err)
	}
	release()
}

func TestRedisStore_SessionTTL(t *testing.T) {
	st, mr := newRedisStore(t)
	ctx := context.Background()
	sess := sampleSession(uuid.New())
	if err := st.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(sessionKey(sess.UserID)); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}
	mr.FastForward(2 * time.Hour)
	if _, err := st.Load(ctx, sess.UserID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("session should expire")
	}
}

func TestStore_SaveIfCurrentRejectsOlderRevision(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := uuid.New()
			if err := st.Save(ctx, sampleSession(user)); err != nil {
				t.Fatal(err)
			}

			// dua transisi memuat session yang sama
			first, _ := st.Load(ctx, user)
			second, _ := st.Load(ctx, user)

			second.Index = 2
			if err := st.SaveIfCurrent(ctx, second); err != nil {
				t.Fatalf("first writer should win: %v", err)
			}
			if second.Revision != 1 {
				t.Fatalf("revision after save = %d, want 1", second.Revision)
			}

			first.Completed = true
			if err := st.SaveIfCurrent(ctx, first); !errors.Is(err, ErrStale) {
				t.Fatalf("older revision should be stale, got %v", err)
			}
			got, _ := st.Load(ctx, user)
			if got.Completed || got.Index != 2 || got.Revision != 1 {
				t.Fatalf("stored session = %+v", got)
			}

			// penulis yang menang bisa lanjut dengan revisi barunya
			second.Index = 3
			if err := st.SaveIfCurrent(ctx, second); err != nil || second.Revision != 2 {
				t.Fatalf("follow-up save: rev=%d err=%v", second.Revision, err)
			}
		})
	}
}

func TestRedisStore_AcquireHonorsLongerTTL(t *testing.T) {
	st, mr := newRedisStore(t)
	ctx := context.Background()
	user := uuid.New()

	release, err := st.Acquire(ctx, user, 90*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(lockKey(user)); ttl != 90*time.Second {
		t.Fatalf("lock ttl = %v, want 90s", ttl)
	}
	release()

	// di bawah batas bawah store → pakai batas bawah
	release, err = st.Acquire(ctx, user, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	if ttl := mr.TTL(lockKey(user)); ttl != 5*time.Second {
		t.Fatalf("lock ttl = %v, want store floor 5s", ttl)
	}
}
