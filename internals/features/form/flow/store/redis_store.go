package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"healthcard_backend/internals/features/form/flow/model"
)

const (
	sessionKeyPrefix = "flow:session:"
	lockKeyPrefix    = "flow:lock:"
)

// lock dilepas hanya oleh pemilik token-nya.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// NewRedisStore: session hidup ttl sejak disimpan terakhir; guard transisi
// kedaluwarsa sendiri kalau proses mati sebelum release. lockTTL = batas
// bawah umur guard; Acquire boleh minta lebih lama.
func NewRedisStore(client *redis.Client, ttl, lockTTL time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &redisStore{client: client, ttl: ttl, lockTTL: lockTTL}
}

func sessionKey(userID uuid.UUID) string { return sessionKeyPrefix + userID.String() }
func lockKey(userID uuid.UUID) string    { return lockKeyPrefix + userID.String() }

func (s *redisStore) Load(ctx context.Context, userID uuid.UUID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := sonic.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Save(ctx context.Context, sess *model.Session) error {
	data, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.UserID), data, s.ttl).Err()
}

func (s *redisStore) SaveIfCurrent(ctx context.Context, sess *model.Session) error {
	key := sessionKey(sess.UserID)
	next := *sess
	next.Revision++
	data, err := sonic.Marshal(&next)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrStale
		}
		if err != nil {
			return err
		}
		var cur model.Session
		if err := sonic.Unmarshal(raw, &cur); err != nil {
			return err
		}
		if cur.SessionID != sess.SessionID || cur.Revision != sess.Revision {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		err = s.client.Watch(ctx, txf, key)
		if err == nil {
			sess.Revision = next.Revision
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	log.Printf("[FLOW] SaveIfCurrent user=%s: key terus berubah, menyerah", sess.UserID)
	return ErrStale
}

func (s *redisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}

func (s *redisStore) Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (func(), error) {
	if ttl < s.lockTTL {
		ttl = s.lockTTL
	}
	token := uuid.NewString()
	ok, err := s.client.SetNX(ctx, lockKey(userID), token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}
	return func() {
		// release tetap jalan walau request sudah dibatalkan
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, s.client, []string{lockKey(userID)}, token).Err(); err != nil {
			log.Printf("[FLOW] gagal melepas lock user=%s: %v", userID, err)
		}
	}, nil
}

func (s *redisStore) Busy(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, lockKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
