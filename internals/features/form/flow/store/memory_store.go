package store

import (
	"context"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"healthcard_backend/internals/features/form/flow/model"
)

// memoryStore: SessionStore di memori proses (single instance / test).
// Session disalin lewat JSON supaya caller tidak berbagi map answers.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID][]byte
	locks    map[uuid.UUID]bool
}

func NewMemoryStore() SessionStore {
	return &memoryStore{
		sessions: map[uuid.UUID][]byte{},
		locks:    map[uuid.UUID]bool{},
	}
}

func (m *memoryStore) Load(_ context.Context, userID uuid.UUID) (*model.Session, error) {
	m.mu.Lock()
	data, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}
	var sess model.Session
	if err := sonic.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *memoryStore) Save(_ context.Context, sess *model.Session) error {
	data, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[sess.UserID] = data
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) SaveIfCurrent(ctx context.Context, sess *model.Session) error {
	next := *sess
	next.Revision++
	data, err := sonic.Marshal(&next)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.sessions[sess.UserID]
	if !ok {
		return ErrStale
	}
	var cur model.Session
	if err := sonic.Unmarshal(raw, &cur); err != nil {
		return err
	}
	if cur.SessionID != sess.SessionID || cur.Revision != sess.Revision {
		return ErrStale
	}
	m.sessions[sess.UserID] = data
	sess.Revision = next.Revision
	return nil
}

func (m *memoryStore) Delete(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
	return nil
}

// Acquire: guard memori tidak kedaluwarsa, ttl diabaikan.
func (m *memoryStore) Acquire(_ context.Context, userID uuid.UUID, _ time.Duration) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[userID] {
		return nil, ErrBusy
	}
	m.locks[userID] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.locks, userID)
			m.mu.Unlock()
		})
	}, nil
}

func (m *memoryStore) Busy(_ context.Context, userID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[userID], nil
}
