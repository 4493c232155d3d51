package service

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks: mutex per user, dibuat on-demand dan tidak pernah dibuang.
type userLocks struct {
	m sync.Map // uuid.UUID → *sync.Mutex
}

func (l *userLocks) lock(userID uuid.UUID) func() {
	v, _ := l.m.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
