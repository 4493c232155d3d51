package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"healthcard_backend/internals/features/form/flow/model"
)

var (
	ErrNoSession = errors.New("flow session not found")
	// ErrBusy: transisi lain untuk user yang sama masih berjalan.
	ErrBusy = errors.New("flow transition in progress")
	// ErrStale: session sudah diganti (session baru atau transisi lain yang
	// lebih dulu menulis) selama transisi berjalan.
	ErrStale = errors.New("flow session replaced")
)

// SessionStore menyimpan satu session flow aktif per user.
type SessionStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	// SaveIfCurrent hanya menulis kalau session tersimpan masih punya
	// SessionID dan Revision yang sama dengan sess; selain itu ErrStale.
	// Kalau berhasil, Revision di store dan di sess naik satu.
	SaveIfCurrent(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, userID uuid.UUID) error

	// Acquire memegang guard transisi user selama ttl (0 = default store);
	// ErrBusy kalau sedang dipegang.
	Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (release func(), err error)
	Busy(ctx context.Context, userID uuid.UUID) (bool, error)
}
