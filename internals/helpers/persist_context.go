package helper

import (
	"context"
	"time"
)

const defaultPersistTimeout = 5 * time.Second

// PersistContext: context untuk satu panggilan persistence.
// Tidak ikut batal ketika client memutus request, tapi tetap dibatasi timeout.
func PersistContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}
