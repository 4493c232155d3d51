package service

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// RandomSource menghasilkan float di [0, 1).
type RandomSource interface {
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewCryptoSource: ChaCha8 dengan seed dari crypto/rand, aman dipakai
// bersamaan dari banyak goroutine.
func NewCryptoSource() RandomSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	return &lockedRand{r: rand.New(rand.NewChaCha8(seed))}
}
