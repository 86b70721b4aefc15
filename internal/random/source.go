// Package random provides the process-wide random source used by the schedulers.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source returns uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// LockedSource is a Source safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a LockedSource seeded from the clock.
func NewSource() *LockedSource {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a LockedSource with a fixed seed, for reproducible runs.
func NewSeededSource(seed int64) *LockedSource {
	return &LockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns the same value.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}
