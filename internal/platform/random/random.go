// Package random provides the ports.RandomSource used for quote selection.
//
// The generator is ChaCha8 from math/rand/v2. By default it is seeded from
// the operating system's entropy pool, so selections differ across runs; a
// non-zero seed makes a run reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source is a goroutine-safe uniform random source.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source seeded from OS entropy.
func New() (*Source, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}

	return &Source{rng: rand.New(rand.NewChaCha8(seed))}, nil //nolint:gosec // Quote selection does not need crypto-grade randomness
}

// NewSeeded returns a deterministic source: equal seeds yield equal sequences.
func NewSeeded(seed uint64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	return &Source{rng: rand.New(rand.NewChaCha8(key))} //nolint:gosec // Reproducible runs are the point
}

// FromConfig returns NewSeeded(seed) for a non-zero seed and New() otherwise.
func FromConfig(seed uint64) (*Source, error) {
	if seed != 0 {
		return NewSeeded(seed), nil
	}

	return New()
}

// IntN implements ports.RandomSource.
// It panics if n <= 0, like rand.IntN.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(n)
}

// Global returns a source backed by the math/rand/v2 top-level functions,
// which are goroutine-safe and seeded by the runtime.
func Global() GlobalSource {
	return GlobalSource{}
}

// GlobalSource delegates to rand.IntN.
type GlobalSource struct{}

// IntN implements ports.RandomSource.
func (GlobalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Quote selection does not need crypto-grade randomness
}
