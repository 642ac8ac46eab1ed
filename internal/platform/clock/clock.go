// Package clock provides ports.Clock implementations: the system wall clock
// for production and a fixed clock for deterministic tests.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

// NewSystem returns a clock reporting times in loc.
// A nil loc means time.Local.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.Local
	}

	return System{loc: loc}
}

// Now implements ports.Clock.
func (s System) Now() time.Time {
	if s.loc == nil {
		return time.Now()
	}

	return time.Now().In(s.loc)
}

// Fixed always reports the same instant until moved with Set.
//
// Thread-safety: all methods are safe for concurrent use.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed creates a clock stopped at now.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now implements ports.Clock.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Set moves the clock to now.
func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}
