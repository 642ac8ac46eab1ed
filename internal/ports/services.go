// Package ports defines interfaces for the capabilities the application
// layer consumes. Adapters and platform packages implement them, so the
// selection and reporting logic stays free of ambient global state.
//
// Port Design Principles:
//   - Return domain types, never infrastructure types
//   - Capabilities that would otherwise be ambient (randomness, wall clock)
//     are passed in explicitly
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// RandomSource yields uniformly distributed integers.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// IntN returns a uniformly distributed integer in [0, n).
	// Implementations may panic if n <= 0.
	IntN(n int) int
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// QuoteService is the use-case surface consumed by the delivery adapters
// (CLI and HTTP).
type QuoteService interface {
	// DailyReport selects a quote and stamps it with the current date.
	DailyReport(ctx context.Context) (*domain.Report, error)

	// Quotes enumerates the store in order.
	Quotes(ctx context.Context) []domain.Quote

	// QuoteAt returns the quote at the given store position.
	// Returns domain.ErrNotFound when the position is out of range.
	QuoteAt(ctx context.Context, index int) (domain.Quote, error)
}
