package app

import (
	"fmt"

	"github.com/jsamuelsen/dailyquote/internal/domain"
	"github.com/jsamuelsen/dailyquote/internal/ports"
)

// Select picks one quote from store, each entry with probability 1/N.
// It keeps no memory between calls; all randomness comes from rng.
//
// Returns domain.ErrInvalidState when the store is empty or nil, when rng
// is nil, or when rng yields an index outside [0, N).
func Select(store *domain.Store, rng ports.RandomSource) (domain.Quote, error) {
	n := store.Len()
	if n == 0 {
		return domain.Quote{}, domain.NewInvalidStateError("Select", "quote store is empty")
	}

	if rng == nil {
		return domain.Quote{}, domain.NewInvalidStateError("Select", "random source is nil")
	}

	i := rng.IntN(n)

	q, err := store.Get(i)
	if err != nil {
		return domain.Quote{}, domain.NewInvalidStateError("Select",
			fmt.Sprintf("random source returned index %d for store of %d", i, n))
	}

	return q, nil
}
