package domain

import (
	"fmt"
	"slices"
	"strconv"
)

// referenceQuotes is the fixed candidate set shipped with the binary.
var referenceQuotes = []string{
	"Believe you can and you're halfway there. — Theodore Roosevelt",
	"Don't watch the clock; do what it does. Keep going. — Sam Levenson",
	"The secret of getting ahead is getting started. — Mark Twain",
	"Dream big and dare to fail. — Norman Vaughan",
	"You are never too old to set another goal or to dream a new dream. — C.S. Lewis",
	"Hustle in silence and let your success make the noise.",
	"Push yourself because no one else is going to do it for you.",
	"Success doesn’t come to you, you go to it.",
}

var defaultStore = MustNewStore(referenceQuotes...)

// Store is the fixed, ordered collection of candidate quotes.
// A Store built by NewStore is never empty and never changes; the zero
// value (or a nil *Store) is an empty store that selection rejects.
type Store struct {
	quotes []Quote
}

// NewStore builds a store from quote texts, preserving their order.
// Returns ErrInvalidState when no texts are given and ErrValidation when
// one of them is not a valid quote.
func NewStore(texts ...string) (*Store, error) {
	if len(texts) == 0 {
		return nil, NewInvalidStateError("NewStore", "store must contain at least one quote")
	}

	quotes := make([]Quote, 0, len(texts))

	for i, text := range texts {
		q, err := NewQuote(text)
		if err != nil {
			return nil, fmt.Errorf("quote %d: %w", i, err)
		}

		quotes = append(quotes, q)
	}

	return &Store{quotes: quotes}, nil
}

// MustNewStore is like NewStore but panics on error.
// Intended for package-level literals.
func MustNewStore(texts ...string) *Store {
	s, err := NewStore(texts...)
	if err != nil {
		panic(err)
	}

	return s
}

// DefaultStore returns the built-in reference store.
func DefaultStore() *Store {
	return defaultStore
}

// Len returns the number of quotes in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	return len(s.quotes)
}

// Get returns the quote at position i.
func (s *Store) Get(i int) (Quote, error) {
	if i < 0 || i >= s.Len() {
		return Quote{}, NewNotFoundError("quote", strconv.Itoa(i))
	}

	return s.quotes[i], nil
}

// All returns a copy of the quotes in store order.
func (s *Store) All() []Quote {
	if s == nil {
		return nil
	}

	return slices.Clone(s.quotes)
}

// Contains reports whether q is one of the store's quotes.
func (s *Store) Contains(q Quote) bool {
	if s == nil {
		return false
	}

	return slices.Contains(s.quotes, q)
}
