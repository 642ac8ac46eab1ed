package domain

import (
	"strings"
	"unicode"
)

// AttributionSeparator separates a quote body from its author.
const AttributionSeparator = " — "

// Quote is a single motivational statement, optionally attributed.
// It is a value type: once built it cannot be changed.
type Quote struct {
	text string
}

// NewQuote creates a quote from its full text, attribution included.
// The text must contain at least one printable, non-space character.
func NewQuote(text string) (Quote, error) {
	if strings.TrimSpace(text) == "" {
		return Quote{}, NewValidationError("text", "cannot be empty")
	}

	for _, r := range text {
		if !unicode.IsPrint(r) {
			return Quote{}, NewValidationErrorWithValue("text", "must be printable", text)
		}
	}

	return Quote{text: text}, nil
}

// Text returns the quote exactly as stored, attribution included.
func (q Quote) Text() string {
	return q.text
}

// Body returns the quote without its attribution suffix.
func (q Quote) Body() string {
	body, _ := q.split()
	return body
}

// Author returns the attribution, or an empty string for anonymous quotes.
func (q Quote) Author() string {
	_, author := q.split()
	return author
}

// IsZero reports whether q is the zero Quote.
func (q Quote) IsZero() bool {
	return q.text == ""
}

// String implements fmt.Stringer.
func (q Quote) String() string {
	return q.text
}

func (q Quote) split() (body, author string) {
	i := strings.LastIndex(q.text, AttributionSeparator)
	if i < 0 {
		return q.text, ""
	}

	return strings.TrimSpace(q.text[:i]), strings.TrimSpace(q.text[i+len(AttributionSeparator):])
}
