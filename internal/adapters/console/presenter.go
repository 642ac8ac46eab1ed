// Package console renders the daily report as plain text lines for a
// terminal or any other io.Writer.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// DateLayout renders as "Monday, January 05, 2026". The day is always
// zero-padded.
const DateLayout = "Monday, January 02, 2006"

// SeparatorWidth is the number of dashes in each separator line.
const SeparatorWidth = 50

// LineCount is the number of lines in every rendered report.
const LineCount = 6

// OutputService names the output stream in UnavailableError.
const OutputService = "stdout"

// Style selects the report decorations.
type Style string

const (
	// StyleEmoji is the default and matches the reference output byte for byte.
	StyleEmoji Style = "emoji"

	// StylePlain prints the same lines without emoji.
	StylePlain Style = "plain"
)

// decorations wraps the fixed title, quote and closing lines.
type decorations struct {
	sun, speech, sparkles string
}

var styles = map[Style]decorations{
	StyleEmoji: {sun: "🌞", speech: "💬", sparkles: "✨"},
	StylePlain: {},
}

func (d decorations) wrap(mark, s string) string {
	if mark == "" {
		return s
	}

	return mark + " " + s + " " + mark
}

func (d decorations) prefix(mark, s string) string {
	if mark == "" {
		return s
	}

	return mark + " " + s
}

const (
	title   = "Daily Motivational Quote Generator"
	closing = "Have a productive and positive day ahead!"
)

var separator = strings.Repeat("-", SeparatorWidth)

// ParseStyle maps a config value to a Style. Unknown values are an error.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if style == "" {
		return StyleEmoji, nil
	}

	if _, ok := styles[style]; !ok {
		return "", domain.NewValidationErrorWithValue("output.style", "must be emoji or plain", s)
	}

	return style, nil
}

// Presenter turns a report into its text form.
// The zero value renders the emoji style.
type Presenter struct {
	style Style
}

// NewPresenter creates a presenter for style. An unknown style falls back
// to StyleEmoji; use ParseStyle to reject bad input earlier.
func NewPresenter(style Style) *Presenter {
	if _, ok := styles[style]; !ok {
		style = StyleEmoji
	}

	return &Presenter{style: style}
}

// Style returns the presenter's style.
func (p *Presenter) Style() Style {
	if p == nil || p.style == "" {
		return StyleEmoji
	}

	return p.style
}

// FormatDate formats t in its own location with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Render returns the six report lines without trailing newlines.
func (p *Presenter) Render(report *domain.Report) []string {
	d := styles[p.Style()]

	return []string{
		d.wrap(d.sun, title),
		"Today's date: " + FormatDate(report.Date),
		separator,
		d.prefix(d.speech, report.Quote.Text()),
		separator,
		d.wrap(d.sparkles, closing),
	}
}

// Text returns the rendered report with every line newline-terminated.
func (p *Presenter) Text(report *domain.Report) string {
	var b strings.Builder

	for _, line := range p.Render(report) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// Write writes the rendered report to w in a single call. A failed or short
// write is reported as a domain.UnavailableError for OutputService.
func (p *Presenter) Write(w io.Writer, report *domain.Report) error {
	if report == nil {
		return domain.NewInvalidStateError("Write", "no report to present")
	}

	text := p.Text(report)

	n, err := io.WriteString(w, text)
	if err != nil {
		return domain.WrapUnavailable(OutputService, err)
	}

	if n != len(text) {
		return domain.WrapUnavailable(OutputService, fmt.Errorf("short write: %d of %d bytes", n, len(text)))
	}

	return nil
}
