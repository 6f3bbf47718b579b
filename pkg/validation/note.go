// Package validation holds the note text rule. The same rule runs on
// create and update; there are no per-operation variants.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TooShortError reports a note that does not meet the minimum length
// after trimming.
type TooShortError struct {
	Min    int
	Actual int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("Note must be at least %d characters long", e.Min)
}

// NoteText trims surrounding whitespace and enforces the configured
// minimum length. No other normalization is performed; defense against
// injection is the repository's parameterized queries.
func NoteText(raw string, min int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	// Length is measured in characters, not bytes, so multibyte text
	// is held to the same minimum as ASCII.
	if n := utf8.RuneCountInString(trimmed); n < min {
		return "", &TooShortError{Min: min, Actual: n}
	}
	return trimmed, nil
}
