package locale

import (
	"errors"
	"time"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidInput is the base error for every malformed argument in this package.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLocale indicates that a locale tag could not be parsed.
	ErrUnknownLocale = errors.New("unknown locale tag")
)

// Engine formats values for a specific locale.
// Implementations must be safe for concurrent use:
// every method is a pure function over its arguments.
type Engine interface {
	// FormatNumber renders a number with locale-specific digit grouping,
	// rounded to the given number of decimal places.
	FormatNumber(value float64, decimals int) string

	// FormatOrdinal renders an integer with its ordinal indicator (e.g. "3rd").
	FormatOrdinal(n int) string

	// FormatRelativeTime renders a signed offset from now in the given unit.
	// A zero count renders the "just now" phrase regardless of direction.
	FormatRelativeTime(count int64, unit string, past bool) string

	// FormatDateTime renders an absolute point in time in a human-readable form.
	FormatDateTime(t time.Time) string
}
