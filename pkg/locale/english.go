package locale

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// englishDateTimeLayout is the layout used by the English engine for absolute times.
const englishDateTimeLayout = "January 2, 2006 at 15:04"

// englishEngine is the hard-coded English reference implementation of Engine.
type englishEngine struct{}

// English returns the built-in English formatting engine.
// It requires no locale tables and is the default engine across the library.
func English() Engine {
	return englishEngine{}
}

// FormatNumber renders a number with comma grouping ("1,234,567.8").
func (englishEngine) FormatNumber(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	return humanize.CommafWithDigits(value, decimals)
}

// FormatOrdinal renders an integer with its English ordinal suffix.
func (englishEngine) FormatOrdinal(n int) string {
	return ordinalString(n)
}

// FormatRelativeTime renders phrases such as "3 hours ago" or "in 1 minute".
func (englishEngine) FormatRelativeTime(count int64, unit string, past bool) string {
	if count <= 0 {
		return "just now"
	}

	phrase := fmt.Sprintf("%d %s", count, unit)
	if count != 1 {
		phrase += "s"
	}

	if past {
		return phrase + " ago"
	}

	return "in " + phrase
}

// FormatDateTime renders an absolute time, e.g. "March 5, 2024 at 16:20".
func (englishEngine) FormatDateTime(t time.Time) string {
	return t.Format(englishDateTimeLayout)
}

// ordinalString appends the English ordinal indicator to an integer.
// The 11th-13th block always takes "th", otherwise the last digit decides.
func ordinalString(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"

	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", n, suffix)
}
