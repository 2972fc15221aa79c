package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultShortenDecimals is the documented default precision for ShortenNumber.
const DefaultShortenDecimals = 1

// magnitudeTier is one row of the descending suffix table.
type magnitudeTier struct {
	threshold float64
	suffix    string
}

// magnitudeTiers is ordered strictly descending: scanning top-down guarantees
// exactly one tier matches and largest-first is the tie-break for values that
// are exact multiples of several tiers (1e9 selects "B", never "M").
//
//nolint:gochecknoglobals // Immutable lookup table used as a constant.
var magnitudeTiers = []magnitudeTier{
	{threshold: 1e12, suffix: "T"},
	{threshold: 1e9, suffix: "B"},
	{threshold: 1e6, suffix: "M"},
	{threshold: 1e3, suffix: "K"},
}

// ShortenNumber shortens a large number to suffixed form:
// 1200 → "1.2K", 3400000 → "3.4M", -2500000000 → "-2.5B".
//
// Values with an absolute value below 1000 render as their plain decimal
// representation with no suffix. Results that round to a whole number drop
// the trailing zero padding ("1.0K" renders as "1K"). A negative decimals
// argument takes the documented default of one place.
//
// NaN and infinities fail with ErrNotFinite.
func ShortenNumber(value float64, decimals int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: got %v", ErrNotFinite, value)
	}

	if decimals < 0 {
		decimals = DefaultShortenDecimals
	}

	abs := math.Abs(value)
	if abs < magnitudeTiers[len(magnitudeTiers)-1].threshold {
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	}

	for _, tier := range magnitudeTiers {
		if abs < tier.threshold {
			continue
		}

		scaled := strconv.FormatFloat(value/tier.threshold, 'f', decimals, 64)
		if strings.Contains(scaled, ".") {
			scaled = strings.TrimRight(scaled, "0")
			scaled = strings.TrimSuffix(scaled, ".")
		}

		return scaled + tier.suffix, nil
	}

	// Unreachable: the last tier's threshold bounds the plain-decimal branch.
	return strconv.FormatFloat(value, 'f', -1, 64), nil
}
