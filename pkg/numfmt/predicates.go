package numfmt

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Clamp limits a value to the inclusive range [lo, hi].
// Bounds given in the wrong order are swapped.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// InRange reports whether a value lies within the inclusive range [lo, hi].
// Bounds given in the wrong order are swapped.
func InRange(value, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}

	return value >= lo && value <= hi
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Comma renders an integer with comma grouping: 1234567 → "1,234,567".
func Comma(n int64) string {
	return humanize.Comma(n)
}

// CommaFloat renders a float with comma grouping and its shortest
// decimal representation: 1234567.89 → "1,234,567.89".
func CommaFloat(value float64) string {
	return humanize.Commaf(value)
}

// Bytes renders a byte count in SI form: 82854982 → "83 MB".
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}
