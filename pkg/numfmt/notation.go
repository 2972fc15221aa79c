package numfmt

import (
	"fmt"
	"math"
	"strconv"
)

// engineeringStep is the exponent granularity of engineering notation.
const engineeringStep = 3

// SignificantDigits renders a value rounded to n significant digits.
// Very large or very small magnitudes switch to exponent form, following
// the shortest-representation rules of strconv. n below 1 fails with
// ErrInvalidPrecision.
func SignificantDigits(value float64, n int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: got %v", ErrNotFinite, value)
	}

	if n < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidPrecision, n)
	}

	return strconv.FormatFloat(value, 'g', n, 64), nil
}

// EngineeringNotation renders a value in engineering notation: a mantissa in
// [1, 1000) paired with an exponent that is a multiple of three,
// e.g. 12345 → "12.345e3". Zero renders with a zero exponent.
func EngineeringNotation(value float64, decimals int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: got %v", ErrNotFinite, value)
	}

	if decimals < 0 {
		decimals = 0
	}

	if value == 0 {
		return strconv.FormatFloat(0, 'f', decimals, 64) + "e0", nil
	}

	exponent := int(math.Floor(math.Log10(math.Abs(value))))

	// Snap the exponent down to a multiple of three (floor semantics for
	// negative exponents too, so 0.05 becomes 50e-3).
	exponent = int(math.Floor(float64(exponent)/engineeringStep)) * engineeringStep

	mantissa := value / math.Pow(10, float64(exponent))

	// Rounding at the requested precision can push the mantissa to 1000.
	for math.Abs(mantissa) >= 1000 {
		mantissa /= 1000
		exponent += engineeringStep
	}

	return strconv.FormatFloat(mantissa, 'f', decimals, 64) + "e" + strconv.Itoa(exponent), nil
}
