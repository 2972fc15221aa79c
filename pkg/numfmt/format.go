package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/handykit/handykit/pkg/locale"
)

// fractionTolerance is the largest absolute error at which a value is still
// considered representable by a common fraction.
const fractionTolerance = 0.001

// Ordinal renders an integer with its English ordinal suffix:
// 1 → "1st", 2 → "2nd", 11 → "11th", -3 → "-3rd".
// For locale-aware ordinals use a locale.Engine directly.
func Ordinal(n int) string {
	return locale.English().FormatOrdinal(n)
}

// FormatRange renders an inclusive numeric range with an en dash,
// e.g. "1,000–2,500". Endpoints given in the wrong order are swapped.
func FormatRange(lo, hi float64, decimals int, engine locale.Engine) string {
	if lo > hi {
		lo, hi = hi, lo
	}

	return engine.FormatNumber(lo, decimals) + "–" + engine.FormatNumber(hi, decimals)
}

// FormatRatio renders the ratio of part to whole.
// Integer inputs reduce by their greatest common divisor ("16:9");
// fractional inputs normalize the whole to one ("1.78:1").
// A zero whole fails with ErrDivisionByZero.
func FormatRatio(part, whole float64) (string, error) {
	if math.IsNaN(part) || math.IsInf(part, 0) || math.IsNaN(whole) || math.IsInf(whole, 0) {
		return "", fmt.Errorf("%w: got %v:%v", ErrNotFinite, part, whole)
	}

	if whole == 0 {
		return "", fmt.Errorf("%w: ratio whole is zero", ErrDivisionByZero)
	}

	if part == math.Trunc(part) && whole == math.Trunc(whole) {
		a, b := int64(part), int64(whole)

		divisor := gcd(a, b)
		if divisor > 1 {
			a /= divisor
			b /= divisor
		}

		return fmt.Sprintf("%d:%d", a, b), nil
	}

	normalized := strconv.FormatFloat(part/whole, 'f', 2, 64)
	normalized = strings.TrimRight(normalized, "0")
	normalized = strings.TrimSuffix(normalized, ".")

	return normalized + ":1", nil
}

// FormatPercent renders a fraction as a percentage: 0.256 → "25.6%".
func FormatPercent(fraction float64, decimals int, engine locale.Engine) string {
	return engine.FormatNumber(fraction*100, decimals) + "%"
}

// FormatFraction renders a value as a mixed number with the nearest common
// fraction whose denominator does not exceed maxDenominator: 1.75 → "1 3/4".
// If no denominator approximates the value closely enough, the plain decimal
// representation is returned instead.
func FormatFraction(value float64, maxDenominator int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || maxDenominator < 2 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	whole := math.Floor(value)
	frac := value - whole

	var (
		bestNumerator   int64
		bestDenominator int64 = 1
		bestError             = frac
	)

	for d := int64(2); d <= int64(maxDenominator); d++ {
		n := math.Round(frac * float64(d))

		approxError := math.Abs(frac - n/float64(d))
		if approxError < bestError {
			bestError = approxError
			bestNumerator = int64(n)
			bestDenominator = d
		}
	}

	// Values that no candidate fraction approximates closely are rendered
	// as plain decimals instead of a misleading fraction.
	if bestError > fractionTolerance {
		return sign + strconv.FormatFloat(value, 'f', -1, 64)
	}

	if bestNumerator == int64(bestDenominator) {
		whole++
		bestNumerator = 0
	}

	divisor := gcd(bestNumerator, bestDenominator)
	if divisor > 1 {
		bestNumerator /= divisor
		bestDenominator /= divisor
	}

	switch {
	case bestNumerator == 0:
		return sign + strconv.FormatInt(int64(whole), 10)
	case whole == 0:
		return fmt.Sprintf("%s%d/%d", sign, bestNumerator, bestDenominator)
	default:
		return fmt.Sprintf("%s%d %d/%d", sign, int64(whole), bestNumerator, bestDenominator)
	}
}

// gcd computes the greatest common divisor of two integers, ignoring signs.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}
