package numfmt

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShortenNumber tests the ShortenNumber function.
func TestShortenNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{
			name:     "below one thousand renders plain",
			value:    999,
			decimals: 1,
			expected: "999",
		},
		{
			name:     "plain rendering keeps fractional part",
			value:    12.5,
			decimals: 1,
			expected: "12.5",
		},
		{
			name:     "thousands",
			value:    1200,
			decimals: 1,
			expected: "1.2K",
		},
		{
			name:     "integer-valued result drops trailing zero",
			value:    1000,
			decimals: 1,
			expected: "1K",
		},
		{
			name:     "millions",
			value:    3400000,
			decimals: 1,
			expected: "3.4M",
		},
		{
			name:     "billions exact multiple selects the larger tier",
			value:    1e9,
			decimals: 1,
			expected: "1B",
		},
		{
			name:     "trillions",
			value:    2.5e12,
			decimals: 1,
			expected: "2.5T",
		},
		{
			name:     "negative preserves sign",
			value:    -2500000000,
			decimals: 1,
			expected: "-2.5B",
		},
		{
			name:     "more decimal places",
			value:    1234567,
			decimals: 2,
			expected: "1.23M",
		},
		{
			name:     "zero decimals rounds",
			value:    1650,
			decimals: 0,
			expected: "2K",
		},
		{
			name:     "negative decimals takes the default",
			value:    1200,
			decimals: -1,
			expected: "1.2K",
		},
		{
			name:     "zero renders plain",
			value:    0,
			decimals: 1,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ShortenNumber(tt.value, tt.decimals)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestShortenNumberNonFinite tests that NaN and infinities are rejected explicitly.
func TestShortenNumberNonFinite(t *testing.T) {
	t.Parallel()

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ShortenNumber(value, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFinite)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

// TestShortenNumberPlainBelowThousand tests that every value below the first
// tier renders exactly as its decimal string, with no suffix.
func TestShortenNumberPlainBelowThousand(t *testing.T) {
	t.Parallel()

	for _, value := range []float64{-999.5, -1, 0, 0.001, 42, 999.999} {
		result, err := ShortenNumber(value, 1)
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatFloat(value, 'f', -1, 64), result)
	}
}

// TestShortenNumberTierMonotonicity tests that values at or above 1e12 always
// take the "T" suffix, never a smaller tier.
func TestShortenNumberTierMonotonicity(t *testing.T) {
	t.Parallel()

	for _, value := range []float64{1e12, 1.5e12, 9.99e14, -1e13} {
		result, err := ShortenNumber(value, 2)
		require.NoError(t, err)
		assert.Equal(t, "T", result[len(result)-1:])
	}
}
