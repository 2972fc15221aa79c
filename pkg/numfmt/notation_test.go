package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSignificantDigits tests the SignificantDigits function.
func TestSignificantDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		value       float64
		digits      int
		expected    string
		expectedErr error
	}{
		{
			name:     "rounds to three digits",
			value:    1234.5678,
			digits:   3,
			expected: "1.23e+03",
		},
		{
			name:     "small value keeps plain form",
			value:    0.12345,
			digits:   2,
			expected: "0.12",
		},
		{
			name:     "integer within precision",
			value:    42,
			digits:   4,
			expected: "42",
		},
		{
			name:        "zero digits rejected",
			value:       1,
			digits:      0,
			expectedErr: ErrInvalidPrecision,
		},
		{
			name:        "NaN rejected",
			value:       math.NaN(),
			digits:      3,
			expectedErr: ErrNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := SignificantDigits(tt.value, tt.digits)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestEngineeringNotation tests the EngineeringNotation function.
func TestEngineeringNotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{
			name:     "thousands",
			value:    12345,
			decimals: 3,
			expected: "12.345e3",
		},
		{
			name:     "unit range keeps zero exponent",
			value:    42,
			decimals: 0,
			expected: "42e0",
		},
		{
			name:     "millions",
			value:    1.5e6,
			decimals: 1,
			expected: "1.5e6",
		},
		{
			name:     "sub-unit values take negative exponents",
			value:    0.05,
			decimals: 0,
			expected: "50e-3",
		},
		{
			name:     "negative value",
			value:    -12345,
			decimals: 2,
			expected: "-12.35e3",
		},
		{
			name:     "zero",
			value:    0,
			decimals: 1,
			expected: "0.0e0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := EngineeringNotation(tt.value, tt.decimals)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestEngineeringNotationNonFinite tests that non-finite values are rejected.
func TestEngineeringNotationNonFinite(t *testing.T) {
	t.Parallel()

	_, err := EngineeringNotation(math.Inf(1), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFinite)
}
