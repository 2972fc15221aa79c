package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEnglishFormatNumber tests the English engine's FormatNumber method.
func TestEnglishFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{
			name:     "grouped integer",
			value:    1234567,
			decimals: 0,
			expected: "1,234,567",
		},
		{
			name:     "grouped with fraction",
			value:    1234567.891,
			decimals: 2,
			expected: "1,234,567.89",
		},
		{
			name:     "small value",
			value:    42,
			decimals: 0,
			expected: "42",
		},
		{
			name:     "negative value",
			value:    -1234.5,
			decimals: 1,
			expected: "-1,234.5",
		},
		{
			name:     "negative decimals treated as zero",
			value:    1000,
			decimals: -3,
			expected: "1,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := English().FormatNumber(tt.value, tt.decimals)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestEnglishFormatOrdinal tests the English engine's FormatOrdinal method.
func TestEnglishFormatOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{101, "101st"},
		{111, "111th"},
		{0, "0th"},
		{-2, "-2nd"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, English().FormatOrdinal(tt.input))
		})
	}
}

// TestEnglishFormatRelativeTime tests the English engine's FormatRelativeTime method.
func TestEnglishFormatRelativeTime(t *testing.T) {
	t.Parallel()

	engine := English()

	assert.Equal(t, "3 hours ago", engine.FormatRelativeTime(3, "hour", true))
	assert.Equal(t, "1 minute ago", engine.FormatRelativeTime(1, "minute", true))
	assert.Equal(t, "in 2 days", engine.FormatRelativeTime(2, "day", false))
	assert.Equal(t, "in 1 year", engine.FormatRelativeTime(1, "year", false))
	assert.Equal(t, "just now", engine.FormatRelativeTime(0, "second", true))
	assert.Equal(t, "just now", engine.FormatRelativeTime(0, "second", false))
}

// TestEnglishFormatDateTime tests the English engine's FormatDateTime method.
func TestEnglishFormatDateTime(t *testing.T) {
	t.Parallel()

	moment := time.Date(2024, time.March, 5, 16, 20, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2024 at 16:20", English().FormatDateTime(moment))
}
