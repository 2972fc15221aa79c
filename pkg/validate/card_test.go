package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateCard tests the ValidateCard function.
func TestValidateCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected CardResult
	}{
		{
			name:     "valid visa",
			input:    "4111111111111111",
			expected: CardResult{Valid: true, Type: CardTypeVisa},
		},
		{
			name:     "visa with flipped digit keeps classification",
			input:    "4111111111111112",
			expected: CardResult{Valid: false, Type: CardTypeVisa},
		},
		{
			name:     "valid mastercard",
			input:    "5555555555554444",
			expected: CardResult{Valid: true, Type: CardTypeMasterCard},
		},
		{
			name:     "mastercard in the 2-series range",
			input:    "2223003122003222",
			expected: CardResult{Valid: true, Type: CardTypeMasterCard},
		},
		{
			name:     "valid amex",
			input:    "378282246310005",
			expected: CardResult{Valid: true, Type: CardTypeAmex},
		},
		{
			name:     "valid discover",
			input:    "6011111111111117",
			expected: CardResult{Valid: true, Type: CardTypeDiscover},
		},
		{
			name:     "valid diners",
			input:    "30569309025904",
			expected: CardResult{Valid: true, Type: CardTypeDiners},
		},
		{
			name:     "valid jcb",
			input:    "3530111333300000",
			expected: CardResult{Valid: true, Type: CardTypeJCB},
		},
		{
			name:     "separators are stripped",
			input:    "4111-1111 1111-1111",
			expected: CardResult{Valid: true, Type: CardTypeVisa},
		},
		{
			name:     "too short yields no classification",
			input:    "411111111111",
			expected: CardResult{},
		},
		{
			name:     "too long yields no classification",
			input:    "41111111111111111111",
			expected: CardResult{},
		},
		{
			name:     "unknown prefix with valid checksum",
			input:    "1234567812345670",
			expected: CardResult{Valid: true, Type: CardTypeUnknown},
		},
		{
			name:     "empty string",
			input:    "",
			expected: CardResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ValidateCard(tt.input))
		})
	}
}

// TestValidateCardIsPure tests that repeated calls yield identical results.
func TestValidateCardIsPure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ValidateCard("4111111111111111"), ValidateCard("4111111111111111"))
}
