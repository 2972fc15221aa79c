package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashAndVerifyPassword tests the HashPassword and VerifyPassword round trip.
func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	const password = "correct horse battery staple"

	encoded, err := HashPassword(password)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=4$"), "got %s", encoded)

	match, err := VerifyPassword(password, encoded)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, match)
}

// TestHashPasswordSaltsDiffer tests that hashing twice never reuses a salt.
func TestHashPasswordSaltsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret")
	require.NoError(t, err)

	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both still verify.
	for _, encoded := range []string{first, second} {
		match, verifyErr := VerifyPassword("secret", encoded)
		require.NoError(t, verifyErr)
		assert.True(t, match)
	}
}

// TestVerifyPasswordMalformedHash tests VerifyPassword input validation.
func TestVerifyPasswordMalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{
			name:    "empty",
			encoded: "",
		},
		{
			name:    "not a hash",
			encoded: "plaintext",
		},
		{
			name:    "wrong algorithm",
			encoded: "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		},
		{
			name:    "missing sections",
			encoded: "$argon2id$v=19$c2FsdA",
		},
		{
			name:    "bad parameters",
			encoded: "$argon2id$v=19$m=abc,t=3,p=4$c2FsdA$aGFzaA",
		},
		{
			name:    "bad salt encoding",
			encoded: "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := VerifyPassword("secret", tt.encoded)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// TestVerifyPasswordUnsupportedVersion tests rejection of foreign argon2 versions.
func TestVerifyPasswordUnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("secret", "$argon2id$v=16$m=65536,t=3,p=4$c2FsdA$aGFzaA")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}
