package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForTag tests the ForTag function.
func TestForTag(t *testing.T) {
	t.Parallel()

	engine, err := ForTag("de")
	require.NoError(t, err)
	require.NotNil(t, engine)

	_, err = ForTag("ru-RU")
	require.NoError(t, err)
}

// TestForTagUnknownLocale tests ForTag input validation.
func TestForTagUnknownLocale(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "not a tag!", "x y z"} {
		_, err := ForTag(tag)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownLocale)
	}
}

// TestForTagCachesEngines tests that engines are reused per canonical tag.
func TestForTagCachesEngines(t *testing.T) {
	t.Parallel()

	first, err := ForTag("de")
	require.NoError(t, err)

	second, err := ForTag("de")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

// TestLocalizedFormatNumber tests locale-specific digit grouping.
func TestLocalizedFormatNumber(t *testing.T) {
	t.Parallel()

	german, err := ForTag("de")
	require.NoError(t, err)

	assert.Equal(t, "1.234.567", german.FormatNumber(1234567, 0))
	assert.Equal(t, "1.234,5", german.FormatNumber(1234.5, 1))

	english, err := ForTag("en")
	require.NoError(t, err)

	assert.Equal(t, "1,234,567", english.FormatNumber(1234567, 0))
}

// TestLocalizedFormatOrdinal tests ordinal rendering per locale family.
func TestLocalizedFormatOrdinal(t *testing.T) {
	t.Parallel()

	english, err := ForTag("en-GB")
	require.NoError(t, err)

	assert.Equal(t, "3rd", english.FormatOrdinal(3))

	german, err := ForTag("de")
	require.NoError(t, err)

	assert.Equal(t, "3.", german.FormatOrdinal(3))
}

// TestLocalizedFormatRelativeTime tests relative phrases with localized counts.
func TestLocalizedFormatRelativeTime(t *testing.T) {
	t.Parallel()

	german, err := ForTag("de")
	require.NoError(t, err)

	assert.Equal(t, "3 hours ago", german.FormatRelativeTime(3, "hour", true))
	assert.Equal(t, "in 2 days", german.FormatRelativeTime(2, "day", false))
	assert.Equal(t, "just now", german.FormatRelativeTime(0, "second", true))
}
