package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var (
	// nonSlugPattern matches every run of characters that cannot appear in a slug.
	nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

	// whitespacePattern matches every run of whitespace characters.
	whitespacePattern = regexp.MustCompile(`\s+`)

	// htmlTagPattern matches HTML/XML tags for stripping.
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	// wordBoundaryPattern splits identifiers on spaces, underscores and hyphens.
	wordBoundaryPattern = regexp.MustCompile(`[\s_\-]+`)

	// camelBoundaryPattern inserts a split point before an upper-case letter
	// that follows a lower-case letter or digit.
	camelBoundaryPattern = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	// acronymBoundaryPattern splits an acronym run from the word that follows
	// it: "HTTPResponse" becomes "HTTP Response".
	acronymBoundaryPattern = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// Slugify converts arbitrary text to a URL-safe slug:
// lowercase letters and digits separated by single hyphens,
// e.g. "Hello, World!" → "hello-world".
func Slugify(s string) string {
	slug := nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-")

	return strings.Trim(slug, "-")
}

// Truncate shortens a string to at most max runes, appending the given
// ellipsis when truncation happens. The ellipsis counts toward the limit.
// A non-positive max returns the empty string.
func Truncate(s string, maxRunes int, ellipsis string) string {
	if maxRunes <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}

	suffix := []rune(ellipsis)
	if len(suffix) >= maxRunes {
		return string(suffix[:maxRunes])
	}

	return string(runes[:maxRunes-len(suffix)]) + ellipsis
}

// splitWords breaks an identifier or phrase into lowercase words,
// honoring spaces, underscores, hyphens, and camelCase boundaries.
func splitWords(s string) []string {
	expanded := camelBoundaryPattern.ReplaceAllString(s, "$1 $2")
	expanded = acronymBoundaryPattern.ReplaceAllString(expanded, "$1 $2")

	parts := wordBoundaryPattern.Split(expanded, -1)
	words := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			words = append(words, strings.ToLower(part))
		}
	}

	return words
}

// CamelCase converts a phrase or identifier to camelCase:
// "hello world" → "helloWorld", "user_id" → "userId".
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(words[0])

	for _, word := range words[1:] {
		builder.WriteString(capitalize(word))
	}

	return builder.String()
}

// PascalCase converts a phrase or identifier to PascalCase:
// "hello world" → "HelloWorld".
func PascalCase(s string) string {
	var builder strings.Builder

	for _, word := range splitWords(s) {
		builder.WriteString(capitalize(word))
	}

	return builder.String()
}

// SnakeCase converts a phrase or identifier to snake_case:
// "helloWorld" → "hello_world".
func SnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// KebabCase converts a phrase or identifier to kebab-case:
// "helloWorld" → "hello-world".
func KebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// TitleCase capitalizes the first letter of every word:
// "war and peace" → "War And Peace".
func TitleCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

// Reverse reverses a string rune by rune, so multi-byte characters survive.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// CollapseWhitespace trims a string and squeezes every internal run of
// whitespace to a single space.
func CollapseWhitespace(s string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripHTMLTags removes HTML/XML tags, leaving the text content.
// It is a display helper, not a sanitizer for untrusted markup.
func StripHTMLTags(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// Mask hides all but the last visible runes of a string behind asterisks:
// Mask("4111111111111111", 4) → "************1111".
// A non-positive visible count masks everything.
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}

	if visible >= len(runes) {
		return s
	}

	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}

// capitalize upper-cases the first rune of a word.
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
