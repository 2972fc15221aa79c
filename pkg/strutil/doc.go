// Package strutil provides pure string transforms: slugs, truncation,
// identifier case conversion, rune-safe reversal, whitespace collapsing,
// tag stripping, and masking.
// Every function is total: malformed input degrades to an empty or
// unchanged result rather than an error.
package strutil
