// Package numfmt provides humanized number formatting: magnitude-suffix
// shortening (1.2K, 3.4M), ordinals, ranges, ratios, percentages, nearest
// common fractions, significant-digit and engineering-notation rendering,
// and small numeric predicates.
// Locale-sensitive output is delegated to a locale.Engine; everything else
// is a pure transformation of its arguments.
package numfmt
