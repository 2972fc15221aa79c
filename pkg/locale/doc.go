// Package locale provides a pluggable formatting engine for locale-aware output,
// such as grouped decimal numbers, ordinals, and relative-time phrases.
// A hard-coded English engine serves as the reference implementation,
// while ForTag builds engines backed by the golang.org/x/text localization tables.
package locale
