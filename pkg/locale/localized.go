package locale

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// engineCacheSize bounds the number of cached per-locale engines.
// Building a message printer walks the CLDR tables, so engines are reused.
const engineCacheSize = 32

//nolint:gochecknoglobals // The engine cache is shared across ForTag calls by design.
var engineCache = func() *lru.Cache[string, Engine] {
	cache, err := lru.New[string, Engine](engineCacheSize)
	if err != nil {
		// Unreachable: engineCacheSize is a positive constant.
		panic(err)
	}

	return cache
}()

// localizedEngine formats values using the golang.org/x/text tables for one locale.
type localizedEngine struct {
	tag     language.Tag
	printer *message.Printer
}

// ForTag returns a formatting engine for the given BCP 47 locale tag (e.g. "de", "ru-RU").
// Engines are cached per canonical tag. An unparsable tag fails with ErrUnknownLocale.
func ForTag(tag string) (Engine, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}

	canonical := parsed.String()
	if cached, ok := engineCache.Get(canonical); ok {
		return cached, nil
	}

	engine := &localizedEngine{
		tag:     parsed,
		printer: message.NewPrinter(parsed),
	}

	engineCache.Add(canonical, engine)

	return engine, nil
}

// FormatNumber renders a number with the locale's digit grouping and separators.
func (e *localizedEngine) FormatNumber(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	return e.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(decimals)))
}

// FormatOrdinal renders an integer with an ordinal indicator.
// English-family locales use suffix indicators ("3rd"); other locales fall back
// to the widespread period convention ("3.") since the CLDR ordinal rules are
// not exposed by golang.org/x/text.
func (e *localizedEngine) FormatOrdinal(n int) string {
	base, _ := e.tag.Base()
	if base.String() == "en" {
		return ordinalString(n)
	}

	return e.printer.Sprint(number.Decimal(n)) + "."
}

// FormatRelativeTime renders a signed offset from now in the given unit.
// The phrase skeleton is English; the count is rendered with the locale's
// digit system. Full CLDR relative-time tables are out of scope for
// golang.org/x/text, so this mirrors the reference engine's phrasing.
func (e *localizedEngine) FormatRelativeTime(count int64, unit string, past bool) string {
	if count <= 0 {
		return "just now"
	}

	phrase := fmt.Sprintf("%s %s", e.printer.Sprint(number.Decimal(count)), unit)
	if count != 1 {
		phrase += "s"
	}

	if past {
		return phrase + " ago"
	}

	return "in " + phrase
}

// FormatDateTime renders an absolute time using the English layout with
// locale-independent numerals.
func (e *localizedEngine) FormatDateTime(t time.Time) string {
	return t.Format(englishDateTimeLayout)
}
