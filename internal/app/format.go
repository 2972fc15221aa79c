package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/handykit/handykit/internal/config"
	"github.com/handykit/handykit/internal/logger"
	"github.com/handykit/handykit/pkg/locale"
	"github.com/handykit/handykit/pkg/numfmt"
	"github.com/handykit/handykit/pkg/timeutil"
)

// ExecuteFormatDurationCommand renders a duration given in whole seconds
// as human-readable text, honoring the configured unit cap and compact mode.
func ExecuteFormatDurationCommand(ctx context.Context, cfg *config.Config, secondsArg string) {
	seconds, err := strconv.ParseInt(secondsArg, 10, 64)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse seconds value %q: %v", secondsArg, err)
		return
	}

	opts := timeutil.DefaultDurationOptions()
	opts.MaxUnits = cfg.MaxUnits
	opts.Compact = cfg.Compact

	formatted, err := timeutil.FormatDuration(seconds, opts)
	if err != nil {
		logger.Fatalf(ctx, "Failed to format duration: %v", err)
		return
	}

	fmt.Println(formatted)
}

// ExecuteFormatNumberCommand shortens a number with a magnitude suffix.
func ExecuteFormatNumberCommand(ctx context.Context, valueArg string, decimals int) {
	value, err := strconv.ParseFloat(valueArg, 64)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse number %q: %v", valueArg, err)
		return
	}

	formatted, err := numfmt.ShortenNumber(value, decimals)
	if err != nil {
		logger.Fatalf(ctx, "Failed to shorten number: %v", err)
		return
	}

	fmt.Println(formatted)
}

// ExecuteFormatAgoCommand renders a timestamp as relative time in the
// configured locale.
func ExecuteFormatAgoCommand(ctx context.Context, cfg *config.Config, instantArg string) {
	instant, err := timeutil.ParseInstant(instantArg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse timestamp %q: %v", instantArg, err)
		return
	}

	engine, err := locale.ForTag(cfg.ParsedLocale.String())
	if err != nil {
		logger.Fatalf(ctx, "Failed to resolve locale %q: %v", cfg.Locale, err)
		return
	}

	fmt.Println(timeutil.TimeAgo(instant, engine))
}
