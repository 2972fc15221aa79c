package app

import (
	"context"

	"golang.org/x/text/language"

	"github.com/handykit/handykit/internal/config"
	"github.com/handykit/handykit/internal/logger"
)

// ExecuteLocaleCommand validates a locale tag and persists it as the default
// in the configuration file.
func ExecuteLocaleCommand(ctx context.Context, cfg *config.Config, tag string) {
	parsed, err := language.Parse(tag)
	if err != nil {
		logger.Fatalf(ctx, "Invalid locale tag %q: %v", tag, err)
		return
	}

	cfg.Locale = parsed.String()

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Infof(ctx, "Default locale set to %q", cfg.Locale)
}
