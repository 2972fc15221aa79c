package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/handykit/handykit/internal/config"
	"github.com/handykit/handykit/internal/logger"
	"github.com/handykit/handykit/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "handykit",
		Short: "Format, validate, and generate everyday values from the command line.",
		Long: `Handykit is a CLI companion to the handykit library.
It exposes the library's helpers as subcommands:
- Format durations, numbers, and relative timestamps
- Validate payment card numbers and ISBNs
- Generate UUIDs, random strings, and password hashes

Defaults such as the locale and token charset come from the configuration file
and can be overridden per invocation with flags.`,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().String(
		"locale",
		"",
		"BCP 47 locale tag for localized output, for example: en, ru, de.")

	rootCmd.PersistentFlags().String(
		"log-level",
		"",
		"logging verbosity: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		// A missing config file is not fatal for a formatting CLI,
		// the defaults cover every field.
		appConfig = &config.Config{}
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("locale"); flag != nil && flag.Changed {
		cfg.Locale, _ = flags.GetString("locale")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("max-units"); flag != nil && flag.Changed {
		cfg.MaxUnits, _ = flags.GetInt("max-units")
	}

	if flag := flags.Lookup("compact"); flag != nil && flag.Changed {
		cfg.Compact, _ = flags.GetBool("compact")
	}

	if flag := flags.Lookup("length"); flag != nil && flag.Changed {
		cfg.TokenLength, _ = flags.GetInt("length")
	}

	if flag := flags.Lookup("charset"); flag != nil && flag.Changed {
		cfg.TokenCharset, _ = flags.GetString("charset")
	}

	return config.ValidateConfig(cfg)
}
