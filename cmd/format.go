package cmd

import (
	"github.com/spf13/cobra"

	"github.com/handykit/handykit/internal/app"
)

var (
	formatCmd = &cobra.Command{
		Use:   "format",
		Short: "Format durations, numbers, and timestamps",
	}

	formatDurationCmd = &cobra.Command{
		Use:   "duration {seconds}",
		Short: "Render a duration in seconds as human-readable text",
		Long: `Render a duration given in whole seconds as human-readable text.

Examples:
  handykit format duration 3661
  handykit format duration 3661 --max-units 2
  handykit format duration 3661 --compact`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteFormatDurationCommand(cmd.Context(), appConfig, args[0])
		},
	}

	formatNumberCmd = &cobra.Command{
		Use:   "number {value}",
		Short: "Shorten a number with a magnitude suffix",
		Long: `Shorten a number using K, M, B, and T magnitude suffixes.

Examples:
  handykit format number 1234567
  handykit format number 1234567 --decimals 2`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			decimals, _ := cmd.Flags().GetInt("decimals")

			app.ExecuteFormatNumberCommand(cmd.Context(), args[0], decimals)
		},
	}

	formatAgoCmd = &cobra.Command{
		Use:   "ago {timestamp}",
		Short: "Render a timestamp as relative time",
		Long: `Render an RFC 3339 timestamp or a plain date as relative time,
for example "3 hours ago" or "in 2 days". The locale comes from the
configuration file or the --locale flag.

Examples:
  handykit format ago 2023-01-01T00:00:00Z
  handykit format ago 2023-01-01 --locale ru`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteFormatAgoCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	formatDurationCmd.Flags().IntP(
		"max-units",
		"m",
		0,
		"maximum number of units to render, for example: 2 turns 1h 1m 1s into 1h 1m.")

	formatDurationCmd.Flags().BoolP(
		"compact",
		"k",
		false,
		"render without separators, for example: 1h1m1s.")

	formatNumberCmd.Flags().IntP(
		"decimals",
		"d",
		1,
		"number of decimal places in the shortened value.")

	formatCmd.AddCommand(formatDurationCmd)
	formatCmd.AddCommand(formatNumberCmd)
	formatCmd.AddCommand(formatAgoCmd)

	rootCmd.AddCommand(formatCmd)
}
