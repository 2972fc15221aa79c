package cmd

import (
	"github.com/spf13/cobra"

	"github.com/handykit/handykit/internal/app"
)

var (
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Generate identifiers and secrets",
	}

	tokenUUIDCmd = &cobra.Command{
		Use:              "uuid",
		Short:            "Generate a random version 4 UUID",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenUUIDCommand(cmd.Context())
		},
	}

	tokenStringCmd = &cobra.Command{
		Use:   "string",
		Short: "Generate a random string",
		Long: `Generate a cryptographically random string. The length and charset
come from the configuration file and can be overridden with flags.

Examples:
  handykit token string
  handykit token string --length 16 --charset hex`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteTokenStringCommand(cmd.Context(), appConfig)
		},
	}

	tokenPasswordCmd = &cobra.Command{
		Use:              "password {password}",
		Short:            "Hash a password with argon2id",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteTokenPasswordCommand(cmd.Context(), args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	tokenStringCmd.Flags().IntP(
		"length",
		"l",
		0,
		"length of the generated string.")

	tokenStringCmd.Flags().StringP(
		"charset",
		"s",
		"",
		"charset name: alphanumeric, alphabetic, numeric, hex, urlsafe.")

	tokenCmd.AddCommand(tokenUUIDCmd)
	tokenCmd.AddCommand(tokenStringCmd)
	tokenCmd.AddCommand(tokenPasswordCmd)

	rootCmd.AddCommand(tokenCmd)
}
