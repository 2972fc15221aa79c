package cmd

import (
	"github.com/spf13/cobra"

	"github.com/handykit/handykit/internal/app"
)

var (
	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate checksummed identifiers",
	}

	validateCardCmd = &cobra.Command{
		Use:   "card {number}",
		Short: "Validate a payment card number",
		Long: `Validate a payment card number with the Luhn checksum and report
the detected card network.

Examples:
  handykit validate card 4111111111111111
  handykit validate card "5555 5555 5555 4444"`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteValidateCardCommand(cmd.Context(), args[0])
		},
	}

	validateISBNCmd = &cobra.Command{
		Use:   "isbn {code}",
		Short: "Validate an ISBN",
		Long: `Validate an ISBN-10 or ISBN-13 and report which form it is.

Examples:
  handykit validate isbn 0-306-40615-2
  handykit validate isbn 978-3-16-148410-0`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteValidateISBNCommand(cmd.Context(), args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	validateCmd.AddCommand(validateCardCmd)
	validateCmd.AddCommand(validateISBNCmd)

	rootCmd.AddCommand(validateCmd)
}
