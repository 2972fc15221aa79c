package cmd

import (
	"github.com/spf13/cobra"

	"github.com/handykit/handykit/internal/app"
)

var localeCmd = &cobra.Command{
	Use:   "locale {tag}",
	Short: "Persist the default locale",
	Long: `Set the default locale used by localized formatting commands and save it
to the configuration file. The file's key order and formatting are preserved;
a missing file is created.

Examples:
  handykit locale ru
  handykit locale de`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteLocaleCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(localeCmd)
}
