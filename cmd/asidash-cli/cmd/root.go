package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem every command reads and writes through.
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "asidash-cli",
	Short: "ASI dashboard CLI tool",
	Long: `asidash-cli works with dashboard content files outside the server.

Available commands:
  content validate   Check a content file before deploying it
  render             Write a page as static HTML
  version            Print the CLI version

Use "asidash-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
