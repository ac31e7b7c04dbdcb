package cmd

import (
	"fmt"

	"github.com/nfrund/asidash/internal/content"
	"github.com/spf13/cobra"
)

// contentCmd represents the content command
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect dashboard content files",
	Long: `The content command checks the JSON files served through CONTENT_PATH.

Examples:
  # Validate a content file
  asidash-cli content validate ./content/site.json`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a content file",
	Long: `Parse and validate a content file the same way the server does on
startup and on hot reload. Unknown fields, missing required values, empty
descriptions and duplicate ids within a list are all reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := content.Load(appFs, args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s is invalid\n", args[0])
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ %s is valid\n", args[0])
		fmt.Fprintf(out, "   Title: %s\n", c.Site.Title)
		fmt.Fprintf(out, "   Quick links: %d\n", len(c.QuickLinks))
		fmt.Fprintf(out, "   Alerts: %d\n", len(c.Alerts))
		fmt.Fprintf(out, "   AI Hub items: %d\n", len(c.AIHub))
		fmt.Fprintf(out, "   Help items: %d\n", len(c.Help))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	rootCmd.AddCommand(contentCmd)
}
