package cmd

import (
	"context"
	"fmt"

	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/dashboard"
	"github.com/nfrund/asidash/internal/modules/aihub"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/nfrund/asidash/internal/view"
	"github.com/nfrund/asidash/internal/view/tabs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	renderContentPath string
	renderOutPath     string
	renderPage        string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a page to static HTML",
	Long: `Render the landing page (or the AI Hub catalogue) exactly as the server
would, and write it to a file or stdout. Without --content the built-in
content is used.

Examples:
  asidash-cli render --out index.html
  asidash-cli render --content ./content/site.json --page aihub`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := content.Default()
		if renderContentPath != "" {
			loaded, err := content.Load(appFs, renderContentPath)
			if err != nil {
				return err
			}
			c = loaded
		}

		cfg := config.FromEnv()
		var doc any
		switch renderPage {
		case "home":
			doc = view.Document(cfg, c.Site, c.Site.Title, "/", dashboard.Page(c))
		case "aihub":
			tb := tabs.New(aihub.AllTab, tabs.WithID(aihub.CatalogueID))
			doc = view.Document(cfg, c.Site, "AI Hub", "/aihub", aihub.Page(c, tb))
		default:
			return fmt.Errorf("unknown page %q (want home or aihub)", renderPage)
		}

		html, err := rendering.NewUniversalRenderer().RenderComponent(context.Background(), doc)
		if err != nil {
			return err
		}

		if renderOutPath == "" {
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}
		if err := afero.WriteFile(appFs, renderOutPath, html, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", renderOutPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", renderOutPath, len(html))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderContentPath, "content", "", "content file to render instead of the built-in content")
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderPage, "page", "home", "page to render: home or aihub")
	rootCmd.AddCommand(renderCmd)
}
