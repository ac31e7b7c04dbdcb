// Package dashboard assembles the landing page from the content snapshot.
// Every function here is a pure mapping from content to markup.
package dashboard

import (
	"github.com/nfrund/asidash/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page renders the landing page body. Sections always appear in the same
// order: banner, alert bar, hero, AI hub, help and support.
func Page(c *content.Content) g.Node {
	return h.Main(
		h.Class("font-sans text-gray-900"),
		TopBanner(c.Site),
		AlertBar(c.Alerts),
		HeroSection(c.User, c.Hero, c.QuickLinks),
		AIHubSection(c.AIHub),
		HelpSupportSection(c.Help),
	)
}
