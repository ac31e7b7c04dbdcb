package aihub

import (
	"strings"

	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/dashboard"
	"github.com/nfrund/asidash/internal/view/tabs"
	"github.com/nfrund/asidash/internal/view/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AllTab is the default tab showing the whole catalogue.
const AllTab = "all"

// CatalogueID is the DOM id the tab triggers swap.
const CatalogueID = "aihub-catalogue"

// Page renders the standalone catalogue page.
func Page(c *content.Content, tb *tabs.Tabs) g.Node {
	return h.Main(
		h.Class("font-sans text-gray-900"),
		dashboard.TopBanner(c.Site),
		ui.Section(
			ui.SectionProps{ID: "aihub", Title: "AI Hub", Emoji: "🤖"},
			Catalogue(c, tb),
		),
	)
}

// Catalogue renders the status tabs and the card grid of the active tab.
func Catalogue(c *content.Content, tb *tabs.Tabs) g.Node {
	statuses := filterTabs(c.Statuses())

	return tb.Root(
		tabs.List(
			tb.Trigger(AllTab, g.Text("All")),
			g.Map(statuses, func(status string) g.Node {
				return tb.Trigger(status, g.Text(dashboard.StatusLabel(status)))
			}),
		),
		tb.Content(AllTab, "pt-8", dashboard.AIHubGrid(c.AIHub)),
		g.Map(statuses, func(status string) g.Node {
			return tb.Content(status, "pt-8", dashboard.AIHubGrid(itemsWithStatus(c.AIHub, status)))
		}),
	)
}

// filterTabs drops a status that would collide with the "all" tab.
func filterTabs(statuses []string) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if !strings.EqualFold(s, AllTab) {
			out = append(out, s)
		}
	}
	return out
}

func itemsWithStatus(items []content.AIHubItem, status string) []content.AIHubItem {
	var out []content.AIHubItem
	for _, item := range items {
		if strings.EqualFold(item.Status, status) {
			out = append(out, item)
		}
	}
	return out
}

// resolveTab maps a requested value onto the tab it names, ignoring case,
// and reports whether one matched.
func resolveTab(c *content.Content, value string) (string, bool) {
	if strings.EqualFold(value, AllTab) {
		return AllTab, true
	}
	for _, s := range filterTabs(c.Statuses()) {
		if strings.EqualFold(s, value) {
			return s, true
		}
	}
	return "", false
}
