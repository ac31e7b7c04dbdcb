package dashboard

import (
	"strconv"

	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/view/ui"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Section markers, in page order.
const (
	SectionBanner  = "banner"
	SectionAlerts  = "alerts"
	SectionHero    = "hero"
	SectionAIHub   = "aihub"
	SectionSupport = "support"
)

func sectionAttr(name string) g.Node {
	return g.Attr("data-section", name)
}

// TopBanner renders the page header with the site title.
func TopBanner(site content.Site) g.Node {
	return h.Header(
		sectionAttr(SectionBanner),
		h.Class("bg-white border-b py-6 shadow-sm"),
		h.H1(
			h.Class("text-center text-4xl font-extrabold text-gray-900"),
			g.Text(site.Title),
		),
	)
}

// AlertBar shows the first alert only. An empty list renders nothing.
func AlertBar(alerts []content.Alert) g.Node {
	if len(alerts) == 0 {
		return g.Group(nil)
	}
	return h.Div(
		sectionAttr(SectionAlerts),
		h.Class("w-full bg-primary-600 text-white text-sm py-2 text-center"),
		g.Text(alerts[0].Message),
	)
}

// HeroSection greets the user and lays out the quick-link tiles.
func HeroSection(user content.User, hero content.Hero, links []content.QuickLink) g.Node {
	return h.Section(
		sectionAttr(SectionHero),
		h.Class("bg-gradient-to-br from-primary-700 via-primary-600 to-fuchsia-700 text-white"),
		h.Div(
			h.Class("container mx-auto px-4 py-24 grid gap-12 lg:grid-cols-2 items-center"),
			h.Div(
				h.Class("space-y-8"),
				h.H2(h.Class("text-3xl font-semibold"), g.Text("Hello, "+user.FirstName+"!")),
				h.P(h.Class("text-lg opacity-90 max-w-prose"), g.Text("What would you like to do today?")),
				h.Div(
					h.Class("grid grid-cols-2 sm:grid-cols-3 lg:grid-cols-5 gap-6 pt-4"),
					g.Map(links, QuickLinkTile),
				),
			),
			g.If(hero.ImageURL != "", h.Div(
				h.Class("hidden lg:block"),
				h.Img(
					h.Class("rounded-3xl shadow-2xl"),
					h.Src(hero.ImageURL),
					h.Alt(hero.ImageAlt),
				),
			)),
		),
	)
}

// QuickLinkTile renders one clickable quick link.
func QuickLinkTile(link content.QuickLink) g.Node {
	return h.A(
		h.Href(link.Href),
		g.Attr("data-quick-link", strconv.Itoa(link.ID)),
		h.Class("flex flex-col items-center gap-2 rounded-xl bg-white/20 p-4 text-center hover:bg-white/30"),
		h.Span(h.Class("text-2xl lg:text-3xl"), g.Text(link.Icon)),
		h.Span(h.Class("text-sm font-medium text-white leading-tight"), g.Text(link.Title)),
	)
}

// AIHubSection renders one card per catalogue item.
func AIHubSection(items []content.AIHubItem) g.Node {
	return ui.Section(
		ui.SectionProps{
			ID:    "aihub",
			Title: "AI Hub",
			Emoji: "🤖",
			Attrs: []g.Node{sectionAttr(SectionAIHub)},
		},
		AIHubGrid(items),
	)
}

// AIHubGrid lays out catalogue cards without the surrounding section.
func AIHubGrid(items []content.AIHubItem) g.Node {
	return h.Div(
		h.Class("grid lg:grid-cols-5 md:grid-cols-3 sm:grid-cols-2 gap-8"),
		g.Map(items, AIHubCard),
	)
}

// AIHubCard renders one catalogue item on its gradient.
func AIHubCard(item content.AIHubItem) g.Node {
	return ui.Card(
		"text-white bg-gradient-to-br "+item.Gradient+" hover:shadow-xl transition-shadow",
		g.Attr("data-aihub-item", strconv.Itoa(item.ID)),
		ui.CardHeader("",
			ui.CardTitle("text-xl font-semibold text-white", g.Text(item.Name)),
		),
		ui.CardContent("",
			Description(item.Description),
			h.Span(
				h.Class("inline-block rounded-full bg-white/20 px-3 py-1 text-xs mt-4 capitalize"),
				g.Text(StatusLabel(item.Status)),
			),
		),
	)
}

// Description wraps plain text in a paragraph and passes rich content
// through untouched.
func Description(d content.Description) g.Node {
	switch d.Kind() {
	case content.KindPlainText:
		return h.P(h.Class("text-sm opacity-90 mb-4"), g.Text(d.Text()))
	case content.KindRichContent:
		return d.Node()
	default:
		return nil
	}
}

// StatusLabel capitalises each word of a status without lowering the rest,
// so "beta" becomes "Beta" and "GA" stays "GA".
func StatusLabel(status string) string {
	return cases.Title(language.English, cases.NoLower).String(status)
}

// HelpSupportSection renders the support menu.
func HelpSupportSection(items []content.HelpItem) g.Node {
	return ui.Section(
		ui.SectionProps{
			ID:         "support",
			Title:      "Help & Support",
			Emoji:      "🛟",
			Background: "bg-gray-50",
			Attrs:      []g.Node{sectionAttr(SectionSupport)},
		},
		h.Div(
			h.Class("grid md:grid-cols-3 gap-8"),
			g.Map(items, helpCard),
		),
	)
}

func helpCard(item content.HelpItem) g.Node {
	return ui.Card(
		"flex flex-col items-center p-8 hover:shadow-lg transition-shadow",
		g.Attr("data-help-item", strconv.Itoa(item.ID)),
		h.Span(h.Class("text-4xl mb-3"), g.Text(item.Icon)),
		h.Span(h.Class("font-medium text-center leading-snug"), g.Text(item.Title)),
	)
}
