package layouts

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HTMXScript is loaded by every page so tab triggers can swap fragments.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Meta describes the document shell around a page body.
type Meta struct {
	Title       string
	SiteName    string
	Description string
	// Canonical is the absolute URL of the page, omitted when empty.
	Canonical  string
	Stylesheet string
	FontSans   string
	FontMono   string
}

// Base is the single root layout: html/head/body around body. Fonts are
// exposed as the --font-sans and --font-mono custom properties consumed by
// the global stylesheet.
func Base(meta Meta, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Class("h-full"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(meta.Title, meta.SiteName))),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				g.If(meta.Canonical != "", h.Link(h.Rel("canonical"), h.Href(meta.Canonical))),
				g.If(meta.Stylesheet != "", h.Link(h.Rel("stylesheet"), h.Href(meta.Stylesheet))),
				fontVars(meta.FontSans, meta.FontMono),
				h.Script(h.Src(HTMXScript), h.Defer()),
			),
			h.Body(
				h.Class("min-h-full antialiased"),
				body,
			),
		),
	)
}

// fontVars renders the :root font custom properties. Names pass through
// fontToken first, so the raw CSS cannot break out of the quoted string.
func fontVars(sans, mono string) g.Node {
	if sans == "" && mono == "" {
		return nil
	}

	var css strings.Builder
	css.WriteString(":root{")
	if sans != "" {
		css.WriteString(`--font-sans:"` + fontToken(sans) + `",ui-sans-serif,system-ui,sans-serif;`)
	}
	if mono != "" {
		css.WriteString(`--font-mono:"` + fontToken(mono) + `",ui-monospace,monospace;`)
	}
	css.WriteString("}")

	return h.StyleEl(g.Raw(css.String()))
}
