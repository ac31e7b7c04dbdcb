package view

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// PageMeta builds the layout metadata for the page at path. The canonical
// link is only set when APP_BASE_URL is configured.
func PageMeta(cfg config.Provider, site content.Site, title, path string) layouts.Meta {
	meta := layouts.Meta{
		Title:       title,
		SiteName:    site.Title,
		Description: site.Description,
		Stylesheet:  cfg.GetStylesheetPath(),
		FontSans:    cfg.GetFontSans(),
		FontMono:    cfg.GetFontMono(),
	}
	if base := cfg.GetAppBaseURL(); base != "" {
		meta.Canonical = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	}
	return meta
}

// Document wraps a gomponents body in the root layout.
func Document(cfg config.Provider, site content.Site, title, path string, body g.Node) templ.Component {
	return AdaptGomponentToTempl(layouts.Base(PageMeta(cfg, site, title, path), body))
}
