package aihub

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/metrics"
	"github.com/nfrund/asidash/internal/middleware"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/nfrund/asidash/internal/view"
	"github.com/nfrund/asidash/internal/view/tabs"
)

// Handler serves the catalogue page and its tab fragments.
type Handler struct {
	store        *content.Store
	renderer     rendering.Renderer
	metrics      *metrics.Metrics
	cfg          config.Provider
	basePath     string
	tabsEndpoint string
}

// NewHandler creates a Handler for the catalogue mounted at basePath. Tab
// triggers call basePath + "/tabs".
func NewHandler(store *content.Store, renderer rendering.Renderer, m *metrics.Metrics, cfg config.Provider, basePath string) *Handler {
	return &Handler{
		store:        store,
		renderer:     renderer,
		metrics:      m,
		cfg:          cfg,
		basePath:     basePath,
		tabsEndpoint: basePath + "/tabs",
	}
}

// selection builds a fresh tab group for this request and applies the
// requested tab. Unknown values fall back to the default.
func (h *Handler) selection(c echo.Context, snapshot *content.Content) *tabs.Tabs {
	tb := tabs.New(AllTab, tabs.WithID(CatalogueID), tabs.WithEndpoint(h.tabsEndpoint))

	requested := c.QueryParam(tabs.QueryParam)
	if requested == "" {
		return tb
	}
	value, ok := resolveTab(snapshot, requested)
	if !ok {
		middleware.FromContext(c.Request().Context()).Warn("unknown catalogue tab requested, using default", "tab", requested)
		return tb
	}
	tb.Select(value)
	return tb
}

// Get renders the full catalogue page. A ?tab= query preselects a tab.
// htmx requests (boosted links, history restores) get the tab subtree only.
func (h *Handler) Get(c echo.Context) error {
	if rendering.IsHTMXRequest(c.Request()) {
		return h.TabsGet(c)
	}

	snapshot := h.store.Snapshot()
	tb := h.selection(c, snapshot)

	page := view.Document(h.cfg, snapshot.Site, "AI Hub", h.basePath, Page(snapshot, tb))
	if err := h.renderer.RenderPage(c, http.StatusOK, page); err != nil {
		return err
	}

	h.metrics.PageRenders.WithLabelValues("aihub").Inc()
	return nil
}

// TabsGet renders only the tab subtree, for htmx trigger requests.
func (h *Handler) TabsGet(c echo.Context) error {
	snapshot := h.store.Snapshot()
	tb := h.selection(c, snapshot)

	if err := h.renderer.RenderFragment(c, http.StatusOK, Catalogue(snapshot, tb)); err != nil {
		return err
	}

	h.metrics.TabSelections.WithLabelValues(tb.Active()).Inc()
	h.metrics.PageRenders.WithLabelValues("aihub_tabs").Inc()
	return nil
}
