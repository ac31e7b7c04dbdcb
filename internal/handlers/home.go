package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/dashboard"
	"github.com/nfrund/asidash/internal/metrics"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/nfrund/asidash/internal/view"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	store    *content.Store
	renderer rendering.Renderer
	metrics  *metrics.Metrics
	cfg      config.Provider
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *content.Store, renderer rendering.Renderer, m *metrics.Metrics, cfg config.Provider) *HomeHandler {
	return &HomeHandler{
		store:    store,
		renderer: renderer,
		metrics:  m,
		cfg:      cfg,
	}
}

// HomeGet renders the landing page from the current content snapshot.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	snapshot := h.store.Snapshot()

	page := view.Document(h.cfg, snapshot.Site, snapshot.Site.Title, "/", dashboard.Page(snapshot))
	if err := h.renderer.RenderPage(c, http.StatusOK, page); err != nil {
		return err
	}

	h.metrics.PageRenders.WithLabelValues("home").Inc()
	return nil
}
