package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/handlers"
	"github.com/nfrund/asidash/internal/metrics"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeGet(t *testing.T) {
	e := echo.New()
	m := metrics.New()
	store := content.NewStore(content.Default())
	h := handlers.NewHomeHandler(store, rendering.NewUniversalRenderer(), m, config.FromEnv())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, h.HomeGet(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>Adam Smith International Dashboard</title>")
	assert.Contains(t, body, "Hello, Jalpa!")
	assert.Contains(t, body, "🎉 Onboarding v2 is now live!")
	assert.Equal(t, 5, strings.Count(body, "data-quick-link="))
	assert.Equal(t, 5, strings.Count(body, "data-aihub-item="))
	assert.Equal(t, 3, strings.Count(body, "data-help-item="))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("home")))
}

func TestHomeGet_ServesLatestSnapshot(t *testing.T) {
	e := echo.New()
	c := content.Default()
	c.User.FirstName = "Grace"
	c.Alerts = nil
	h := handlers.NewHomeHandler(content.NewStore(c), rendering.NewUniversalRenderer(), metrics.New(), config.FromEnv())

	rec := httptest.NewRecorder()
	require.NoError(t, h.HomeGet(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.Contains(t, rec.Body.String(), "Hello, Grace!")
	assert.NotContains(t, rec.Body.String(), `data-section="alerts"`)
}

func TestHomeGet_CanonicalLinkFromBaseURL(t *testing.T) {
	e := echo.New()
	cfg := config.FromEnv()
	cfg.AppBaseURL = "https://dash.example.com/"
	h := handlers.NewHomeHandler(content.NewStore(content.Default()), rendering.NewUniversalRenderer(), metrics.New(), cfg)

	rec := httptest.NewRecorder()
	require.NoError(t, h.HomeGet(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.Contains(t, rec.Body.String(), `<link rel="canonical" href="https://dash.example.com/">`)
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, handlers.HealthGet(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
