package server

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/metrics"
	"github.com/nfrund/asidash/internal/middleware"
	"github.com/nfrund/asidash/internal/module"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/nfrund/asidash/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Dependencies are the inputs needed to build a Server.
type Dependencies struct {
	Config config.Provider

	// Fs is where CONTENT_PATH is read from. Defaults to the OS filesystem.
	Fs afero.Fs

	Modules []module.Module
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Injector do.Injector
	Store    *content.Store
	Metrics  *metrics.Metrics

	modules []module.Module
}

// New creates a new Server instance. Shared services are provided to the
// injector so modules can resolve them during Boot.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	m := metrics.New()
	store, err := openContentStore(deps.Fs, deps.Config.GetContentPath())
	if err != nil {
		return nil, err
	}
	store.OnReload(m.ObserveReload)

	renderer := rendering.NewUniversalRenderer()

	injector := do.New()
	do.ProvideValue[config.Provider](injector, deps.Config)
	do.ProvideValue(injector, store)
	do.ProvideValue(injector, m)
	do.ProvideValue[rendering.Renderer](injector, renderer)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(echomw.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Subsystem:  "http",
		Registerer: m.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// Static assets are embedded so the binary has no runtime file dependencies.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Injector: injector,
		Store:    store,
		Metrics:  m,
		modules:  deps.Modules,
	}, nil
}

// openContentStore serves the built-in content unless a content file is
// configured, in which case that file must load and validate.
func openContentStore(fs afero.Fs, path string) (*content.Store, error) {
	if path == "" {
		slog.Debug("No CONTENT_PATH set, serving built-in content")
		return content.NewStore(content.Default()), nil
	}

	store, err := content.OpenStore(fs, path)
	if err != nil {
		return nil, fmt.Errorf("server: open content %s: %w", path, err)
	}
	slog.Info("Loaded content file", "path", path)
	return store, nil
}
