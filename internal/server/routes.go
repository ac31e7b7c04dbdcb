package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/nfrund/asidash/internal/handlers"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/samber/do/v2"
)

// RegisterRoutes mounts the core routes, then registers and boots every
// module under /<name>.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	homeHandler := handlers.NewHomeHandler(
		s.Store,
		do.MustInvoke[rendering.Renderer](s.Injector),
		s.Metrics,
		s.Cfg,
	)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Metrics.Registry,
	}))

	return s.initModules(ctx)
}

func (s *Server) initModules(ctx context.Context) error {
	seen := make(map[string]bool, len(s.modules))
	for _, m := range s.modules {
		if seen[m.Name()] {
			return fmt.Errorf("server: duplicate module name %q", m.Name())
		}
		seen[m.Name()] = true

		if err := m.Register(s.Injector); err != nil {
			return fmt.Errorf("server: register module %s: %w", m.Name(), err)
		}
	}

	for _, m := range s.modules {
		group := s.E.Group("/" + m.Name())
		if err := m.Boot(ctx, group, s.Injector); err != nil {
			return fmt.Errorf("server: boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}
