package aihub

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/content"
	"github.com/nfrund/asidash/internal/metrics"
	"github.com/nfrund/asidash/internal/module"
	"github.com/nfrund/asidash/internal/rendering"
	"github.com/samber/do/v2"
)

// Module mounts the AI Hub catalogue under /aihub.
type Module struct {
	module.BaseModule
	handler *Handler
}

// New creates the catalogue module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "aihub"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return fmt.Errorf("aihub: resolve content store: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return fmt.Errorf("aihub: resolve renderer: %w", err)
	}
	counters, err := do.Invoke[*metrics.Metrics](i)
	if err != nil {
		return fmt.Errorf("aihub: resolve metrics: %w", err)
	}
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return fmt.Errorf("aihub: resolve config: %w", err)
	}

	m.handler = NewHandler(store, renderer, counters, cfg, "/"+m.Name())
	group.GET("", m.handler.Get)
	group.GET("/tabs", m.handler.TabsGet)
	return nil
}
