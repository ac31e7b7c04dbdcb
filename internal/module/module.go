package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// Module is a self-contained feature mounted under its own route group.
type Module interface {
	// Name returns a unique identifier, also used as the route prefix.
	Name() string

	// Register provides the module's services to the injector. It runs for
	// every module before any Boot.
	Register(i do.Injector) error

	// Boot resolves dependencies and mounts routes on router.
	Boot(ctx context.Context, router *echo.Group, i do.Injector) error

	// Shutdown releases resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register and Shutdown implementations.
type BaseModule struct{}

func (m *BaseModule) Register(i do.Injector) error       { return nil }
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
