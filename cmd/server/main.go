package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/asidash/internal/app"
	"github.com/nfrund/asidash/internal/config"
	"github.com/nfrund/asidash/internal/logging"
	"github.com/nfrund/asidash/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	s, err := server.New(server.Dependencies{
		Config:  cfg,
		Modules: app.NewModules(),
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.RegisterRoutes(context.Background()); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
