package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/ctxlog"
	"github.com/vk/simgridgo/internal/simulator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	catalog   *simulator.Catalog
	workspace *config.Workspace
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a loaded
// manifest workspace.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, catalog *simulator.Catalog) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic workspace first.
	workspace, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified workspace.",
		"count", len(workspace.Manifests))

	return &App{
		outW:      outW,
		logger:    logger,
		catalog:   catalog,
		workspace: workspace,
	}
}

// Workspace returns the loaded manifest workspace. This is primarily for testing.
func (a *App) Workspace() *config.Workspace {
	return a.workspace
}
