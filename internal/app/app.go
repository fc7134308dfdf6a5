package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dungeon/internal/ctxlog"
	"github.com/vk/dungeon/internal/registry"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the host. It returns a fully initialized App
// instance with its own isolated logger and a sealed registry.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with Go modules.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if appConfig.ModulesPath != "" {
		if err := reg.LoadManifests(ctx, appConfig.ModulesPath); err != nil {
			// A failure to load manifests is a fatal startup error.
			panic(fmt.Errorf("failed to load module manifests: %w", err))
		}
	}

	// Validate the integrity of the registry.
	if err := reg.ValidateRegistry(ctx); err != nil {
		// This is a programmer error (mismatch between code and manifest), so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	reg.Seal()

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Modules lists the descriptors of every loaded module.
func (a *App) Modules() []registry.Descriptor {
	return a.registry.Descriptors()
}

// Close unloads every module. The App must not be run afterwards.
func (a *App) Close() {
	a.logger.Debug("Unloading modules.", "count", len(a.registry.Descriptors()))
	a.registry.Clear()
}
