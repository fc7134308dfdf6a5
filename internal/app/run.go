package app

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/vk/dungeon/internal/ctxlog"
)

// Run hands control to the configured module and returns the exit code its
// entry point produced. The error is non-nil only when the host could not
// invoke the module at all.
func (a *App) Run(ctx context.Context, appConfig *Config) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	reg, err := a.registry.Lookup(appConfig.ModuleName)
	if err != nil {
		return 0, fmt.Errorf("failed to load module: %w", err)
	}
	desc := reg.Descriptor

	if appConfig.VersionConstraint != "" {
		constraint, err := semver.NewConstraint(appConfig.VersionConstraint)
		if err != nil {
			return 0, fmt.Errorf("invalid version constraint %q: %w", appConfig.VersionConstraint, err)
		}
		v := desc.SemVer()
		if v == nil {
			return 0, fmt.Errorf("module '%s' has no version; required %s", desc.Name, appConfig.VersionConstraint)
		}
		if !constraint.Check(v) {
			return 0, fmt.Errorf("module '%s' version %s does not satisfy %s", desc.Name, desc.Version, appConfig.VersionConstraint)
		}
	}

	logger.Info("Module loaded.",
		"name", desc.Name,
		"version", desc.Version,
		"vendor", desc.Vendor,
		"license", desc.License,
		"description", desc.Description,
	)

	logger.Debug("Invoking module entry.", "filename", appConfig.Filename, "args", appConfig.Args)
	code := reg.Entry(appConfig.Filename, appConfig.Args)

	if code != 0 {
		logger.Warn("Module exited with non-zero status.", "name", desc.Name, "exit_code", code)
	} else {
		logger.Debug("Module exited.", "name", desc.Name, "exit_code", code)
	}
	return code, nil
}
