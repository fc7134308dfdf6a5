package app

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModuleName        string
	ModulesPath       string // directory with .hcl module manifests
	VersionConstraint string // e.g. ">= 1.0, < 2"
	ListModules       bool

	LogFormat string
	LogLevel  string

	// Filename and Args are handed to the module entry untouched.
	Filename string
	Args     []string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModuleName == "" {
		return nil, errors.New("ModuleName is a required configuration field and cannot be empty")
	}

	if cfg.VersionConstraint != "" {
		if _, err := semver.NewConstraint(cfg.VersionConstraint); err != nil {
			return nil, fmt.Errorf("invalid version constraint %q: %w", cfg.VersionConstraint, err)
		}
	}

	return &cfg, nil
}
