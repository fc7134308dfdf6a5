// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Descriptor, the identity card of a loadable module.
//
// A Descriptor is deliberately inert: it is plain data created once by the
// module's Register method and never mutated afterwards. The host can list,
// compare and print descriptors without executing a single line of the
// module's own logic.
package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Descriptor is the static metadata a module publishes to the host.
type Descriptor struct {
	Name        string
	Vendor      string
	License     string
	Description string
	// Version is optional. When set it must be a semantic version.
	Version string
}

// Validate reports the first field that breaks the descriptor contract.
func (d Descriptor) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"vendor", d.Vendor},
		{"license", d.License},
		{"description", d.Description},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("module descriptor %q: %s must not be empty", d.Name, f.name)
		}
	}

	if d.Version != "" {
		if _, err := semver.NewVersion(d.Version); err != nil {
			return fmt.Errorf("module descriptor %q: invalid version %q: %w", d.Name, d.Version, err)
		}
	}
	return nil
}

// SemVer returns the parsed version, or nil when the module has none.
func (d Descriptor) SemVer() *semver.Version {
	if d.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(d.Version)
	if err != nil {
		return nil
	}
	return v
}

// String renders the descriptor on one line for logs and listings.
func (d Descriptor) String() string {
	if d.Version == "" {
		return fmt.Sprintf("%s: %s (%s)", d.Name, d.Description, d.Vendor)
	}
	return fmt.Sprintf("%s %s: %s (%s)", d.Name, d.Version, d.Description, d.Vendor)
}
