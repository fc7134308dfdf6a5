package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/vk/dungeon/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go code.
// Every manifest must belong to a registered module and agree with its
// descriptor field by field. All mismatches are reported together.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []string
	logger := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(r.manifests))
	for name := range r.manifests {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		manifest := r.manifests[name]
		reg, ok := r.modules[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("module '%s': manifest %s declares a module that is not registered in Go", name, manifest.FilePath))
			continue
		}

		got, want := reg.Descriptor, manifest.Descriptor
		pairs := []struct {
			field    string
			goValue  string
			hclValue string
		}{
			{"vendor", got.Vendor, want.Vendor},
			{"license", got.License, want.License},
			{"description", got.Description, want.Description},
		}
		for _, p := range pairs {
			if p.goValue != p.hclValue {
				errs = append(errs, fmt.Sprintf("module '%s': %s mismatch. Manifest declares %q but Go descriptor provides %q", name, p.field, p.hclValue, p.goValue))
			}
		}

		if !sameVersion(got.Version, want.Version) {
			errs = append(errs, fmt.Sprintf("module '%s': version mismatch. Manifest declares %q but Go descriptor provides %q", name, want.Version, got.Version))
		}
	}

	for name := range r.modules {
		if _, ok := r.manifests[name]; !ok {
			logger.Warn("Module is registered without a manifest; skipping parity check.", "module", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// sameVersion compares two optional versions semantically, so "1.0" and
// "1.0.0" agree.
func sameVersion(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}
