package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/dungeon/internal/ctxlog"
	"github.com/vk/dungeon/internal/fsutil"
)

// LoadManifests reads every .hcl file below modulesPath and records the
// module manifests they declare.
func (r *Registry) LoadManifests(ctx context.Context, modulesPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading manifests from modules path...", "path", modulesPath)

	filePaths, err := fsutil.FindFilesByExtension(modulesPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk modules directory", "path", modulesPath, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl module manifests found in path", "path", modulesPath)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()
	evalCtx := ManifestEvalContext()

	var loaded []*Manifest
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		manifests, diags := ParseManifestFile(ctx, hclFile, filePath, evalCtx)
		if diags.HasErrors() {
			return fmt.Errorf("failed to process module manifest in %s: %w", filePath, diags)
		}
		loaded = append(loaded, manifests...)
		logger.Debug("Successfully loaded manifests from HCL file", "file", filePath)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("cannot load manifests from %s: registry is sealed", modulesPath)
	}
	for _, m := range loaded {
		if prev, exists := r.manifests[m.Descriptor.Name]; exists {
			return fmt.Errorf("module '%s' declared twice: %s and %s", m.Descriptor.Name, prev.FilePath, m.FilePath)
		}
		r.manifests[m.Descriptor.Name] = m
	}

	logger.Info("Registry loaded successfully.", "manifests_loaded", len(loaded))
	return nil
}
