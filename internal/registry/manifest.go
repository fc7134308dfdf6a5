// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Manifest, the HCL-side description of a module.
//
// A module is described twice: once in Go, through the Descriptor it passes
// to Register, and once in a `module` block that ships next to its code. The
// Go side is what the host trusts at runtime; the manifest is what operators
// read and what packaging tools index. ValidateRegistry keeps the two from
// drifting apart.
package registry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/dungeon/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Manifest is a module description decoded from an HCL file.
type Manifest struct {
	Descriptor Descriptor
	FilePath   string
}

// manifestRootSchema defines the top-level structure of the file, expecting one or more 'module' blocks.
type manifestRootSchema struct {
	Modules []*hclModule `hcl:"module,block"`
}

// hclModule represents a single 'module' block in the HCL file for decoding purposes.
type hclModule struct {
	Name        string `hcl:"name,label"`
	Vendor      string `hcl:"vendor"`
	License     string `hcl:"license"`
	Description string `hcl:"description"`
	Version     string `hcl:"version,optional"`
}

// ManifestEvalContext returns the evaluation context manifests are decoded
// with. It exposes the process environment as the `env` object, so a
// manifest can write `vendor = "${env.VENDOR}"`.
func ManifestEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			vars[pair[0]] = cty.StringVal(pair[1])
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// ParseManifestFile decodes an HCL file that contains one or more 'module' blocks.
func ParseManifestFile(ctx context.Context, hclFile *hcl.File, filePath string, evalCtx *hcl.EvalContext) ([]*Manifest, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing module manifests from file", "file_path", filePath)

	if hclFile == nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		}}
	}

	schema := &manifestRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, evalCtx, schema)
	if diags.HasErrors() {
		return nil, diags
	}

	manifests := make([]*Manifest, 0, len(schema.Modules))
	for _, m := range schema.Modules {
		desc := Descriptor{
			Name:        m.Name,
			Vendor:      m.Vendor,
			License:     m.License,
			Description: m.Description,
			Version:     m.Version,
		}
		if err := desc.Validate(); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid module manifest",
				Detail:   fmt.Sprintf("%s: %v", filePath, err),
			})
			continue
		}
		manifests = append(manifests, &Manifest{
			Descriptor: desc,
			FilePath:   filePath,
		})
	}

	if diags.HasErrors() {
		return nil, diags
	}

	logger.Debug("Successfully parsed module manifests", "count", len(manifests))
	return manifests, diags
}
