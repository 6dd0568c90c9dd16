package hclgraph

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/ctxlog"
	"github.com/vk/flowscript/internal/fsutil"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
)

// Loader parses .hcl graph documents against one template registry.
type Loader struct {
	reg *template.Registry
}

// NewLoader creates a loader.
func NewLoader(reg *template.Registry) *Loader {
	return &Loader{reg: reg}
}

// Load reads every .hcl file under the given paths (files or directories),
// merges their function definitions, and translates them into a catalog.
// It returns the catalog and the id of the designated Main function.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, graph.FunctionID, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %q: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, 0, fmt.Errorf("no .hcl document files found in %v", paths)
	}
	logger.Debug("Document files discovered.", "count", len(files))

	parser := hclparse.NewParser()
	var blocks []*functionBlock
	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, 0, fmt.Errorf("failed to parse %q: %w", path, diags)
		}
		schema := &documentSchema{}
		if diags := gohcl.DecodeBody(file.Body, nil, schema); diags.HasErrors() {
			return nil, 0, fmt.Errorf("failed to decode %q: %w", path, diags)
		}
		blocks = append(blocks, schema.Functions...)
	}
	logger.Debug("Function blocks decoded.", "count", len(blocks))

	return l.translate(ctx, blocks)
}

// LoadBody translates an already-parsed HCL body, for callers that hold
// document text rather than files.
func (l *Loader) LoadBody(ctx context.Context, body hcl.Body) (*catalog.Catalog, graph.FunctionID, error) {
	schema := &documentSchema{}
	if diags := gohcl.DecodeBody(body, nil, schema); diags.HasErrors() {
		return nil, 0, fmt.Errorf("failed to decode document: %w", diags)
	}
	return l.translate(ctx, schema.Functions)
}
