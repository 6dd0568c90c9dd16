package app

import (
	"context"
	"fmt"

	"github.com/vk/flowscript/internal/compiler"
	"github.com/vk/flowscript/internal/ctxlog"
	"github.com/vk/flowscript/internal/hclgraph"
)

// Run loads the graph document, compiles it, and writes the script.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	loader := hclgraph.NewLoader(a.registry)
	cat, mainID, err := loader.Load(ctx, cfg.DocumentPath)
	if err != nil {
		return fmt.Errorf("failed to load graph document: %w", err)
	}
	a.logger.Debug("Catalog loaded.", "functions", len(cat.Functions()))

	comp := compiler.New(a.registry, compiler.Options{
		AllowRecursiveFunctions: cfg.AllowRecursiveFunctions,
	})
	script, err := comp.Compile(ctx, cat, mainID)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	a.logger.Debug("Compilation succeeded.", "bytes", len(script))

	if _, err := fmt.Fprintln(a.outW, script); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
