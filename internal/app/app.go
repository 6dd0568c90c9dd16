package app

import (
	"io"
	"log/slog"

	"github.com/vk/flowscript/internal/template"
)

// App wires the template registry, the document loader, and the compiler.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *template.Registry
}

// New is the constructor for the main application. Scripts are written to
// outW; logs go to logW so that piping the compiled output stays clean.
func New(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := template.New()
	logger.Debug("Node templates registered.", "kinds", len(reg.Kinds()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's template registry. This is primarily
// for testing.
func (a *App) Registry() *template.Registry {
	return a.registry
}
