package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DocumentPath string // .hcl graph document file or directory

	LogFormat string
	LogLevel  string

	// AllowRecursiveFunctions forwards to the compiler's recursion
	// policy. Off by default, matching the editor's own restriction.
	AllowRecursiveFunctions bool
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
