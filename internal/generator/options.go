package generator

import "log/slog"

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for REDUCE, SKIP and CONFLICT traces.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithoutShortcuts skips preloading the shortcut table into the root cache.
func WithoutShortcuts() Option {
	return func(g *Generator) {
		g.skipShortcuts = true
	}
}
