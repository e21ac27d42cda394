// Package core provides the runtime core tier of the token engine.
// Options for configuring Machine instances.
package core

import "log/slog"

// WithLogger configures the Machine with a structured logger. Accepted and
// rejected transitions are logged at debug, unknown names at warn.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithID overrides the machine ID taken from the config, so several instances of
// one definition can be told apart in logs and published firings.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}
