// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"

	"github.com/katalvlaran/ahp/priority"
)

// Option configures a new State.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	priority []priority.Option
}

// WithLogger routes transition logs to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPriorityOptions forwards opts to every priority.Compute call.
func WithPriorityOptions(opts ...priority.Option) Option {
	return func(c *config) { c.priority = append(c.priority, opts...) }
}
