package dispatch

import (
	"github.com/navrail/navrail/internal/logging"
	"github.com/navrail/navrail/internal/screen"
)

// Option configures a Dispatcher.
type Option func(*config)

type config struct {
	logger *logging.Logger
}

// WithLogger sets the logger for the dispatcher.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// MountOption configures a single mount.
type MountOption func(*Mount)

// WithHandler attaches an instance-level press handler to the mount. It
// takes precedence over the screen's default handler while the mount is
// live.
func WithHandler(h screen.Handler) MountOption {
	return func(m *Mount) {
		m.handler = h
	}
}
