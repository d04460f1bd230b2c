package gateway

import "github.com/navrail/navrail/internal/logging"

// Option configures a Gateway.
type Option func(*config)

type config struct {
	logger *logging.Logger
}

// WithLogger sets the logger for the gateway.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
