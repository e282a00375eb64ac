package umpire

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a Session during creation.
type Option func(*sessionConfig)

type sessionConfig struct {
	clock  quartz.Clock
	logger *log.Logger
	id     string
}

// WithClock sets the clock used to timestamp entries. Default: the real clock.
func WithClock(clock quartz.Clock) Option {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Default: discard.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithID overrides the generated session id
func WithID(id string) Option {
	return func(c *sessionConfig) {
		c.id = id
	}
}

func defaultConfig() *sessionConfig {
	return &sessionConfig{
		clock:  quartz.NewReal(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}
