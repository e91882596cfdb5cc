// Package diag folds the single global log-verbosity level the
// original implementation reads during diagnostic-print paths into an
// explicit configuration value, per spec.md §9 "Global mutable state".
// Nothing on an algorithmic path reads a diag.Config; its only user is
// cmd/matadump's progress output. DOT export, determinization and
// antichain search take no diag.Config and print no tracing.
package diag

import (
	"io"
	"log"
	"os"
)

// Level is the diagnostic verbosity level.
type Level int

const (
	// Silent disables all diagnostic output.
	Silent Level = iota
	// Info prints high-level progress (states/transitions produced).
	Info
	// Debug enables Debugf output in addition to Info.
	Debug
)

// Config carries the diagnostics destination and verbosity explicitly,
// replacing a process-wide verbosity global.
type Config struct {
	Level  Level
	Out    io.Writer
	logger *log.Logger
}

// Default returns a silent configuration writing to os.Stderr if ever
// raised above Silent.
func Default() Config {
	return Config{Level: Silent, Out: os.Stderr}
}

func (c *Config) ensureLogger() *log.Logger {
	if c.logger == nil {
		out := c.Out
		if out == nil {
			out = os.Stderr
		}
		c.logger = log.New(out, "mata: ", log.LstdFlags)
	}
	return c.logger
}

// Infof logs at Info level, a no-op below that level.
func (c *Config) Infof(format string, args ...any) {
	if c.Level >= Info {
		c.ensureLogger().Printf(format, args...)
	}
}

// Debugf logs at Debug level, a no-op below that level.
func (c *Config) Debugf(format string, args ...any) {
	if c.Level >= Debug {
		c.ensureLogger().Printf(format, args...)
	}
}
