// Package logging builds the charmbracelet loggers used across kaboom.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ParseLevel converts a --log-level value. Empty means DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q (debug, info, warn, error)", name)
	}
	return lvl, nil
}

// New returns a timestamped logger writing to stderr.
func New(prefix, level string) (*log.Logger, error) {
	return NewWriter(os.Stderr, prefix, level)
}

// NewWriter returns a timestamped logger writing to w.
func NewWriter(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
