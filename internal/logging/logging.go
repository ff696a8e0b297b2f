// Package logging builds the arcade's structured logger.
//
// The terminal belongs to the game while it runs, so logs go to a file
// or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	Path   string // Log file; empty discards output
	Level  string // debug, info, warn, error
	Prefix string // Defaults to "arcade"
}

// New creates a logger. The returned close function releases the log file
// and is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "arcade"
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// NewRunID returns an identifier for one game session.
func NewRunID() string {
	return uuid.NewString()
}

// WithRun tags every record of logger with a run ID.
func WithRun(logger *log.Logger, runID string) *log.Logger {
	return logger.With("run", runID)
}
