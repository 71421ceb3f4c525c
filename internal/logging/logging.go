// Package logging builds the structured logger shared by the hosts.
//
// The terminal belongs to the game screen while it runs, so logs go to a
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is the default logger prefix.
const Prefix = "snake"

// Options configures New.
type Options struct {
	Path   string // log file, appended to; empty discards output
	Level  string // debug, info, warn, error; empty means info
	Prefix string
}

// New creates a logger for opts. The returned closer releases the log file
// and must be called once the logger is no longer used.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = Prefix
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
