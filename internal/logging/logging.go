// Package logging builds the charmbracelet/log logger used across todolist.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level string // debug, info, warn, error, off
	File  string // append to this file when set
	// Fallback receives output when File is empty. Nil discards.
	Fallback io.Writer
}

// New returns a logger and a close func for any file it opened.
func New(opts Options) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if strings.EqualFold(opts.Level, "off") || opts.Level == "" {
		return log.New(io.Discard), noop, nil
	}
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := noop
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	case opts.Fallback != nil:
		w = opts.Fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.File != "",
		Prefix:          "todolist",
	})
	return logger, closeFn, nil
}
