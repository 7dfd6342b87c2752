package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// ErrBadLevel indicates a level other than debug, info, warn or error.
	ErrBadLevel = errors.New("logging: level must be debug, info, warn or error")
	// ErrBadFormat indicates a format other than text or json.
	ErrBadFormat = errors.New("logging: format must be text or json")
)

// Config selects the verbosity, encoding and destination of a logger.
type Config struct {
	Level  string // debug | info | warn | error; empty means info
	Format string // text | json; empty means text
	File   string // rotated log file; empty writes to the fallback writer

	MaxSizeMB  int // rotation threshold, default 32
	MaxBackups int // rotated files kept, default 1
}

// DefaultConfig returns info-level text output without a file.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// Validate checks Level and Format.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Format)
	}
}

// New builds a logger for c. Output goes to fallback unless c.File is set.
// The returned close function releases the rotated file and is safe to call
// when no file was opened.
func New(c Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := ParseLevel(c.Level)

	w := fallback
	closeFn := func() error { return nil }
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    32, // MB
			MaxBackups: 1,
		}
		if c.MaxSizeMB > 0 {
			lj.MaxSize = c.MaxSizeMB
		}
		if c.MaxBackups > 0 {
			lj.MaxBackups = c.MaxBackups
		}
		w, closeFn = lj, lj.Close
	}
	if w == nil {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.ToLower(c.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h), closeFn, nil
}
