package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options selects the handler built by New.
type Options struct {
	Level   string // debug|info|warn|error
	Format  string // text|json
	Discard bool
}

// New builds a slog logger writing to w. Discard drops every record, which is
// what the test environment uses to keep output quiet.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	if opts.Discard {
		return slog.New(slog.DiscardHandler), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parsing log level: %w", err)
	}

	return level, nil
}
