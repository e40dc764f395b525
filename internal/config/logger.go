package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a logger writing to w: JSON lines in production for aggregators, text otherwise.
// If LogLevel does not parse, the logger runs at info and the parse error is returned alongside it.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts)), err
	}
	return slog.New(slog.NewTextHandler(w, opts)), err
}
