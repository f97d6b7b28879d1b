package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewLogger returns a text logger writing to cfg.LogFile, or a discarding
// logger when no file is configured. The terminal belongs to the TUI, so
// logs never go to stdout. Every record carries a per-process session id.
// The returned closer must be called on shutdown.
func NewLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("session", uuid.New().String())
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
