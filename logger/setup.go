package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Setup configures the process-wide default logger. Level is one of
// debug/info/warn/error. When file is non-empty the handler appends to
// it instead of writing to stderr; the terminal front-end relies on
// this because bubbletea owns the terminal while it runs.
func Setup(level string, file string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unknown log level '%s': %w", level, err)
	}

	out := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", file, err)
		}
		out = f
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(l)
	return l, nil
}
