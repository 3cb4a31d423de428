// Package logger provides the logging facade used across strum.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is the minimal logging surface used by the scanner and generators.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogLevel is a yaml/json friendly wrapper around slog.Level.
type LogLevel struct {
	Level slog.Level
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LogLevel) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	lvl, err := ParseLevel(raw)
	if err != nil {
		return err
	}
	l.Level = lvl
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l LogLevel) MarshalYAML() (any, error) {
	return strings.ToLower(l.Level.String()), nil
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("logger: unknown log level %q", name)
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

// NewDefaultLogger returns a text logger writing to stderr at info level.
func NewDefaultLogger() Logger {
	return NewLogger(slog.LevelInfo)
}

// NewLogger returns a text logger writing to stderr at the given level.
func NewLogger(level slog.Level) Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}
