// Package logger provides centralized slog configuration for the application
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds logger configuration
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"warn"`
	// Format sets the output format (text or json)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	// AddSource adds source file information to log entries
	AddSource bool `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// DefaultConfig returns the logger configuration used when the environment sets nothing
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
	}
}

// ConfigFromEnv reads the logger configuration from LOG_* environment variables
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse logger env: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level, falling back to warn
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a new slog.Logger writing to w with the given configuration.
// Results go to stdout, so callers normally pass os.Stderr here.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewDefaultLogger creates a stderr logger from the environment
func NewDefaultLogger() (*slog.Logger, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewLogger(cfg, os.Stderr), nil
}

// SetDefault sets the default slog logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// WithExecutable adds executable name to a logger for filtering by program
func WithExecutable(logger *slog.Logger, executableName string) *slog.Logger {
	return logger.With(slog.String("executable", executableName))
}
