// Package config loads MoodJukebox settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultAddr is the default server address.
	DefaultAddr = "127.0.0.1:8080"

	envAddr      = "MOODJUKEBOX_ADDR"
	envLogLevel  = "MOODJUKEBOX_LOG_LEVEL"
	envLogFormat = "MOODJUKEBOX_LOG_FORMAT"
)

var (
	// ErrInvalidLogLevel is returned when MOODJUKEBOX_LOG_LEVEL is not a known level.
	ErrInvalidLogLevel = errors.New("invalid MOODJUKEBOX_LOG_LEVEL")

	// ErrInvalidLogFormat is returned when MOODJUKEBOX_LOG_FORMAT is not console or json.
	ErrInvalidLogFormat = errors.New("invalid MOODJUKEBOX_LOG_FORMAT")
)

// Config holds application configuration.
type Config struct {
	Addr      string
	LogLevel  zerolog.Level
	LogFormat string // "console" or "json"
}

// Load reads an optional .env file from the working directory and then
// builds the configuration from environment variables. Variables already
// set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:      DefaultAddr,
		LogLevel:  zerolog.InfoLevel,
		LogFormat: "console",
	}

	if addr := os.Getenv(envAddr); addr != "" {
		cfg.Addr = addr
	}

	if lvl := strings.TrimSpace(os.Getenv(envLogLevel)); lvl != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(lvl))
		if err != nil || level == zerolog.NoLevel {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, lvl)
		}
		cfg.LogLevel = level
	}

	if format := strings.ToLower(strings.TrimSpace(os.Getenv(envLogFormat))); format != "" {
		if format != "console" && format != "json" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
		}
		cfg.LogFormat = format
	}

	return cfg, nil
}
