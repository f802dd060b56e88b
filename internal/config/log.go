package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Log output formats.
const (
	LogFormatLegacy  = "legacy"
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is legacy, console or json.
	Format string `yaml:"format"`

	// Console enables output on stderr.
	Console bool `yaml:"console"`

	// File, when set, receives a copy of every entry.
	File string `yaml:"file"`

	// Caller adds the calling file and line to each entry.
	Caller bool `yaml:"caller"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:   "info",
		Format:  LogFormatLegacy,
		Console: true,
	}
}

// Validate checks the level and format names.
func (l *LogConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogFormatLegacy, LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}
