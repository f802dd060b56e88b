// Package config provides configuration for the chess tools. Values come
// from built-in defaults, an optional YAML file and environment overrides,
// in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	// DefaultHistoryCapacity is the number of undoable positions kept by a
	// game session.
	DefaultHistoryCapacity = 300

	// DefaultDrawHalfmoveLimit is the halfmove clock value beyond which a
	// game is declared drawn.
	DefaultDrawHalfmoveLimit = 300
)

// Config holds all program configuration.
type Config struct {
	// HistoryCapacity bounds the undo history; 0 means unbounded.
	HistoryCapacity int `yaml:"history_capacity"`

	// DrawHalfmoveLimit ends the game once the halfmove clock exceeds it;
	// 0 disables the rule.
	DrawHalfmoveLimit int `yaml:"draw_halfmove_limit"`

	Log    LogConfig    `yaml:"log"`
	Engine EngineConfig `yaml:"engine"`
	Render RenderConfig `yaml:"render"`
	Perft  PerftConfig  `yaml:"perft"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		HistoryCapacity:   DefaultHistoryCapacity,
		DrawHalfmoveLimit: DefaultDrawHalfmoveLimit,
		Log:               *NewLogConfig(),
		Engine:            *NewEngineConfig(),
		Render:            *NewRenderConfig(),
		Perft:             *NewPerftConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.HistoryCapacity < 0 {
		return fmt.Errorf("history capacity %d is negative: %w", c.HistoryCapacity, errors.ErrInvalidConfig)
	}
	if c.DrawHalfmoveLimit < 0 {
		return fmt.Errorf("draw halfmove limit %d is negative: %w", c.DrawHalfmoveLimit, errors.ErrInvalidConfig)
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes YAML data over the current values. Keys absent from data
// keep their value.
func (c *Config) Decode(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// Encode returns the configuration as YAML.
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides values from environment variables read with getenv.
// Unparsable numbers are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	lookup := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv(key))
		return v, v != ""
	}
	atoi := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	atoi("CHESS_HISTORY_LIMIT", &c.HistoryCapacity)
	atoi("CHESS_DRAW_HALFMOVE_LIMIT", &c.DrawHalfmoveLimit)

	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.Log.File = v
	}
	boolean("LOG_TO_CONSOLE", &c.Log.Console)
	boolean("LOG_CALLER", &c.Log.Caller)

	if v, ok := lookup("STOCKFISH_PATH"); ok {
		c.Engine.Path = v
	}
	atoi("ENGINE_DEPTH", &c.Engine.Depth)
	atoi("ENGINE_MOVETIME_MS", &c.Engine.MoveTimeMillis)
	atoi("ENGINE_THREADS", &c.Engine.Threads)
	atoi("ENGINE_HASH_MB", &c.Engine.HashMB)
	atoi("ENGINE_SKILL_LEVEL", &c.Engine.SkillLevel)
	atoi("ENGINE_MULTIPV", &c.Engine.MultiPV)

	atoi("RENDER_SQUARE_SIZE", &c.Render.SquareSize)
	atoi("PERFT_WORKERS", &c.Perft.Workers)
}
