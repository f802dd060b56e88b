package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EngineConfig holds settings for an external UCI engine player.
type EngineConfig struct {
	// Path is the engine binary. Empty disables engine players.
	Path string `yaml:"path"`

	// Search limits; at least one must be positive.
	Depth          int `yaml:"depth"`
	MoveTimeMillis int `yaml:"movetime_ms"`

	// Engine options sent with setoption.
	Threads    int `yaml:"threads"`
	HashMB     int `yaml:"hash_mb"`
	SkillLevel int `yaml:"skill_level"`
	MultiPV    int `yaml:"multipv"`
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		MoveTimeMillis: 500,
		Threads:        1,
		HashMB:         16,
		SkillLevel:     20,
		MultiPV:        1,
	}
}

// Enabled reports whether an engine binary is configured.
func (e *EngineConfig) Enabled() bool {
	return e.Path != ""
}

// Validate checks that the engine settings are usable.
func (e *EngineConfig) Validate() error {
	if e.Depth < 0 || e.MoveTimeMillis < 0 {
		return fmt.Errorf("negative search limit (depth %d, movetime %d): %w",
			e.Depth, e.MoveTimeMillis, errors.ErrInvalidConfig)
	}
	if e.Depth == 0 && e.MoveTimeMillis == 0 {
		return fmt.Errorf("no search limit set: %w", errors.ErrInvalidConfig)
	}
	if e.SkillLevel < 0 || e.SkillLevel > 20 {
		return fmt.Errorf("skill level %d out of range 0-20: %w", e.SkillLevel, errors.ErrInvalidConfig)
	}
	if e.Threads < 1 || e.HashMB < 1 || e.MultiPV < 1 {
		return fmt.Errorf("threads, hash and multipv must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
