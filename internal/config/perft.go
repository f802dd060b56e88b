package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for the perft tool.
type PerftConfig struct {
	// Workers is the number of goroutines used for a parallel divide.
	Workers int `yaml:"workers"`
}

// NewPerftConfig creates a PerftConfig using one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: runtime.NumCPU()}
}

// Validate checks the worker count.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("perft workers must be positive, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
