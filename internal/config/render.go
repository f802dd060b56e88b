package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RenderConfig holds settings for board images.
type RenderConfig struct {
	// SquareSize is the edge of one square in pixels.
	SquareSize int `yaml:"square_size"`

	// Coordinates draws file and rank labels around the board.
	Coordinates bool `yaml:"coordinates"`
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		SquareSize:  72,
		Coordinates: true,
	}
}

// Validate checks the square size.
func (r *RenderConfig) Validate() error {
	if r.SquareSize < 16 || r.SquareSize > 512 {
		return fmt.Errorf("square size %d out of range 16-512: %w", r.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
