package config

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum movetext line width. Zero disables wrapping.
	MaxLineLength uint

	// Newline separates header lines and wrapped movetext lines.
	Newline string

	// ShowBoard prints the final position as a diagram after each record.
	ShowBoard bool

	// ShowFEN prints the final position in FEN after each record.
	ShowFEN bool

	// JSONFormat writes replayed games as JSON instead of game records.
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		Newline:       "\n",
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Newline == "" {
		return fmt.Errorf("empty newline sequence: %w", errors.ErrInvalidConfig)
	}
	return nil
}
