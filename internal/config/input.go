package config

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// InputConfig holds settings for reading game records.
type InputConfig struct {
	// Sloppy accepts coordinate and over-disambiguated move text.
	Sloppy bool

	// Newline is the line separator of the input records.
	// Empty means "\r?\n".
	Newline string

	// StartFEN is the position used for analysis when no record is read.
	StartFEN string
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		StartFEN: engine.InitialFEN,
	}
}

// Validate checks that the input configuration is valid.
func (i *InputConfig) Validate() error {
	if i.StartFEN == "" {
		return nil
	}
	if err := engine.ValidateFEN(i.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
