package config

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted on the command line.
const MaxPerftDepth = 8

// AnalysisConfig holds settings for position analysis modes.
type AnalysisConfig struct {
	// PerftDepth counts leaf nodes to this depth when positive.
	PerftDepth int

	// Divide reports the perft count below each root move.
	Divide bool

	// ListMoves prints the legal moves of the position.
	ListMoves bool
}

// NewAnalysisConfig creates an AnalysisConfig with analysis disabled.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Enabled reports whether any analysis mode was requested.
func (a *AnalysisConfig) Enabled() bool {
	return a.PerftDepth > 0 || a.ListMoves
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Divide && a.PerftDepth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
