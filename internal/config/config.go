// Package config provides configuration for the minichess command line tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// Config holds all program configuration and run state.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-record commentary

	// Workers is the number of records processed concurrently.
	// Zero or one processes records in input order on one goroutine.
	Workers int

	Output   *OutputConfig
	Input    *InputConfig
	Analysis *AnalysisConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string
	LogFilename      string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Counters
	NumGamesProcessed uint
	NumGamesFailed    uint
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Input:      NewInputConfig(),
		Analysis:   NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream game records are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}
