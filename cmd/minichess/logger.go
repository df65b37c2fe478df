package main

import (
	"github.com/charmbracelet/log"

	"github.com/lgbarn/minichess-go/internal/config"
)

// newLogger returns a logger writing to cfg.LogFile. Verbosity 0 shows
// errors only, 1 adds the run summary and 2 reports every game.
func newLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(cfg.LogFile, log.Options{
		Prefix: "minichess",
		Level:  levelFor(cfg.Verbosity),
	})
}

func levelFor(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.ErrorLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}
