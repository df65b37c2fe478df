// minichess replays, validates and reformats 6x6 chess game records, and
// counts move-tree nodes for testing the move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("minichess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg)

	if cfg.Analysis.Enabled() {
		if err := runAnalysis(context.Background(), cfg, cfg.OutputFile, logger); err != nil {
			logger.Error("analysis failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, flag.Args(), logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	if cfg.NumGamesFailed > 0 {
		os.Exit(1)
	}
}

// run replays the records of every named file, or of stdin when there are
// none, then reports the totals.
func run(cfg *config.Config, args []string, logger *log.Logger) error {
	ctx := &ProcessingContext{
		cfg:    cfg,
		writer: newGameWriter(cfg),
		logger: logger,
	}

	if len(args) == 0 {
		if err := processInput(os.Stdin, "stdin", ctx); err != nil {
			return err
		}
	}
	for _, filename := range args {
		if err := processFile(filename, ctx); err != nil {
			logger.Error("skipping input", "file", filename, "err", err)
		}
	}

	if err := ctx.writer.Close(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	logger.Info("done", "games", cfg.NumGamesProcessed, "failed", cfg.NumGamesFailed)
	return nil
}

func processFile(filename string, ctx *ProcessingContext) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only
	return processInput(file, filename, ctx)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		cfg.SetLog(mustOpen(*logFile, false))
	}
	if *appendLog != "" {
		cfg.SetLog(mustOpen(*appendLog, true))
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile != "" {
		cfg.SetOutput(mustOpen(*outputFile, *appendOutput))
	}
}

// mustOpen creates or appends to name, exiting on failure.
func mustOpen(name string, appendTo bool) io.Writer {
	var file *os.File
	var err error
	if appendTo {
		file, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created files
	} else {
		file, err = os.Create(name) //nolint:gosec // G304: CLI tool creates user-specified files
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", name, err)
		os.Exit(1)
	}
	return file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: minichess [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays 6x6 chess game records and writes them back in normalized form.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nAnalysis (-perft, -moves) reads the -fen position instead of game records.\n")
}
