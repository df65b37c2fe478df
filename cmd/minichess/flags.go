// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/minichess-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Uint("w", 80, "Maximum movetext line length (0 = no wrapping)")
	crlf         = flag.Bool("crlf", false, "Write CRLF line endings")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showFEN      = flag.Bool("showfen", false, "Print the final position in FEN after each game")
	showBoard    = flag.Bool("board", false, "Print the final position as a diagram after each game")

	// Input options
	sloppy = flag.Bool("sloppy", false, "Accept coordinate move text such as b1c3")

	// Analysis options
	startFEN  = flag.String("fen", "", "Position to analyse (default: the initial position)")
	perftFlag = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide    = flag.Bool("divide", false, "With -perft, report the count below each root move")
	listMoves = flag.Bool("moves", false, "List the legal moves of the position")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "0 = errors only, 1 = summary, 2 = every game")
	quiet     = flag.Bool("s", false, "Silent mode (same as -verbosity 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 1, "Number of games replayed concurrently")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyInputFlags(cfg)
	applyAnalysisFlags(cfg)

	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
	if *appendLog != "" {
		cfg.LogFilename = *appendLog
	}
}

// applyOutputFlags configures record layout and format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.MaxLineLength = *lineLength
	if *crlf {
		cfg.Output.Newline = "\r\n"
	}
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowBoard = *showBoard
}

// applyInputFlags configures how records are read.
func applyInputFlags(cfg *config.Config) {
	cfg.Input.Sloppy = *sloppy
	if *startFEN != "" {
		cfg.Input.StartFEN = *startFEN
	}
}

// applyAnalysisFlags configures position analysis.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.PerftDepth = *perftFlag
	cfg.Analysis.Divide = *divide
	cfg.Analysis.ListMoves = *listMoves
}
