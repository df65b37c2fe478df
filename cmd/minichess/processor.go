// processor.go - Game record replay and output
package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/game"
	"github.com/lgbarn/minichess-go/internal/output"
	"github.com/lgbarn/minichess-go/internal/parser"
	"github.com/lgbarn/minichess-go/internal/worker"
)

// ProcessingContext holds the state shared by every input of one run.
type ProcessingContext struct {
	cfg    *config.Config
	writer output.GameWriter
	logger *log.Logger
}

// newGameWriter picks the writer for the configured output format.
func newGameWriter(cfg *config.Config) output.GameWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriter(cfg.OutputFile)
	}
	return output.NewPGNWriter(cfg.OutputFile, cfg)
}

// replayOptions derives record load and layout options from cfg.
func replayOptions(cfg *config.Config, name string) worker.ReplayOptions {
	return worker.ReplayOptions{
		Load: game.LoadOptions{
			Sloppy:  cfg.Input.Sloppy,
			Newline: cfg.Input.Newline,
		},
		PGN: game.PGNOptions{
			MaxWidth: int(cfg.Output.MaxLineLength),
			Newline:  cfg.Output.Newline,
		},
		File: name,
	}
}

// processInput replays every record read from r and writes the results in
// input order. Games that fail are logged and counted in
// cfg.NumGamesFailed.
func processInput(r io.Reader, name string, ctx *ProcessingContext) error {
	cfg := ctx.cfg
	cfg.CurrentInputFile = name

	records, err := parser.NewRecordReader(r, name).ReadAll()
	if err != nil {
		ctx.logger.Error("reading input", "file", name, "err", err)
	}

	var writeErr error
	handle := func(res worker.ProcessResult) {
		cfg.NumGamesProcessed++
		if res.Err != nil {
			cfg.NumGamesFailed++
			ctx.logger.Error("game failed", "file", name, "game", res.Summary.Number, "err", res.Err)
		} else {
			ctx.logger.Debug("game replayed", "file", name, "game", res.Summary.Number,
				"plies", len(res.Summary.Moves), "status", res.Summary.Status)
		}
		if writeErr == nil {
			writeErr = ctx.writer.WriteGame(res.Summary)
		}
	}

	replay := worker.NewReplayFunc(replayOptions(cfg, name))
	if cfg.Workers > 1 && len(records) > 1 {
		replayParallel(records, replay, cfg.Workers, handle)
	} else {
		for i, rec := range records {
			handle(replay(worker.WorkItem{Record: rec, Index: i}))
		}
	}

	if writeErr != nil {
		return errors.Wrapf(writeErr, "writing %s results", name)
	}
	return err
}

// replayParallel replays records on a worker pool. handle is called from
// this goroutine only, in input order.
func replayParallel(records []*parser.Record, replay worker.ProcessFunc, numWorkers int, handle func(worker.ProcessResult)) {
	bufferSize := len(records)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(replay, worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, rec := range records {
			pool.Submit(worker.WorkItem{Record: rec, Index: i})
		}
		pool.Close()
	}()

	worker.InOrder(pool.Results(), handle)
}
