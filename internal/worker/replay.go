package worker

import (
	stderrors "errors"

	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/game"
)

// ReplayOptions controls how records are replayed.
type ReplayOptions struct {
	Load game.LoadOptions
	PGN  game.PGNOptions
	File string // input name reported in errors
}

// NewReplayFunc returns a ProcessFunc that loads each record into a fresh
// game. A record that fails still yields a summary of the position reached,
// with Err set.
func NewReplayFunc(opts ReplayOptions) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		g := game.New()
		err := g.LoadPGN(item.Record.Text, opts.Load)

		var ge *errors.GameError
		if stderrors.As(err, &ge) {
			ge.GameNum = item.Record.Number
			ge.File = opts.File
		}

		summary := g.Summary(item.Record.Number, opts.PGN)
		summary.Err = err
		return ProcessResult{Index: item.Index, Summary: summary, Err: err}
	}
}
