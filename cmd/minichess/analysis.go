// analysis.go - Position analysis: legal move lists and node counts
package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/minichess-go/internal/config"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/game"
)

// divideEntry is the node count below one root move.
type divideEntry struct {
	SAN   string
	Nodes int
}

// runAnalysis analyses cfg.Input.StartFEN and writes the report to w.
func runAnalysis(ctx context.Context, cfg *config.Config, w io.Writer, logger *log.Logger) error {
	g, err := game.NewFromFEN(cfg.Input.StartFEN)
	if err != nil {
		return errors.Wrapf(err, "start position %q", cfg.Input.StartFEN)
	}

	if cfg.Analysis.ListMoves {
		fmt.Fprintf(w, "%s: %s\n", g.Status(), strings.Join(g.Moves(game.MoveOptions{}), " "))
	}

	depth := cfg.Analysis.PerftDepth
	if depth == 0 {
		return nil
	}

	start := time.Now()
	var nodes int
	if cfg.Analysis.Divide {
		entries, err := divideParallel(ctx, g, depth, cfg.Workers)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s %d\n", e.SAN, e.Nodes)
			nodes += e.Nodes
		}
	} else {
		nodes = g.Perft(depth)
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes)

	logger.Info("perft", "depth", depth, "nodes", nodes, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// divideParallel counts the nodes below each root move, each on its own
// clone of g. At most limit clones run at once; zero or less means no limit.
func divideParallel(ctx context.Context, g *game.Game, depth, limit int) ([]divideEntry, error) {
	moves := g.GenerateMoves(game.MoveOptions{})
	entries := make([]divideEntry, len(moves))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, m := range moves {
		i, m := i, m
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := g.Clone()
			san := c.MakeMove(m).SAN
			entries[i] = divideEntry{SAN: san, Nodes: c.Perft(depth - 1)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
