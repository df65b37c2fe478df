package game

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// PrettyMove is the caller-facing form of a move.
type PrettyMove struct {
	Colour    chess.Colour
	From      string
	To        string
	Piece     chess.PieceType
	Captured  chess.PieceType
	Promotion chess.PieceType
	Flags     string
	SAN       string
}

// makePretty describes m. SAN needs the position before m is made.
func (g *Game) makePretty(m chess.Move) PrettyMove {
	return PrettyMove{
		Colour:    m.Colour,
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     m.Piece,
		Captured:  m.Captured,
		Promotion: m.Promotion,
		Flags:     m.Flags.String(),
		SAN:       engine.ToSAN(g.board, m, false),
	}
}

// MoveOptions selects which moves to generate.
type MoveOptions struct {
	// Square restricts generation to moves from one square. An invalid
	// square name yields no moves.
	Square string

	// Pseudo skips the check that the mover's king is left safe.
	Pseudo bool
}

// GenerateMoves returns moves in internal form.
func (g *Game) GenerateMoves(opts MoveOptions) []chess.Move {
	gen := engine.GenOptions{Pseudo: opts.Pseudo}
	if opts.Square != "" {
		sq, ok := chess.ParseSquare(opts.Square)
		if !ok {
			return nil
		}
		gen.Single, gen.From = true, sq
	}
	return engine.GenerateMoves(g.board, gen)
}

// Moves returns the SAN of each generated move.
func (g *Game) Moves(opts MoveOptions) []string {
	moves := g.GenerateMoves(opts)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = engine.ToSAN(g.board, m, false)
	}
	return out
}

// VerboseMoves returns each generated move in caller-facing form.
func (g *Game) VerboseMoves(opts MoveOptions) []PrettyMove {
	moves := g.GenerateMoves(opts)
	out := make([]PrettyMove, len(moves))
	for i, m := range moves {
		out[i] = g.makePretty(m)
	}
	return out
}

// Move makes the legal move written as san. Sloppy also accepts coordinate
// forms such as "b1c3" and over-disambiguated moves.
func (g *Game) Move(san string, sloppy bool) (PrettyMove, error) {
	m, ok := engine.FromSAN(g.board, san, sloppy)
	if !ok {
		return PrettyMove{}, &errors.GameError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   g.board.HistoryLen() + 1,
			MoveText: san,
		}
	}
	return g.MakeMove(m), nil
}

// MoveFromTo makes the legal move between two squares. A promotion with no
// piece given promotes to a queen.
func (g *Game) MoveFromTo(from, to string, promotion chess.PieceType) (PrettyMove, error) {
	moveErr := &errors.GameError{
		Err:      errors.ErrIllegalMove,
		PlyNum:   g.board.HistoryLen() + 1,
		MoveText: from + to,
	}
	fromSq, ok1 := chess.ParseSquare(from)
	toSq, ok2 := chess.ParseSquare(to)
	if !ok1 || !ok2 {
		moveErr.Err = fmt.Errorf("%w: %w", errors.ErrIllegalMove, errors.ErrInvalidSquare)
		return PrettyMove{}, moveErr
	}

	if promotion == chess.NoPieceType {
		promotion = chess.Queen
	}
	for _, m := range engine.GenerateMoves(g.board, engine.GenOptions{Single: true, From: fromSq}) {
		if m.To == toSq && (!m.IsPromotion() || m.Promotion == promotion) {
			return g.MakeMove(m), nil
		}
	}
	return PrettyMove{}, moveErr
}

// MakeMove makes m without checking that it is legal.
func (g *Game) MakeMove(m chess.Move) PrettyMove {
	pretty := g.makePretty(m)
	engine.MakeMove(g.board, m)
	return pretty
}

// Undo takes back the last move.
func (g *Game) Undo() (PrettyMove, bool) {
	m, ok := engine.UndoMove(g.board)
	if !ok {
		return PrettyMove{}, false
	}
	return g.makePretty(m), true
}

// replay undoes every move and makes them again in order, calling fn before
// each one. The board ends where it started.
func (g *Game) replay(fn func(m chess.Move)) {
	moves := g.board.HistoryMoves()
	for range moves {
		engine.UndoMove(g.board)
	}
	for _, m := range moves {
		if fn != nil {
			fn(m)
		}
		engine.MakeMove(g.board, m)
	}
}

// History returns the SAN of every move made.
func (g *Game) History() []string {
	out := make([]string, 0, g.board.HistoryLen())
	g.replay(func(m chess.Move) {
		out = append(out, engine.ToSAN(g.board, m, false))
	})
	return out
}

// VerboseHistory returns every move made in caller-facing form.
func (g *Game) VerboseHistory() []PrettyMove {
	out := make([]PrettyMove, 0, g.board.HistoryLen())
	g.replay(func(m chess.Move) {
		out = append(out, g.makePretty(m))
	})
	return out
}

// HistoryLen returns the number of moves made.
func (g *Game) HistoryLen() int {
	return g.board.HistoryLen()
}

// Perft counts the leaf nodes of the legal move tree at depth.
func (g *Game) Perft(depth int) int {
	return engine.Perft(g.board, depth)
}

// Divide counts the leaf nodes below each legal move at depth.
func (g *Game) Divide(depth int) []engine.DivideEntry {
	return engine.Divide(g.board, depth)
}
