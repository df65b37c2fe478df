package game

import (
	"fmt"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/errors"
	"github.com/lgbarn/minichess-go/internal/output"
	"github.com/lgbarn/minichess-go/internal/parser"
)

// LoadOptions controls LoadPGN.
type LoadOptions struct {
	// Sloppy accepts coordinate and over-disambiguated move text.
	Sloppy bool

	// Newline is the line separator of the record. Empty accepts "\n"
	// and "\r\n".
	Newline string
}

// LoadPGN replaces the game with the one in a game record. A record with
// an unusable SetUp position leaves the game unchanged; on an illegal move
// the game is left at the last legal position.
func (g *Game) LoadPGN(text string, opts LoadOptions) error {
	rec := parser.Parse(text, opts.Newline)

	header := chess.NewHeader()
	for _, tag := range rec.Tags {
		header.Set(tag.Key, tag.Value)
	}

	board := engine.NewInitialBoard()
	setup, _ := header.Get(chess.SetupTag)
	if setup == "1" {
		fen, ok := header.Get(chess.FENTag)
		if !ok {
			return &errors.GameError{Err: fmt.Errorf("%w: SetUp without a FEN tag", errors.ErrParseFailure)}
		}
		b, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return &errors.GameError{Err: fmt.Errorf("%w: %w", errors.ErrParseFailure, err)}
		}
		board = b
	}

	g.board = board
	g.header = header
	g.comments = make(map[string]string)
	if setup == "1" {
		g.updateSetup()
	}

	for i, tok := range rec.Tokens {
		if c, ok := parser.DecodeComment(tok); ok {
			g.comments[g.FEN()] = c
			continue
		}
		if parser.IsResult(tok) && onlyComments(rec.Tokens[i+1:]) {
			if _, ok := g.header.Get(chess.ResultTag); !ok && g.header.Len() > 0 {
				g.header.Set(chess.ResultTag, tok)
			}
			continue
		}
		m, ok := engine.FromSAN(g.board, tok, opts.Sloppy)
		if !ok {
			return &errors.GameError{
				Err:      errors.ErrIllegalMove,
				PlyNum:   g.board.HistoryLen() + 1,
				MoveText: tok,
			}
		}
		engine.MakeMove(g.board, m)
	}
	return nil
}

func onlyComments(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := parser.DecodeComment(tok); !ok {
			return false
		}
	}
	return true
}

// PGNOptions controls PGN.
type PGNOptions struct {
	// MaxWidth wraps movetext lines at this many characters. Zero keeps
	// the movetext on one line.
	MaxWidth int

	// Newline separates lines. Defaults to "\n".
	Newline string
}

// PGN returns the game as a game record: the tags, then the moves grouped
// by move number with their comments, then the Result tag value if set.
func (g *Game) PGN(opts PGNOptions) string {
	var b output.MovetextBuilder
	comment := func() {
		if c, ok := g.comments[g.FEN()]; ok {
			b.Comment(c)
		}
	}
	g.replay(func(m chess.Move) {
		comment()
		b.Move(m.Colour, g.board.MoveNumber, engine.ToSAN(g.board, m, false))
	})
	comment()

	result, _ := g.header.Get(chess.ResultTag)
	return output.Layout(g.header.Tags(), b.Units(result), g.board.HistoryLen() > 0, output.Options{
		MaxWidth: opts.MaxWidth,
		Newline:  opts.Newline,
	})
}
