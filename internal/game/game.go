// Package game provides the per-session game object: a board with its move
// history, the tag header and the comment map, plus the game-record codec.
//
// A Game is not safe for concurrent use. Independent games may be used from
// separate goroutines.
package game

import (
	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
)

// Game is one game session.
type Game struct {
	board  *chess.Board
	header *chess.Header

	// comments maps a position string to the comment attached to it.
	comments map[string]string
}

// New creates a game in the initial position.
func New() *Game {
	g := &Game{
		board:    engine.NewInitialBoard(),
		header:   chess.NewHeader(),
		comments: make(map[string]string),
	}
	return g
}

// NewFromFEN creates a game from a position string.
func NewFromFEN(fen string) (*Game, error) {
	g := New()
	if err := g.Load(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Load replaces the position. The header and comments are cleared. An
// invalid position string leaves the game unchanged.
func (g *Game) Load(fen string) error {
	return g.load(fen, false)
}

func (g *Game) load(fen string, keepHeaders bool) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	g.board = board
	if !keepHeaders {
		g.header.Clear()
	}
	g.comments = make(map[string]string)
	g.updateSetup()
	return nil
}

// Reset returns to the initial position with an empty header.
func (g *Game) Reset() {
	if err := g.Load(engine.InitialFEN); err != nil {
		panic(err)
	}
}

// Clear empties the board. White is to move at move 1.
func (g *Game) Clear() {
	g.board = chess.NewBoard()
	g.header.Clear()
	g.comments = make(map[string]string)
	g.updateSetup()
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := &Game{
		board:    g.board.Copy(),
		header:   chess.NewHeader(),
		comments: make(map[string]string, len(g.comments)),
	}
	for _, tag := range g.header.Tags() {
		c.header.Set(tag.Key, tag.Value)
	}
	for k, v := range g.comments {
		c.comments[k] = v
	}
	return c
}

// FEN returns the position string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.Turn
}

// Header returns the tags in insertion order.
func (g *Game) Header() []chess.Tag {
	return g.header.Tags()
}

// SetHeader sets one tag.
func (g *Game) SetHeader(key, value string) {
	g.header.Set(key, value)
}

// HeaderValue returns the value of one tag.
func (g *Game) HeaderValue(key string) (string, bool) {
	return g.header.Get(key)
}

// updateSetup keeps the SetUp and FEN tags in step with a board edited
// before any move was made. They are removed for the initial position.
func (g *Game) updateSetup() {
	if g.board.HistoryLen() > 0 {
		return
	}
	fen := g.FEN()
	if fen != engine.InitialFEN {
		g.header.Set(chess.SetupTag, "1")
		g.header.Set(chess.FENTag, fen)
		return
	}
	g.header.Delete(chess.SetupTag)
	g.header.Delete(chess.FENTag)
}
