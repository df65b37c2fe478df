package game

import (
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// Get returns the piece on the named square.
func (g *Game) Get(square string) (chess.Piece, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return chess.Piece{}, false
	}
	p := g.board.Get(sq)
	return p, !p.IsEmpty()
}

// Put places a piece on the named square. It fails for an unknown piece,
// an invalid square, or a second king of one colour.
func (g *Game) Put(p chess.Piece, square string) bool {
	if p.Type.Letter() == 0 || (p.Colour != chess.White && p.Colour != chess.Black) {
		return false
	}
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return false
	}
	if !g.board.Put(p, sq) {
		return false
	}
	g.updateSetup()
	return true
}

// Remove takes the piece off the named square and returns it.
func (g *Game) Remove(square string) (chess.Piece, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return chess.Piece{}, false
	}
	p := g.board.Remove(sq)
	g.updateSetup()
	return p, !p.IsEmpty()
}

// SquareColour returns "light" or "dark" for the named square.
func (g *Game) SquareColour(square string) (string, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return "", false
	}
	if sq.IsLight() {
		return "light", true
	}
	return "dark", true
}

const diagramBorder = "   +------------------+\n"

// Ascii draws the board with rank 6 at the top. White pieces are upper
// case and empty squares are dots.
func (g *Game) Ascii() string {
	var sb strings.Builder
	sb.WriteString(diagramBorder)
	for i, sq := range chess.AllSquares {
		if sq.File() == 0 {
			sb.WriteString(" ")
			sb.WriteByte(sq.RankChar())
			sb.WriteString(" |")
		}
		sb.WriteString(" ")
		if p := g.board.Get(sq); p.IsEmpty() {
			sb.WriteString(".")
		} else {
			sb.WriteByte(p.Symbol())
		}
		sb.WriteString(" ")
		if (i+1)%chess.BoardSize == 0 {
			sb.WriteString("|\n")
		}
	}
	sb.WriteString(diagramBorder)
	sb.WriteString("     a  b  c  d  e  f\n")
	return sb.String()
}
