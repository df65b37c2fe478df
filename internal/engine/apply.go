package engine

import (
	"github.com/lgbarn/minichess-go/internal/chess"
)

// MakeMove applies a move to the board and pushes a history entry. The move
// is trusted: callers pass moves produced by GenerateMoves.
func MakeMove(board *chess.Board, m chess.Move) {
	us := board.Turn

	board.PushHistory(chess.HistoryEntry{
		Move:          m,
		Kings:         board.Kings(),
		Turn:          us,
		HalfMoveClock: board.HalfMoveClock,
		MoveNumber:    board.MoveNumber,
	})

	piece := board.Get(m.From)
	if m.IsPromotion() {
		piece = chess.Piece{Type: m.Promotion, Colour: us}
	}
	board.Set(m.To, piece)
	board.Set(m.From, chess.Piece{})

	if m.Piece == chess.Pawn || m.IsCapture() {
		board.HalfMoveClock = 0
	} else {
		board.HalfMoveClock++
	}

	if us == chess.Black {
		board.MoveNumber++
	}
	board.Turn = us.Opposite()
}

// UndoMove reverts the most recent move. It returns false when there is
// nothing to undo.
func UndoMove(board *chess.Board) (chess.Move, bool) {
	e, ok := board.PopHistory()
	if !ok {
		return chess.Move{}, false
	}
	m := e.Move

	board.Set(m.From, chess.Piece{Type: m.Piece, Colour: m.Colour})
	if m.IsCapture() {
		board.Set(m.To, chess.Piece{Type: m.Captured, Colour: m.Colour.Opposite()})
	} else {
		board.Set(m.To, chess.Piece{})
	}

	board.SetKings(e.Kings)
	board.Turn = e.Turn
	board.HalfMoveClock = e.HalfMoveClock
	board.MoveNumber = e.MoveNumber
	return m, true
}

// WithMove applies m, runs fn and undoes m, even if fn panics.
func WithMove(board *chess.Board, m chess.Move, fn func()) {
	MakeMove(board, m)
	defer UndoMove(board)
	fn()
}
