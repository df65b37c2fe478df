package game

import "github.com/lgbarn/minichess-go/internal/engine"

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board)
}

// InCheckmate reports whether the side to move is checkmated.
func (g *Game) InCheckmate() bool {
	return engine.IsCheckmate(g.board)
}

// InStalemate reports whether the side to move has no legal move and is
// not in check.
func (g *Game) InStalemate() bool {
	return engine.IsStalemate(g.board)
}

// InsufficientMaterial reports whether neither side can mate: bare kings,
// or a lone knight against a bare king.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.board)
}

// InThreefoldRepetition always reports false; repetition detection is
// switched off.
func (g *Game) InThreefoldRepetition() bool {
	return engine.IsThreefoldRepetition(g.board)
}

// InDraw reports a draw by the half-move clock, stalemate, insufficient
// material or repetition.
func (g *Game) InDraw() bool {
	return engine.IsDraw(g.board)
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return engine.IsGameOver(g.board)
}

// Status describes the game state in a few words.
func (g *Game) Status() string {
	switch {
	case g.InCheckmate():
		return g.Turn().String() + " is checkmated"
	case g.InStalemate():
		return "stalemate"
	case g.InsufficientMaterial():
		return "draw by insufficient material"
	case g.board.HalfMoveClock >= engine.DrawHalfMoves:
		return "draw by the half-move clock"
	case g.InCheck():
		return g.Turn().String() + " to move, in check"
	}
	return g.Turn().String() + " to move"
}
