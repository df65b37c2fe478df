package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// IsAttacked returns true if any piece of colour by attacks target.
func IsAttacked(board *chess.Board, by chess.Colour, target chess.Square) bool {
	if !target.OnBoard() {
		return false
	}
	for _, from := range chess.AllSquares {
		p := board.Get(from)
		if p.IsEmpty() || p.Colour != by {
			continue
		}
		if attacksSquare(board, p, from, target) {
			return true
		}
	}
	return false
}

// attacksSquare reports whether p standing on from attacks target.
func attacksSquare(board *chess.Board, p chess.Piece, from, target chess.Square) bool {
	if from == target {
		return false
	}
	idx := tableIndex(from, target)
	if attacks[idx]&(1<<p.Type) == 0 {
		return false
	}

	switch p.Type {
	case chess.Pawn:
		// White pawns capture toward higher indices, Black toward lower.
		diff := int(from) - int(target)
		if p.Colour == chess.White {
			return diff < 0
		}
		return diff > 0
	case chess.Knight, chess.King:
		return true
	}

	step := rays[idx]
	for sq := from.Offset(step); sq != target; sq = sq.Offset(step) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// KingAttacked returns true if the king of colour c is attacked. A side
// without a king is never in check.
func KingAttacked(board *chess.Board, c chess.Colour) bool {
	king := board.King(c)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(board, c.Opposite(), king)
}
