package engine

import (
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// DrawHalfMoves is the half-move clock value at which the game is drawn.
const DrawHalfMoves = 100

// repetitionDetection switches on the threefold repetition scan. It stays
// off: repetition never contributes to a draw.
const repetitionDetection = false

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// HasFiftyMoveRule is true once 100 half-moves passed without a pawn
	// move or capture.
	HasFiftyMoveRule bool

	// HasStalemate is true if the side to move has no legal move and is
	// not in check.
	HasStalemate bool

	// HasInsufficientMaterial is true if neither side can mate.
	HasInsufficientMaterial bool

	// HasRepetition is true if a position occurred three times.
	HasRepetition bool
}

// IsDraw reports whether any draw rule applies.
func (r DrawRuleResult) IsDraw() bool {
	return r.HasFiftyMoveRule || r.HasStalemate || r.HasInsufficientMaterial || r.HasRepetition
}

// AnalyzeDrawRules evaluates every draw rule for the current position.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	return DrawRuleResult{
		HasFiftyMoveRule:        board.HalfMoveClock >= DrawHalfMoves,
		HasStalemate:            IsStalemate(board),
		HasInsufficientMaterial: HasInsufficientMaterial(board),
		HasRepetition:           IsThreefoldRepetition(board),
	}
}

// IsInCheck returns true if the side to move is in check.
func IsInCheck(board *chess.Board) bool {
	return KingAttacked(board, board.Turn)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board) && !HasLegalMoves(board)
}

// HasInsufficientMaterial returns true for king against king, and for king
// and knight against king.
func HasInsufficientMaterial(board *chess.Board) bool {
	switch board.PieceCount() {
	case 2:
		return true
	case 3:
		for _, sq := range chess.AllSquares {
			if board.Get(sq).Type == chess.Knight {
				return true
			}
		}
	}
	return false
}

// IsDraw reports a draw by the clock, stalemate, insufficient material or
// repetition.
func IsDraw(board *chess.Board) bool {
	return AnalyzeDrawRules(board).IsDraw()
}

// IsGameOver reports whether the game has ended by any rule.
func IsGameOver(board *chess.Board) bool {
	return board.HalfMoveClock >= DrawHalfMoves ||
		IsCheckmate(board) ||
		IsStalemate(board) ||
		HasInsufficientMaterial(board) ||
		IsThreefoldRepetition(board)
}

// IsThreefoldRepetition always returns false while repetitionDetection is off.
func IsThreefoldRepetition(board *chess.Board) bool {
	if !repetitionDetection {
		return false
	}
	return hasRepetition(board, 3)
}

// hasRepetition unwinds the history, counting placement and side to move
// of every position reached, then replays it. It reports whether the
// current position occurred at least n times.
func hasRepetition(board *chess.Board, n int) bool {
	key := func() string {
		fields := strings.Fields(BoardToFEN(board))
		return fields[0] + " " + fields[1]
	}

	counts := make(map[string]int)
	var undone []chess.Move
	for {
		counts[key()]++
		m, ok := UndoMove(board)
		if !ok {
			break
		}
		undone = append(undone, m)
	}
	for i := len(undone) - 1; i >= 0; i-- {
		MakeMove(board, undone[i])
	}
	return counts[key()] >= n
}
