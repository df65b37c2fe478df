// Package engine implements the rules of the 6x6 variant: attack detection,
// move generation, make/undo, terminal states, position strings and SAN.
package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// Index differences between two playable squares lie in [-0x55, 0x55].
const (
	attackBias = 0x55
	tableSize  = 2*attackBias + 1
)

// Attack masks, one bit per piece type that can reach a square difference
// on an empty board.
const (
	maskPawn   = 1 << chess.Pawn
	maskKnight = 1 << chess.Knight
	maskRook   = 1 << chess.Rook
	maskQueen  = 1 << chess.Queen
	maskKing   = 1 << chess.King
)

var (
	// attacks[from-to+attackBias] holds the attack mask for that difference.
	attacks [tableSize]uint8

	// rays[from-to+attackBias] holds the single step walking from the
	// source toward the target along a line, or 0 when no line exists.
	rays [tableSize]int
)

// Step offsets in the 16-wide index.
var (
	knightOffsets = []int{-33, -31, -18, -14, 14, 18, 31, 33}
	rookOffsets   = []int{-16, -1, 1, 16}
	kingOffsets   = []int{-17, -16, -15, -1, 1, 15, 16, 17}
)

// pieceOffsets maps a non-pawn piece to its step offsets.
var pieceOffsets = map[chess.PieceType][]int{
	chess.Knight: knightOffsets,
	chess.Rook:   rookOffsets,
	chess.Queen:  kingOffsets,
	chess.King:   kingOffsets,
}

// sliders lists the piece types that repeat their step.
var sliders = map[chess.PieceType]bool{
	chess.Rook:  true,
	chess.Queen: true,
}

// pawnOffsets holds the push and the two capture steps per colour.
var pawnOffsets = [2][3]int{
	chess.Black: {-16, -17, -15},
	chess.White: {16, 15, 17},
}

func init() {
	const span = chess.BoardSize - 1
	for dr := -span; dr <= span; dr++ {
		for df := -span; df <= span; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			// (dr, df) is target minus source, so the table index is its negation.
			idx := -(dr<<4 + df) + attackBias
			ar, af := abs(dr), abs(df)

			var mask uint8
			switch {
			case ar == 1 && af == 1:
				mask |= maskPawn | maskKing | maskQueen
			case ar <= 1 && af <= 1:
				mask |= maskKing | maskQueen | maskRook
			case ar == 0 || af == 0:
				mask |= maskQueen | maskRook
			case ar == af:
				mask |= maskQueen
			case (ar == 1 && af == 2) || (ar == 2 && af == 1):
				mask |= maskKnight
			}
			attacks[idx] = mask

			if ar == 0 || af == 0 || ar == af {
				rays[idx] = sign(dr)<<4 + sign(df)
			}
		}
	}
}

// tableIndex returns the table slot for a source/target pair.
func tableIndex(from, to chess.Square) int {
	return int(from) - int(to) + attackBias
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
