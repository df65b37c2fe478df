package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree at the given depth.
// Depth 0 counts the current position as a single node.
func Perft(board *chess.Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	us := board.Turn
	nodes := 0
	for _, m := range GenerateMoves(board, GenOptions{Pseudo: true}) {
		MakeMove(board, m)
		if !KingAttacked(board, us) {
			if depth > 1 {
				nodes += Perft(board, depth-1)
			} else {
				nodes++
			}
		}
		UndoMove(board)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes int
}

// Divide runs Perft below each legal root move.
func Divide(board *chess.Board, depth int) []DivideEntry {
	var entries []DivideEntry
	for _, m := range GenerateMoves(board, GenOptions{}) {
		n := 0
		WithMove(board, m, func() {
			n = Perft(board, depth-1)
		})
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
	}
	return entries
}
