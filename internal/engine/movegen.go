package engine

import "github.com/lgbarn/minichess-go/internal/chess"

// GenOptions controls move generation.
type GenOptions struct {
	// Pseudo skips the legality filter.
	Pseudo bool

	// Single restricts generation to moves starting on From.
	Single bool
	From   chess.Square
}

// GenerateMoves returns the moves available to the side to move, in board
// order from rank 6 to rank 1.
func GenerateMoves(board *chess.Board, opts GenOptions) []chess.Move {
	us := board.Turn
	var moves []chess.Move

	squares := chess.AllSquares
	if opts.Single {
		if !opts.From.OnBoard() {
			return nil
		}
		squares = []chess.Square{opts.From}
	}

	for _, from := range squares {
		p := board.Get(from)
		if p.IsEmpty() || p.Colour != us {
			continue
		}
		if p.Type == chess.Pawn {
			moves = appendPawnMoves(board, moves, from, us)
		} else {
			moves = appendPieceMoves(board, moves, p, from)
		}
	}

	if opts.Pseudo {
		return moves
	}
	return filterLegal(board, moves)
}

// appendPawnMoves adds the single push and the diagonal captures of a pawn.
func appendPawnMoves(board *chess.Board, moves []chess.Move, from chess.Square, us chess.Colour) []chess.Move {
	offsets := pawnOffsets[us]

	if to := from.Offset(offsets[0]); to.OnBoard() && board.Get(to).IsEmpty() {
		moves = appendMove(board, moves, from, to, chess.FlagNormal)
	}
	for _, step := range offsets[1:] {
		to := from.Offset(step)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != us {
			moves = appendMove(board, moves, from, to, chess.FlagCapture)
		}
	}
	return moves
}

// appendPieceMoves adds the steps or slides of a knight, rook, queen or king.
func appendPieceMoves(board *chess.Board, moves []chess.Move, p chess.Piece, from chess.Square) []chess.Move {
	for _, step := range pieceOffsets[p.Type] {
		to := from
		for {
			to = to.Offset(step)
			if !to.OnBoard() {
				break
			}
			target := board.Get(to)
			if target.IsEmpty() {
				moves = appendMove(board, moves, from, to, chess.FlagNormal)
			} else {
				if target.Colour != p.Colour {
					moves = appendMove(board, moves, from, to, chess.FlagCapture)
				}
				break
			}
			if !sliders[p.Type] {
				break
			}
		}
	}
	return moves
}

// appendMove builds a move and appends it, expanding a pawn arriving on the
// last rank into one move per promotion piece.
func appendMove(board *chess.Board, moves []chess.Move, from, to chess.Square, flags chess.Flags) []chess.Move {
	m := buildMove(board, from, to, flags)
	if m.Piece == chess.Pawn && to.Rank() == lastRank(m.Colour) {
		for _, promo := range chess.PromotionPieces {
			pm := m
			pm.Flags |= chess.FlagPromotion
			pm.Promotion = promo
			moves = append(moves, pm)
		}
		return moves
	}
	return append(moves, m)
}

// buildMove fills in the moving and captured pieces for from and to.
func buildMove(board *chess.Board, from, to chess.Square, flags chess.Flags) chess.Move {
	p := board.Get(from)
	m := chess.Move{
		Colour: p.Colour,
		From:   from,
		To:     to,
		Flags:  flags,
		Piece:  p.Type,
	}
	if flags&chess.FlagCapture != 0 {
		m.Captured = board.Get(to).Type
	}
	return m
}

// lastRank returns the promotion rank for colour c.
func lastRank(c chess.Colour) int {
	if c == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
func filterLegal(board *chess.Board, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if isLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal applies m, checks the mover's king and reverts.
func isLegal(board *chess.Board, m chess.Move) bool {
	ok := false
	WithMove(board, m, func() {
		ok = !KingAttacked(board, m.Colour)
	})
	return ok
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, m := range GenerateMoves(board, GenOptions{Pseudo: true}) {
		if isLegal(board, m) {
			return true
		}
	}
	return false
}
