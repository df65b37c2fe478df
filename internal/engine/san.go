package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// ToSAN converts a move to Standard Algebraic Notation. In sloppy mode
// disambiguation considers pseudo-legal moves as well.
func ToSAN(board *chess.Board, m chess.Move, sloppy bool) string {
	var sb strings.Builder

	if m.Piece != chess.Pawn {
		sb.WriteByte(upper(m.Piece.Letter()))
		sb.WriteString(disambiguation(board, m, sloppy))
	}

	if m.IsCapture() {
		if m.Piece == chess.Pawn {
			sb.WriteByte(m.From.FileChar())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(upper(m.Promotion.Letter()))
	}

	WithMove(board, m, func() {
		if IsInCheck(board) {
			if HasLegalMoves(board) {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('#')
			}
		}
	})

	return sb.String()
}

// disambiguation returns the origin qualifier needed when another piece of
// the same type can reach the same square: the full square when others share
// both its rank and its file, the rank when one shares its file, otherwise
// the file.
func disambiguation(board *chess.Board, m chess.Move, sloppy bool) string {
	ambiguities, sameRank, sameFile := 0, 0, 0

	for _, other := range GenerateMoves(board, GenOptions{Pseudo: sloppy}) {
		if other.Piece != m.Piece || other.From == m.From || other.To != m.To {
			continue
		}
		ambiguities++
		if other.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if other.From.File() == m.From.File() {
			sameFile++
		}
	}

	switch {
	case ambiguities == 0:
		return ""
	case sameRank > 0 && sameFile > 0:
		return m.From.String()
	case sameFile > 0:
		return string(m.From.RankChar())
	default:
		return string(m.From.FileChar())
	}
}

var sanSuffix = regexp.MustCompile(`[+#]?[?!]*$`)

// StrippedSAN removes the first '=' and any trailing check or annotation marks.
func StrippedSAN(san string) string {
	return sanSuffix.ReplaceAllString(strings.Replace(san, "=", "", 1), "")
}

var sloppyMove = regexp.MustCompile(`([pnrqkPNRQK])?([a-f][1-6])x?-?([a-f][1-6])([qrnQRN])?`)

// FromSAN finds the legal move written as text. Sloppy mode also accepts
// over-disambiguated SAN and coordinate forms such as "b1c3", "Nb1-c3" or
// "a5a6q".
func FromSAN(board *chess.Board, text string, sloppy bool) (chess.Move, bool) {
	clean := StrippedSAN(text)

	var piece chess.PieceType
	from, to := chess.NoSquare, chess.NoSquare
	var promotion chess.PieceType
	matched := false

	if sloppy {
		if groups := sloppyMove.FindStringSubmatch(clean); groups != nil {
			matched = true
			if groups[1] != "" {
				piece = chess.PieceTypeFromLetter(groups[1][0])
			}
			from, _ = chess.ParseSquare(groups[2])
			to, _ = chess.ParseSquare(groups[3])
			if groups[4] != "" {
				promotion = chess.PieceTypeFromLetter(groups[4][0])
			}
		}
	}

	for _, m := range GenerateMoves(board, GenOptions{}) {
		if clean == StrippedSAN(ToSAN(board, m, false)) ||
			(sloppy && clean == StrippedSAN(ToSAN(board, m, true))) {
			return m, true
		}
		if matched &&
			(piece == chess.NoPieceType || piece == m.Piece) &&
			from == m.From && to == m.To &&
			(promotion == chess.NoPieceType || promotion == m.Promotion) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// upper converts a lowercase ASCII letter to uppercase.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
