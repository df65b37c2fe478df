package chess

import "strings"

// Flags is a bitset describing a move. Bits may co-occur, e.g. a capture
// that promotes carries FlagCapture|FlagPromotion.
type Flags uint8

const (
	FlagNormal Flags = 1 << iota
	FlagCapture
	FlagBigPawn // reserved: the variant has no double pawn push
	FlagPromotion
)

var flagLetters = []struct {
	flag   Flags
	letter byte
}{
	{FlagNormal, 'n'},
	{FlagCapture, 'c'},
	{FlagBigPawn, 'b'},
	{FlagPromotion, 'p'},
}

// Has reports whether all bits of o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// String returns the flag letters in bit order, e.g. "cp".
func (f Flags) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			sb.WriteByte(fl.letter)
		}
	}
	return sb.String()
}

// Move is a single move in internal form.
type Move struct {
	Colour    Colour
	From      Square
	To        Square
	Flags     Flags
	Piece     PieceType
	Captured  PieceType // NoPieceType unless Flags has FlagCapture
	Promotion PieceType // NoPieceType unless Flags has FlagPromotion
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Flags&FlagCapture != 0
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Flags&FlagPromotion != 0
}

// String returns the coordinate form of the move, e.g. "a5a6q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter())
	}
	return s
}

// HistoryEntry records what is needed to undo one move.
type HistoryEntry struct {
	Move          Move
	Kings         [2]Square
	Turn          Colour
	HalfMoveClock int
	MoveNumber    int
}
