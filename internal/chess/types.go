// Package chess provides the core types of the 6x6 variant: colours, pieces,
// squares, moves and the board state with its history stack.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the side-to-move letter used in position strings.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ParseColour converts a side-to-move letter back into a Colour.
func ParseColour(letter string) (Colour, bool) {
	switch letter {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return Black, false
}

// PieceType represents a piece kind. The variant has no bishop.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Rook
	Queen
	King
)

// String returns the name of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the lowercase letter of a piece type, or 0 for NoPieceType.
func (p PieceType) Letter() byte {
	letters := []byte{0, 'p', 'n', 'r', 'q', 'k'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return 0
}

// PieceTypeFromLetter maps a piece letter in either case to its type.
func PieceTypeFromLetter(letter byte) PieceType {
	switch letter | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	}
	return NoPieceType
}

// PromotionPieces lists the promotion choices in generation order.
var PromotionPieces = []PieceType{Queen, Rook, Knight}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Symbol returns the position-string letter: uppercase for White, lowercase for Black.
func (p Piece) Symbol() byte {
	l := p.Type.Letter()
	if l == 0 {
		return 0
	}
	if p.Colour == White {
		return l - 'a' + 'A'
	}
	return l
}

// PieceFromSymbol is the inverse of Symbol.
func PieceFromSymbol(symbol byte) (Piece, bool) {
	t := PieceTypeFromLetter(symbol)
	if t == NoPieceType {
		return Piece{}, false
	}
	colour := Black
	if symbol >= 'A' && symbol <= 'Z' {
		colour = White
	}
	return Piece{Type: t, Colour: colour}, true
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}
