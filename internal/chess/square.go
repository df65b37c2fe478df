package chess

// Square is a board index: rank in the high nibble, file in the low nibble.
// a1 is 0x00 and f6 is 0x55. Files 6-15 and ranks 6-15 are padding, so
// stepping off a playable square by any move offset (including uint8
// wrap-around below zero) lands on a square that OnBoard rejects.
type Square uint8

// Board dimensions.
const (
	BoardSize = 6

	FileBase = 'a'
	RankBase = '1'

	// BoardArraySize covers every playable index (0x00-0x55).
	BoardArraySize = 0x60

	// NoSquare marks an absent king or an unset square.
	NoSquare Square = 0xFF
)

// playable is a 256-bit mask with one bit per playable index.
var playable [4]uint64

func init() {
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			sq := r<<4 | f
			playable[sq>>6] |= 1 << (sq & 63)
		}
	}
}

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// Rank returns the zero-based rank (0 is rank "1").
func (s Square) Rank() int {
	return int(s >> 4)
}

// File returns the zero-based file (0 is file "a").
func (s Square) File() int {
	return int(s & 0x0F)
}

// OnBoard reports whether s is one of the 36 playable squares.
func (s Square) OnBoard() bool {
	return playable[s>>6]&(1<<(s&63)) != 0
}

// Offset returns s moved by a signed index step. The result may be off-board.
func (s Square) Offset(step int) Square {
	return Square(int(s) + step)
}

// FileChar returns the file letter of s.
func (s Square) FileChar() byte {
	return byte(FileBase + s.File())
}

// RankChar returns the rank digit of s.
func (s Square) RankChar() byte {
	return byte(RankBase + s.Rank())
}

// String returns the algebraic name of s, or "-" for an off-board index.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}

// ParseSquare converts an algebraic name such as "c4" into a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	f := int(name[0]) - FileBase
	r := int(name[1]) - RankBase
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// IsLight reports whether s is a light square. a1 is light.
func (s Square) IsLight() bool {
	return (s.Rank()+s.File())%2 == 0
}

// AllSquares lists the playable squares from rank 6 down to rank 1,
// files a to f within each rank.
var AllSquares []Square

func init() {
	for r := BoardSize - 1; r >= 0; r-- {
		for f := 0; f < BoardSize; f++ {
			AllSquares = append(AllSquares, NewSquare(f, r))
		}
	}
}
