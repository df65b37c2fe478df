package chess

// Board represents a 6x6 board with all state needed for the game.
type Board struct {
	// Squares indexed by Square. Padding indices are never written.
	squares [BoardArraySize]Piece

	// Where the two kings are, for check detection. NoSquare when absent.
	kings [2]Square

	// Who has the next move.
	Turn Colour

	// The half-move clock since the last pawn move or capture.
	HalfMoveClock int

	// The current move number, incremented after Black moves.
	MoveNumber int

	history []HistoryEntry
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		kings:      [2]Square{NoSquare, NoSquare},
		Turn:       White,
		MoveNumber: 1,
	}
}

// Clear empties the board and resets counters and history.
func (b *Board) Clear() {
	*b = *NewBoard()
}

// Get returns the piece on sq, or the empty piece for an off-board square.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.squares[sq]
}

// Put places p on sq. It refuses an off-board square, an empty piece, and a
// second king of a colour whose king already stands on another square.
func (b *Board) Put(p Piece, sq Square) bool {
	if !sq.OnBoard() || p.IsEmpty() {
		return false
	}
	if p.Type == King && b.kings[p.Colour] != NoSquare && b.kings[p.Colour] != sq {
		return false
	}
	b.Set(sq, p)
	return true
}

// Remove clears sq and returns what stood there.
func (b *Board) Remove(sq Square) Piece {
	p := b.Get(sq)
	if p.IsEmpty() {
		return p
	}
	b.Set(sq, Piece{})
	return p
}

// Set writes p to sq without placement rules, keeping the king cache in step.
// Make and undo use it; sq must be on the board.
func (b *Board) Set(sq Square, p Piece) {
	old := b.squares[sq]
	if old.Type == King && b.kings[old.Colour] == sq {
		b.kings[old.Colour] = NoSquare
	}
	b.squares[sq] = p
	if p.Type == King {
		b.kings[p.Colour] = sq
	}
}

// King returns the square of the king of colour c, or NoSquare.
func (b *Board) King(c Colour) Square {
	return b.kings[c]
}

// Kings returns both cached king squares, indexed by Colour.
func (b *Board) Kings() [2]Square {
	return b.kings
}

// SetKings restores the king cache from a history entry.
func (b *Board) SetKings(k [2]Square) {
	b.kings = k
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	for _, sq := range AllSquares {
		if !b.squares[sq].IsEmpty() {
			n++
		}
	}
	return n
}

// PushHistory records a history entry.
func (b *Board) PushHistory(e HistoryEntry) {
	b.history = append(b.history, e)
}

// PopHistory removes and returns the most recent history entry.
func (b *Board) PopHistory() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	e := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	return e, true
}

// HistoryLen returns the number of moves made since the position was set.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// HistoryMoves returns the moves of the history stack, oldest first.
func (b *Board) HistoryMoves() []Move {
	moves := make([]Move, len(b.history))
	for i, e := range b.history {
		moves[i] = e.Move
	}
	return moves
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.history = append([]HistoryEntry(nil), b.history...)
	return newBoard
}

// BoardState captures the board without its history, for comparisons.
type BoardState struct {
	Squares       [BoardArraySize]Piece
	Kings         [2]Square
	Turn          Colour
	HalfMoveClock int
	MoveNumber    int
	HistoryLen    int
}

// SaveState captures the current board state.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.squares,
		Kings:         b.kings,
		Turn:          b.Turn,
		HalfMoveClock: b.HalfMoveClock,
		MoveNumber:    b.MoveNumber,
		HistoryLen:    len(b.history),
	}
}
