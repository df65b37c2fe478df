package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/errors"
)

// InitialFEN is the position string of the starting position.
const InitialFEN = "rnkqnr/pppppp/6/6/PPPPPP/RNKQNR w 0 1"

// ValidateFEN checks the structure of a position string. It returns nil or
// a *errors.FENError carrying the first failed check.
func ValidateFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 4 {
		return errors.NewFENError(errors.FENFieldCount)
	}

	if n, err := strconv.Atoi(fields[3]); err != nil || n <= 0 {
		return errors.NewFENError(errors.FENMoveNumber)
	}
	if n, err := strconv.Atoi(fields[2]); err != nil || n < 0 {
		return errors.NewFENError(errors.FENHalfMoves)
	}
	if _, ok := chess.ParseColour(fields[1]); !ok {
		return errors.NewFENError(errors.FENSideToMove)
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != chess.BoardSize {
		return errors.NewFENError(errors.FENRowCount)
	}

	var kings [2]int
	for _, row := range rows {
		sum := 0
		previousWasNumber := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '0' && c <= '9' {
				if previousWasNumber {
					return errors.NewFENError(errors.FENConsecutiveNums)
				}
				sum += int(c - '0')
				previousWasNumber = true
				continue
			}
			p, ok := chess.PieceFromSymbol(c)
			if !ok {
				return errors.NewFENError(errors.FENInvalidPiece)
			}
			if p.Type == chess.King {
				kings[p.Colour]++
			}
			sum++
			previousWasNumber = false
		}
		if sum != chess.BoardSize {
			return errors.NewFENError(errors.FENRowTooLarge)
		}
	}

	if kings[chess.White] > 1 || kings[chess.Black] > 1 {
		return errors.NewFENError(errors.FENDuplicateKing)
	}
	return nil
}

// NewBoardFromFEN creates a board from a position string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	if err := ValidateFEN(fen); err != nil {
		return nil, err
	}
	fields := strings.Fields(fen)

	board := chess.NewBoard()
	parsePiecePositions(board, fields[0])

	board.Turn, _ = chess.ParseColour(fields[1])
	board.HalfMoveClock, _ = strconv.Atoi(fields[2])
	board.MoveNumber, _ = strconv.Atoi(fields[3])
	return board, nil
}

// parsePiecePositions places the pieces of a validated placement field.
func parsePiecePositions(board *chess.Board, positions string) {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '0' && c <= '9':
			file += int(c - '0')
		default:
			p, _ := chess.PieceFromSymbol(c)
			board.Put(p, chess.NewSquare(file, rank))
			file++
		}
	}
}

// NewInitialBoard creates a board with the starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}

// BoardToFEN converts a board to a position string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.Turn.Letter())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfMoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
