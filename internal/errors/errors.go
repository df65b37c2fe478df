// Package errors provides sentinel errors and error types for the minichess
// engine. Structured types keep their context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates a game record that could not be read.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidSquare indicates a square name outside a1-f6.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FEN validation codes. The numbering leaves gaps where the 8x8 format had
// castling and en-passant checks.
const (
	FENOK              = 0
	FENFieldCount      = 1
	FENMoveNumber      = 2
	FENHalfMoves       = 3
	FENSideToMove      = 6
	FENRowCount        = 7
	FENConsecutiveNums = 8
	FENInvalidPiece    = 9
	FENRowTooLarge     = 10
	FENDuplicateKing   = 12
)

var fenMessages = map[int]string{
	FENOK:              "No errors.",
	FENFieldCount:      "FEN string must contain four space-delimited fields.",
	FENMoveNumber:      "4th field (move number) must be a positive integer.",
	FENHalfMoves:       "3rd field (half move counter) must be a non-negative integer.",
	FENSideToMove:      "2nd field (side to move) is invalid.",
	FENRowCount:        "1st field (piece positions) does not contain 6 '/'-delimited rows.",
	FENConsecutiveNums: "1st field (piece positions) is invalid [consecutive numbers].",
	FENInvalidPiece:    "1st field (piece positions) is invalid [invalid piece].",
	FENRowTooLarge:     "1st field (piece positions) is invalid [row too large].",
	FENDuplicateKing:   "1st field (piece positions) is invalid [more than one king of a colour].",
}

// FENError is a structured position-string rejection with a fixed code.
type FENError struct {
	Code    int
	Message string
}

// NewFENError returns the FENError for code with its fixed message.
func NewFENError(code int) *FENError {
	return &FENError{Code: code, Message: fenMessages[code]}
}

// Error returns the code and message.
func (e *FENError) Error() string {
	return fmt.Sprintf("%v: code %d: %s", ErrInvalidFEN, e.Code, e.Message)
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// GameError wraps errors with game context, including game number,
// ply position, and move information.
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input (0 if unknown)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a game-record reading error with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
