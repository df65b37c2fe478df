package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"FENError", NewFENError(FENRowCount), ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestFENError(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{FENOK, "No errors."},
		{FENFieldCount, "FEN string must contain four space-delimited fields."},
		{FENMoveNumber, "4th field (move number) must be a positive integer."},
		{FENHalfMoves, "3rd field (half move counter) must be a non-negative integer."},
		{FENSideToMove, "2nd field (side to move) is invalid."},
		{FENRowCount, "1st field (piece positions) does not contain 6 '/'-delimited rows."},
		{FENConsecutiveNums, "1st field (piece positions) is invalid [consecutive numbers]."},
		{FENInvalidPiece, "1st field (piece positions) is invalid [invalid piece]."},
		{FENRowTooLarge, "1st field (piece positions) is invalid [row too large]."},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code %d", tt.code), func(t *testing.T) {
			e := NewFENError(tt.code)
			if e.Code != tt.code || e.Message != tt.want {
				t.Errorf("NewFENError(%d) = {%d, %q}, want {%d, %q}", tt.code, e.Code, e.Message, tt.code, tt.want)
			}
			if !strings.Contains(e.Error(), tt.want) {
				t.Errorf("Error() = %q, should contain %q", e.Error(), tt.want)
			}
		})
	}

	wrapped := fmt.Errorf("loading position: %w", NewFENError(FENSideToMove))
	var fenErr *FENError
	if !errors.As(wrapped, &fenErr) {
		t.Fatal("errors.As() could not extract FENError")
	}
	if fenErr.Code != FENSideToMove {
		t.Errorf("fenErr.Code = %d, want %d", fenErr.Code, FENSideToMove)
	}
}

func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameNum:  5,
				PlyNum:   12,
				MoveText: "Nxe5",
				File:     "games.pgn",
			},
			contains: []string{"game 5", "ply 12", "Nxe5", "games.pgn", "illegal move"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:     ErrParseFailure,
				GameNum: 1,
			},
			contains: []string{"game 1", "parse failure"},
		},
		{
			name:     "no context",
			err:      &GameError{Err: ErrParseFailure},
			contains: []string{"parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		GameNum:  3,
		PlyNum:   24,
		MoveText: "Qb5#",
	}

	wrapped := fmt.Errorf("processing failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Err:  ErrParseFailure,
		File: "tournament.pgn",
		Line: 100,
	}

	msg := err.Error()
	for _, s := range []string{"tournament.pgn", "100", "parse failure"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(err, ErrParseFailure) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
