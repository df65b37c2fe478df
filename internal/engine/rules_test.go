package engine

import (
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "k5/6/6/6/6/5K w 0 1", true},
		{"K+N vs K", "k5/6/6/6/6/4NK w 0 1", true},
		{"K vs K+n", "kn4/6/6/6/6/5K w 0 1", true},
		{"K+N vs K+n", "kn4/6/6/6/6/4NK w 0 1", false},
		{"K+R vs K", "k5/6/6/6/6/4RK w 0 1", false},
		{"K+Q vs K", "k5/6/6/6/6/4QK w 0 1", false},
		{"K+P vs K", "k5/6/6/6/4P1/5K w 0 1", false},
		{"starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		check     bool
		checkmate bool
		stalemate bool
		draw      bool
		gameOver  bool
	}{
		{"starting position", InitialFEN, false, false, false, false, false},
		{"checkmate", "k5/1Q4/2K3/6/6/6 b 0 1", true, true, false, false, true},
		{"check with escape", "k5/6/2Q3/6/6/5K b 0 1", true, false, false, false, false},
		{"stalemate", "k5/2Q3/6/6/6/5K b 0 1", false, false, true, true, true},
		{"bare kings", "k5/6/6/6/6/5K w 0 1", false, false, false, true, true},
		{"clock reached", "kr4/6/6/6/6/4RK w 100 80", false, false, false, true, true},
		{"clock one short", "kr4/6/6/6/6/4RK w 99 80", false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board); got != tt.check {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.check)
			}
			if got := IsCheckmate(board); got != tt.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.checkmate)
			}
			if got := IsStalemate(board); got != tt.stalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.stalemate)
			}
			if got := IsDraw(board); got != tt.draw {
				t.Errorf("IsDraw() = %v, want %v", got, tt.draw)
			}
			if got := IsGameOver(board); got != tt.gameOver {
				t.Errorf("IsGameOver() = %v, want %v", got, tt.gameOver)
			}
			if IsCheckmate(board) && IsStalemate(board) {
				t.Error("IsCheckmate() and IsStalemate() both true")
			}
		})
	}
}

func TestAnalyzeDrawRules(t *testing.T) {
	got := AnalyzeDrawRules(mustBoard(t, "k5/2Q3/6/6/6/5K b 100 1"))
	want := DrawRuleResult{HasFiftyMoveRule: true, HasStalemate: true}
	if got != want {
		t.Errorf("AnalyzeDrawRules() = %+v, want %+v", got, want)
	}
	if !got.IsDraw() {
		t.Error("IsDraw() = false, want true")
	}
}

// TestRepetitionStaysOff shuffles knights back and forth so the same
// position occurs five times; repetition still never reports a draw.
func TestRepetitionStaysOff(t *testing.T) {
	board := mustBoard(t, "1n3k/6/6/6/6/KN4 w 0 1")
	for i := 0; i < 4; i++ {
		for _, san := range []string{"Nc3", "Nc4", "Nb1", "Nb6"} {
			MakeMove(board, findMove(t, board, san))
		}
	}

	if IsThreefoldRepetition(board) {
		t.Error("IsThreefoldRepetition() = true, want false")
	}
	if IsDraw(board) {
		t.Error("IsDraw() = true, want false")
	}

	before := board.SaveState()
	if !hasRepetition(board, 3) {
		t.Error("hasRepetition(3) = false, want true")
	}
	if hasRepetition(board, 6) {
		t.Error("hasRepetition(6) = true, want false")
	}
	if board.SaveState() != before {
		t.Error("hasRepetition() did not restore the board")
	}
}

func TestClockDraw(t *testing.T) {
	board := mustBoard(t, "1n3k/6/6/6/6/KN4 w 0 1")
	cycle := []string{"Nc3", "Nc4", "Nb1", "Nb6"}
	for i := 0; i < 100; i++ {
		if IsDraw(board) {
			t.Fatalf("IsDraw() = true after %d half-moves, want false", i)
		}
		MakeMove(board, findMove(t, board, cycle[i%len(cycle)]))
	}
	if board.HalfMoveClock != 100 {
		t.Errorf("HalfMoveClock = %d, want 100", board.HalfMoveClock)
	}
	if !IsDraw(board) {
		t.Error("IsDraw() after 100 half-moves = false, want true")
	}
	if board.Turn != chess.White || board.MoveNumber != 51 {
		t.Errorf("Turn, MoveNumber = %v, %d; want White, 51", board.Turn, board.MoveNumber)
	}
}
