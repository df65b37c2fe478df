package engine

import (
	"testing"

	"github.com/lgbarn/minichess-go/internal/chess"
)

func TestToSAN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		promo    chess.PieceType
		want     string
	}{
		{"pawn push", InitialFEN, "e2", "e3", 0, "e3"},
		{"knight", InitialFEN, "b1", "c3", 0, "Nc3"},
		{"pawn capture names origin file", "4k1/6/6/1p1n2/2P3/5K w 0 1", "c2", "d3", 0, "cxd3"},
		{"piece capture", "4k1/6/6/1n4/3N2/4K1 w 0 1", "d2", "b3", 0, "Nxb3"},
		{"promotion with check", "4k1/P5/6/6/6/4K1 w 0 1", "a5", "a6", chess.Queen, "a6=Q+"},
		{"promotion without check", "4k1/P5/6/6/6/4K1 w 0 1", "a5", "a6", chess.Knight, "a6=N"},
		{"checkmate", "k5/4Q1/2K3/6/6/6 w 0 1", "e5", "b5", 0, "Qb5#"},
		{"rooks on one rank use the file", "k5/6/6/K5/6/R4R w 0 1", "a1", "c1", 0, "Rac1"},
		{"rooks on one rank use the file too", "k5/6/6/K5/6/R4R w 0 1", "f1", "c1", 0, "Rfc1"},
		{"rooks on one file use the rank", "5k/R5/6/5K/6/R5 w 0 1", "a1", "a3", 0, "R1a3"},
		{"rooks on one file use the rank too", "5k/R5/6/5K/6/R5 w 0 1", "a5", "a3", 0, "R5a3"},
		{"knights on neither use the file", "k5/6/6/6/3N2/N4K w 0 1", "a1", "b3", 0, "Nab3"},
		{"knights on neither use the file too", "k5/6/6/6/3N2/N4K w 0 1", "d2", "b3", 0, "Ndb3"},
		{"unshared target needs nothing", "k5/6/6/6/3N2/N4K w 0 1", "a1", "c2", 0, "Nc2"},
		{"rank and file shared use the square", "4k1/6/6/Q5/5K/Q1Q3 w 0 1", "a1", "b2", 0, "Qa1b2"},
		{"only file shared", "4k1/6/6/Q5/5K/Q1Q3 w 0 1", "a3", "b2", 0, "Q3b2"},
		{"only rank shared", "4k1/6/6/Q5/5K/Q1Q3 w 0 1", "c1", "b2", 0, "Qcb2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			from, to := sq(t, tt.from), sq(t, tt.to)
			var move *chess.Move
			for _, m := range GenerateMoves(board, GenOptions{}) {
				if m.From == from && m.To == to && m.Promotion == tt.promo {
					move = &m
					break
				}
			}
			if move == nil {
				t.Fatalf("no legal move %s%s in %s", tt.from, tt.to, tt.fen)
			}
			before := board.SaveState()
			if got := ToSAN(board, *move, false); got != tt.want {
				t.Errorf("ToSAN(%s%s) = %q, want %q", tt.from, tt.to, got, tt.want)
			}
			if board.SaveState() != before {
				t.Error("ToSAN() changed the board")
			}
		})
	}
}

func TestStrippedSAN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a6=Q+", "a6Q"},
		{"Qb5#", "Qb5"},
		{"Nc3!?", "Nc3"},
		{"e3??", "e3"},
		{"Rxc6+!", "Rxc6"},
		{"Nc3", "Nc3"},
	}
	for _, tt := range tests {
		if got := StrippedSAN(tt.in); got != tt.want {
			t.Errorf("StrippedSAN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromSAN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		text     string
		sloppy   bool
		wantOK   bool
		wantMove string
	}{
		{"exact", InitialFEN, "Nc3", false, true, "b1c3"},
		{"annotated", InitialFEN, "Nc3!?", false, true, "b1c3"},
		{"with check mark", "k5/4Q1/2K3/6/6/6 w 0 1", "Qb5#", false, true, "e5b5"},
		{"check mark omitted", "k5/4Q1/2K3/6/6/6 w 0 1", "Qb5", false, true, "e5b5"},
		{"promotion without equals", "4k1/P5/6/6/6/4K1 w 0 1", "a6R", false, true, "a5a6r"},
		{"coordinates rejected when strict", InitialFEN, "b1c3", false, false, ""},
		{"coordinates", InitialFEN, "b1c3", true, true, "b1c3"},
		{"coordinates with dash", InitialFEN, "b1-c3", true, true, "b1c3"},
		{"long algebraic", InitialFEN, "Nb1c3", true, true, "b1c3"},
		{"coordinate promotion", "4k1/P5/6/6/6/4K1 w 0 1", "a5a6n", true, true, "a5a6n"},
		{"coordinate promotion defaults to first choice", "4k1/P5/6/6/6/4K1 w 0 1", "a5a6", true, true, "a5a6q"},
		{"over-disambiguated", "k5/6/6/K5/6/R4R w 0 1", "Ra1c1", true, true, "a1c1"},
		{"ambiguous without qualifier", "k5/6/6/K5/6/R4R w 0 1", "Rc1", false, false, ""},
		{"wrong piece letter", InitialFEN, "Qc3", true, false, ""},
		{"illegal", InitialFEN, "e4", false, false, ""},
		{"empty", InitialFEN, "", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			m, ok := FromSAN(board, tt.text, tt.sloppy)
			if ok != tt.wantOK {
				t.Fatalf("FromSAN(%q, %v) ok = %v, want %v", tt.text, tt.sloppy, ok, tt.wantOK)
			}
			if ok && m.String() != tt.wantMove {
				t.Errorf("FromSAN(%q, %v) = %s, want %s", tt.text, tt.sloppy, m, tt.wantMove)
			}
		})
	}
}

// TestSANRoundTrip converts every legal move to SAN and back.
func TestSANRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"k5/6/6/K5/6/R4R w 0 1",
		"5k/R5/6/5K/6/R5 w 0 1",
		"4k1/6/6/Q5/5K/Q1Q3 w 0 1",
		"1r2k1/P5/6/6/6/4K1 w 0 1",
		"rnkqnr/pp1ppp/6/2p3/PPPPPP/RNKQNR w 0 2",
		"4k1/6/6/6/p5/4K1 b 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			for _, m := range GenerateMoves(board, GenOptions{}) {
				san := ToSAN(board, m, false)
				got, ok := FromSAN(board, san, false)
				if !ok || got != m {
					t.Errorf("FromSAN(ToSAN(%v) = %q) = %v, %v; want %v", m, san, got, ok, m)
				}
			}
		})
	}
}
