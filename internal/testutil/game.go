package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/minichess-go/internal/game"
	"github.com/lgbarn/minichess-go/internal/parser"
)

// MustLoadFEN returns a game set up from fen. It calls t.Fatal if the
// position is rejected.
func MustLoadFEN(t testing.TB, fen string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) error = %v", fen, err)
	}
	return g
}

// MustLoadPGN returns a game loaded from a game record. It calls t.Fatal if
// the record does not load.
func MustLoadPGN(t testing.TB, pgn string) *game.Game {
	t.Helper()
	g := game.New()
	if err := g.LoadPGN(pgn, game.LoadOptions{}); err != nil {
		t.Fatalf("LoadPGN() error = %v\n%s", err, pgn)
	}
	return g
}

// PlayMoves makes each move in SAN. It calls t.Fatal on the first move that
// is not legal.
func PlayMoves(t testing.TB, g *game.Game, sans ...string) {
	t.Helper()
	for _, san := range sans {
		if _, err := g.Move(san, false); err != nil {
			t.Fatalf("Move(%q) in %s error = %v", san, g.FEN(), err)
		}
	}
}

// MustRecords splits input into game records. It calls t.Fatal on a read
// error or when no record is found.
func MustRecords(t testing.TB, input string) []*parser.Record {
	t.Helper()
	records, err := parser.NewRecordReader(strings.NewReader(input), "test").ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("no game records in:\n%s", input)
	}
	return records
}
