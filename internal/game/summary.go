package game

import (
	"github.com/lgbarn/minichess-go/internal/chess"
	"github.com/lgbarn/minichess-go/internal/engine"
	"github.com/lgbarn/minichess-go/internal/output"
)

// Summary describes the game as it stands: tags, moves with their move
// numbers, the regenerated record and the final position.
func (g *Game) Summary(number int, opts PGNOptions) *output.GameSummary {
	moves := make([]output.PlayedMove, 0, g.board.HistoryLen())
	g.replay(func(m chess.Move) {
		moves = append(moves, output.PlayedMove{
			Move:       m,
			SAN:        engine.ToSAN(g.board, m, false),
			MoveNumber: g.board.MoveNumber,
		})
	})
	return &output.GameSummary{
		Number:  number,
		Tags:    g.Header(),
		Moves:   moves,
		PGN:     g.PGN(opts),
		FEN:     g.FEN(),
		Diagram: g.Ascii(),
		Status:  g.Status(),
	}
}
