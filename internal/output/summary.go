package output

import (
	"github.com/lgbarn/minichess-go/internal/chess"
)

// PlayedMove is one move of a replayed record.
type PlayedMove struct {
	Move       chess.Move
	SAN        string
	MoveNumber int
}

// GameSummary is the outcome of replaying one game record.
type GameSummary struct {
	Number  int
	Tags    []chess.Tag
	Moves   []PlayedMove
	PGN     string // the record regenerated from the replayed game
	FEN     string // final position
	Diagram string // final position as a text diagram
	Status  string
	Err     error
}

// Result returns the Result tag, or "*" when it is missing.
func (s *GameSummary) Result() string {
	for _, tag := range s.Tags {
		if tag.Key == chess.ResultTag {
			return tag.Value
		}
	}
	return "*"
}
