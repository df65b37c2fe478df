package output

import (
	"github.com/lgbarn/minichess-go/internal/chess"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Number   int               `json:"number"`
	Tags     map[string]string `json:"tags"`
	Moves    []JSONMove        `json:"moves,omitempty"`
	Result   string            `json:"result"`
	PlyCount int               `json:"plyCount"`
	FinalFEN string            `json:"finalFEN,omitempty"`
	Status   string            `json:"status,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Flags      string `json:"flags"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game summary to JSON format.
func GameToJSON(s *GameSummary) *JSONGame {
	jg := &JSONGame{
		Number:   s.Number,
		Tags:     copyTags(s.Tags),
		Result:   s.Result(),
		PlyCount: len(s.Moves),
		FinalFEN: s.FEN,
		Status:   s.Status,
	}
	if s.Err != nil {
		jg.Error = s.Err.Error()
	}
	if len(s.Moves) > 0 {
		jg.Moves = make([]JSONMove, len(s.Moves))
		for i, pm := range s.Moves {
			jg.Moves[i] = convertMove(pm)
		}
	}
	return jg
}

// copyTags flattens the ordered tags into a map.
func copyTags(tags []chess.Tag) map[string]string {
	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		result[tag.Key] = tag.Value
	}
	return result
}

func convertMove(pm PlayedMove) JSONMove {
	m := pm.Move
	jm := JSONMove{
		MoveNumber: pm.MoveNumber,
		Color:      colourName(m.Colour),
		SAN:        pm.SAN,
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      m.Piece.String(),
		Flags:      m.Flags.String(),
	}
	if m.Captured != chess.NoPieceType {
		jm.Captured = m.Captured.String()
	}
	if m.Promotion != chess.NoPieceType {
		jm.Promotion = m.Promotion.String()
	}
	return jm
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
