package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/minichess-go/internal/config"
)

// GameWriter is the interface for writing replayed games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *GameSummary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// PGNWriter writes games as regenerated game records separated by a blank
// line. Games that failed to replay are skipped.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game record, followed by its final position when the
// configuration asks for it.
func (pw *PGNWriter) WriteGame(game *GameSummary) error {
	if game.Err != nil {
		return nil
	}
	nl := pw.cfg.Output.Newline
	text := game.PGN + nl
	if pw.cfg.Output.ShowFEN {
		text += "{" + game.FEN + "}" + nl
	}
	if pw.cfg.Output.ShowBoard {
		text += strings.ReplaceAll(game.Diagram, "\n", nl)
	}
	text += nl
	_, err := io.WriteString(pw.w, text)
	return err
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*GameSummary
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*GameSummary, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(game *GameSummary) error {
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, game := range jw.games {
		out.Games = append(out.Games, GameToJSON(game))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
