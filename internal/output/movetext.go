// Package output lays out game records: tag lines, numbered move units and
// word wrapping, plus writers that emit finished records as PGN or JSON.
package output

import (
	"strconv"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// MovetextBuilder groups moves into numbered units such as "3. e3 e4".
// Comments stay in the unit of the move that reached their position.
type MovetextBuilder struct {
	units   []string
	current string
	started bool
}

// Comment attaches a comment to the position reached so far.
func (b *MovetextBuilder) Comment(text string) {
	if b.current != "" {
		b.current += " "
	}
	b.current += "{" + text + "}"
}

// Move appends a move made by colour at moveNumber. A record that starts
// with Black to move opens with "N. ...".
func (b *MovetextBuilder) Move(colour chess.Colour, moveNumber int, san string) {
	switch {
	case !b.started && colour == chess.Black:
		b.flush()
		b.current = strconv.Itoa(moveNumber) + ". ..."
	case colour == chess.White:
		b.flush()
		b.current = strconv.Itoa(moveNumber) + "."
	}
	b.started = true
	b.current += " " + san
}

func (b *MovetextBuilder) flush() {
	if b.current != "" {
		b.units = append(b.units, b.current)
		b.current = ""
	}
}

// Units returns the finished units, followed by result when it is set.
func (b *MovetextBuilder) Units(result string) []string {
	b.flush()
	units := make([]string, 0, len(b.units)+1)
	units = append(units, b.units...)
	if result != "" {
		units = append(units, result)
	}
	return units
}

// Options controls record layout.
type Options struct {
	MaxWidth int    // zero keeps all movetext on one line
	Newline  string // defaults to "\n"
}

func (o Options) newline() string {
	if o.Newline == "" {
		return "\n"
	}
	return o.Newline
}

// FormatTags renders one [Key "Value"] line per tag.
func FormatTags(tags []chess.Tag, newline string) string {
	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteString("[")
		sb.WriteString(tag.Key)
		sb.WriteString(` "`)
		sb.WriteString(tag.Value)
		sb.WriteString(`"]`)
		sb.WriteString(newline)
	}
	return sb.String()
}

// Layout renders a complete game record. The blank line between tags and
// movetext is only written when moves were played.
func Layout(tags []chess.Tag, units []string, hasMoves bool, opts Options) string {
	nl := opts.newline()
	var sb strings.Builder
	sb.WriteString(FormatTags(tags, nl))
	if len(tags) > 0 && hasMoves {
		sb.WriteString(nl)
	}
	sb.WriteString(Wrap(units, opts.MaxWidth, nl))
	return sb.String()
}
