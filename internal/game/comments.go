package game

import (
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// Comment is a comment attached to a position.
type Comment struct {
	FEN     string
	Comment string
}

var commentBraces = strings.NewReplacer("{", "[", "}", "]")

// SetComment attaches a comment to the current position. Braces are
// replaced by brackets so the comment survives a game record.
func (g *Game) SetComment(text string) {
	g.comments[g.FEN()] = commentBraces.Replace(text)
}

// GetComment returns the comment of the current position.
func (g *Game) GetComment() (string, bool) {
	c, ok := g.comments[g.FEN()]
	return c, ok
}

// DeleteComment removes and returns the comment of the current position.
func (g *Game) DeleteComment() (string, bool) {
	fen := g.FEN()
	c, ok := g.comments[fen]
	delete(g.comments, fen)
	return c, ok
}

// Comments returns the comments of the positions on the current line, in
// game order. Comments of positions no longer reached are dropped.
func (g *Game) Comments() []Comment {
	return g.pruneComments()
}

// DeleteComments removes every comment and returns those that were still
// on the current line.
func (g *Game) DeleteComments() []Comment {
	kept := g.pruneComments()
	g.comments = make(map[string]string)
	return kept
}

// pruneComments keeps only comments of positions reached from the start
// position through the moves made, and returns them in game order.
func (g *Game) pruneComments() []Comment {
	current := make(map[string]string)
	var ordered []Comment
	keep := func() {
		fen := g.FEN()
		c, ok := g.comments[fen]
		if !ok {
			return
		}
		if _, seen := current[fen]; !seen {
			ordered = append(ordered, Comment{FEN: fen, Comment: c})
		}
		current[fen] = c
	}
	g.replay(func(_ chess.Move) { keep() })
	keep()
	g.comments = current
	return ordered
}
