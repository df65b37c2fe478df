package parser

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// Result tokens that may end the movetext.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// ResultTokens lists every accepted result token.
var ResultTokens = []string{ResultWhiteWins, ResultBlackWins, ResultDraw, ResultUnknown}

var (
	variationPattern = regexp.MustCompile(`\([^()]*\)`)
	moveNumber       = regexp.MustCompile(`\d+\.(?:\.\.)?`)
	ellipsis         = regexp.MustCompile(`\.\.\.`)
	nagPattern       = regexp.MustCompile(`\$\d+`)
)

// IsResult reports whether tok is a result token.
func IsResult(tok string) bool {
	for _, r := range ResultTokens {
		if tok == r {
			return true
		}
	}
	return false
}

// EncodeComment hides comment text inside a token that the movetext
// clean-up expressions cannot match.
func EncodeComment(text string) string {
	return "{" + hex.EncodeToString([]byte(text)) + "}"
}

// DecodeComment returns the text of a token produced by EncodeComment.
// ok is false for any other token.
func DecodeComment(tok string) (text string, ok bool) {
	if len(tok) < 2 || tok[0] != '{' || tok[len(tok)-1] != '}' {
		return "", false
	}
	b, err := hex.DecodeString(tok[1 : len(tok)-1])
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Tokenize reduces movetext to move, encoded comment and result tokens.
// Move numbers, variations and numeric annotation glyphs are dropped.
func Tokenize(movetext, newline string) []string {
	re := regexpsFor(newline)
	nl := re.newline
	ms := re.comment.ReplaceAllStringFunc(movetext, func(c string) string {
		if c[0] == '{' {
			return " " + EncodeComment(nl.ReplaceAllString(c[1:len(c)-1], " ")) + " "
		}
		return " " + EncodeComment(strings.TrimPrefix(nl.ReplaceAllString(c[1:], ""), " ")) + " "
	})
	ms = nl.ReplaceAllString(ms, " ")

	for variationPattern.MatchString(ms) {
		ms = variationPattern.ReplaceAllString(ms, "")
	}
	ms = moveNumber.ReplaceAllString(ms, "")
	ms = ellipsis.ReplaceAllString(ms, "")
	ms = nagPattern.ReplaceAllString(ms, "")
	return strings.Fields(ms)
}

// GameRecord is the parsed form of one game record.
type GameRecord struct {
	Tags   []chess.Tag
	Tokens []string
}

// Parse splits a game record into tags and movetext tokens.
func Parse(text, newline string) *GameRecord {
	header, movetext := SplitHeader(text, newline)
	return &GameRecord{
		Tags:   ParseTags(header, newline),
		Tokens: Tokenize(movetext, newline),
	}
}
