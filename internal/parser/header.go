package parser

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// DefaultNewline matches the line separators accepted when no explicit
// newline sequence is configured.
const DefaultNewline = `\r?\n`

var (
	tagKey   = regexp.MustCompile(`^\[([A-Z][A-Za-z]*)\s.*\]$`)
	tagValue = regexp.MustCompile(`^\[[A-Za-z]+\s"(.*)"\ *\]$`)
)

// newlineExpr returns the regular expression source matching one newline.
func newlineExpr(newline string) string {
	if newline == "" {
		return DefaultNewline
	}
	return regexp.QuoteMeta(newline)
}

type newlineRegexps struct {
	newline *regexp.Regexp
	header  *regexp.Regexp
	comment *regexp.Regexp
}

var regexpCache sync.Map // newline string -> *newlineRegexps

func regexpsFor(newline string) *newlineRegexps {
	if v, ok := regexpCache.Load(newline); ok {
		return v.(*newlineRegexps)
	}
	nl := newlineExpr(newline)
	re := &newlineRegexps{
		newline: regexp.MustCompile(nl),
		header:  regexp.MustCompile(`^(\[(?:` + nl + `|.)*\])(?:(?:` + nl + `){2}|(?:` + nl + `)*$)`),
		// a ; comment ends at the first newline, which it consumes
		comment: regexp.MustCompile(`\{[^}]*\}|;(?s:.*?)(?:` + nl + `|$)`),
	}
	v, _ := regexpCache.LoadOrStore(newline, re)
	return v.(*newlineRegexps)
}

// SplitHeader separates the leading tag block from the movetext. The tag
// block must be followed by a blank line or the end of the text. Leading
// whitespace is ignored. Text without a tag block is all movetext.
func SplitHeader(text, newline string) (header, movetext string) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	m := regexpsFor(newline).header.FindStringSubmatchIndex(text)
	if m == nil {
		return "", text
	}
	return text[m[2]:m[3]], text[m[1]:]
}

// ParseTags reads the [Key "Value"] lines of a header block. Lines without
// a capitalised tag name are skipped; a tag whose value is not quoted gets
// an empty value.
func ParseTags(header, newline string) []chess.Tag {
	if header == "" {
		return nil
	}
	var tags []chess.Tag
	for _, line := range regexpsFor(newline).newline.Split(header, -1) {
		km := tagKey.FindStringSubmatch(line)
		if km == nil {
			continue
		}
		tag := chess.Tag{Key: km[1]}
		if vm := tagValue.FindStringSubmatch(line); vm != nil {
			tag.Value = vm[1]
		}
		tags = append(tags, tag)
	}
	return tags
}
