package output

import (
	"strings"
	"unicode/utf8"
)

// LineWriter joins movetext units with single spaces and starts a new line
// before a unit that would pass the maximum width. A unit holding a comment
// is broken between words instead of being moved whole. Widths count runes.
type LineWriter struct {
	parts         []string
	lineLength    int
	maxLineLength int
	newline       string
	written       bool
}

// NewLineWriter creates a LineWriter.
func NewLineWriter(maxLineLength int, newline string) *LineWriter {
	return &LineWriter{
		maxLineLength: maxLineLength,
		newline:       newline,
	}
}

// Wrap lays out units at maxWidth. A width of zero or less joins them on
// one line.
func Wrap(units []string, maxWidth int, newline string) string {
	if maxWidth <= 0 {
		return strings.Join(units, " ")
	}
	lw := NewLineWriter(maxWidth, newline)
	for _, u := range units {
		lw.Write(u)
	}
	return lw.String()
}

// Write appends one unit.
func (o *LineWriter) Write(unit string) {
	first := !o.written
	o.written = true
	n := utf8.RuneCountInString(unit)

	if o.lineLength+n > o.maxLineLength && strings.Contains(unit, "{") {
		if !first {
			o.push(" ")
			o.lineLength++
		}
		o.writeWords(unit)
		return
	}

	if o.lineLength+n > o.maxLineLength && !first {
		o.strip()
		o.NewLine()
	} else if !first {
		o.push(" ")
		o.lineLength++
	}
	o.push(unit)
	o.lineLength += n
}

// writeWords writes a unit word by word, breaking lines between words.
func (o *LineWriter) writeWords(unit string) {
	for _, word := range strings.Split(unit, " ") {
		if word == "" {
			continue
		}
		n := utf8.RuneCountInString(word)
		if o.lineLength > 0 && o.lineLength+n > o.maxLineLength {
			for o.strip() {
				o.lineLength--
			}
			o.NewLine()
		}
		o.push(word)
		o.push(" ")
		o.lineLength += n + 1
	}
	if o.strip() {
		o.lineLength--
	}
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	o.push(o.newline)
	o.lineLength = 0
}

func (o *LineWriter) push(s string) {
	o.parts = append(o.parts, s)
}

// strip drops one trailing space.
func (o *LineWriter) strip() bool {
	if len(o.parts) > 0 && o.parts[len(o.parts)-1] == " " {
		o.parts = o.parts[:len(o.parts)-1]
		return true
	}
	return false
}

// String returns everything written so far.
func (o *LineWriter) String() string {
	return strings.Join(o.parts, "")
}
