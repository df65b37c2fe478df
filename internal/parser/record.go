// Package parser splits game-record text into records, header tags and
// movetext tokens. It knows nothing about move legality; replaying the
// tokens is left to the game package.
package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/lgbarn/minichess-go/internal/errors"
)

// Record is one game record read from a multi-record input.
type Record struct {
	Number    int // 1-based position in the input
	StartLine int // line of the record's first non-blank line
	Text      string
}

// RecordReader splits input into game records. A new record starts at a tag
// line that follows movetext, or that follows the blank line closing a
// header block.
type RecordReader struct {
	reader  *bufio.Reader
	file    string
	lineNum int
	count   int
	err     error
	eof     bool

	pending    string
	hasPending bool
}

// NewRecordReader creates a RecordReader. The file name is only used in
// error messages and may be empty.
func NewRecordReader(r io.Reader, file string) *RecordReader {
	return &RecordReader{
		reader: bufio.NewReader(r),
		file:   file,
	}
}

// readLine returns the next input line including its terminator.
func (rr *RecordReader) readLine() (string, bool) {
	if rr.hasPending {
		rr.hasPending = false
		return rr.pending, true
	}
	if rr.eof {
		return "", false
	}
	line, err := rr.reader.ReadString('\n')
	if err != nil {
		rr.eof = true
		if err != io.EOF {
			rr.err = &errors.ParseError{Err: err, File: rr.file, Line: rr.lineNum + 1}
		}
		if len(line) == 0 {
			return "", false
		}
	}
	rr.lineNum++
	return line, true
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (rr *RecordReader) Next() (*Record, error) {
	var (
		sb           strings.Builder
		start        int
		sawTags      bool
		sawMovetext  bool
		headerClosed bool
		inComment    bool
	)

	for {
		line, ok := rr.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if start == 0 {
				continue
			}
			if sawTags && !sawMovetext {
				headerClosed = true
			}
			sb.WriteString(line)
			continue
		}

		isTag := !inComment && trimmed[0] == '['
		if start != 0 && isTag && (sawMovetext || headerClosed) {
			rr.pending, rr.hasPending = line, true
			break
		}
		if start == 0 {
			start = rr.lineNum
		}
		sb.WriteString(line)

		if isTag && !sawMovetext {
			sawTags = true
			continue
		}
		sawMovetext = true
		inComment = scanComments(trimmed, inComment)
	}

	if start == 0 {
		if rr.err != nil {
			return nil, rr.err
		}
		return nil, io.EOF
	}
	rr.count++
	return &Record{
		Number:    rr.count,
		StartLine: start,
		Text:      strings.TrimRightFunc(sb.String(), unicode.IsSpace),
	}, nil
}

// ReadAll returns every remaining record.
func (rr *RecordReader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := rr.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// scanComments reports whether a brace comment is still open at the end of
// a movetext line.
func scanComments(line string, inComment bool) bool {
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case inComment:
			if c == '}' {
				inComment = false
			}
		case c == '{':
			inComment = true
		case c == ';':
			return false
		}
	}
	return inComment
}
