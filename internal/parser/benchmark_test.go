package parser

import (
	"strings"
	"testing"
)

// Sample game records for benchmarks
const (
	shortPGN = `[Event "Test"]
[White "A"]
[Black "B"]
[Result "*"]

1. b3 b4 2. Nc3 Nd4 *
`

	annotatedPGN = `[Event "Annotated Game"]
[Site "Test"]
[Date "2024.01.01"]
[White "Lee"]
[Black "Park"]
[Result "1-0"]

1. b3 {A quiet start} b4 2. Nc3 {Heading for d5} Nd4 3. e3 Ndc6 4. Nd5 Nf4
; the knights trade
5. exf4 e4 6. Nf3 {Black has nothing better} 1-0
`

	variationsPGN = `[Event "With Variations"]
[White "A"]
[Black "B"]
[Result "*"]

1. b3 (1. c3 c4 2. Nd3 {Symmetric}) 1... b4 (1... c4 {Counter}) 2. Nc3
(2. e3 $1 {Solid}) 2... Nd4 3. a3 *
`
)

func BenchmarkParse(b *testing.B) {
	cases := map[string]string{
		"Short":          shortPGN,
		"Annotated":      annotatedPGN,
		"WithVariations": variationsPGN,
	}

	for name, pgn := range cases {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Parse(pgn, "")
			}
		})
	}
}

func BenchmarkTokenize(b *testing.B) {
	_, movetext := SplitHeader(annotatedPGN, "")
	for i := 0; i < b.N; i++ {
		Tokenize(movetext, "")
	}
}

func BenchmarkRecordReader_LargeInput(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(annotatedPGN)
		sb.WriteString("\n")
	}
	large := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := NewRecordReader(strings.NewReader(large), "")
		if _, err := rr.ReadAll(); err != nil {
			b.Fatal(err)
		}
	}
}
