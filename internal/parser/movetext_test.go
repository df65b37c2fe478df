package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/minichess-go/internal/chess"
)

// decodeTokens replaces encoded comments with their text in braces so
// expectations stay readable.
func decodeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if text, ok := DecodeComment(tok); ok {
			out[i] = "{" + text + "}"
			continue
		}
		out[i] = tok
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		movetext string
		newline  string
		want     []string
	}{
		{
			name:     "numbered moves and result",
			movetext: "1. b3 b4 2. Nc3 Nd4 1/2-1/2",
			want:     []string{"b3", "b4", "Nc3", "Nd4", "1/2-1/2"},
		},
		{
			name:     "black to move first",
			movetext: "7... b4 8. c3",
			want:     []string{"b4", "c3"},
		},
		{
			name:     "spaced ellipsis",
			movetext: "1. ... b4",
			want:     []string{"b4"},
		},
		{
			name:     "comment protects its contents",
			movetext: "1. b3 {Nice move! 2. e4 (sic) $1 ; ok} b4 *",
			want:     []string{"b3", "{Nice move! 2. e4 (sic) $1 ; ok}", "b4", "*"},
		},
		{
			name:     "comment joins lines",
			movetext: "1. b3 {two\nlines} b4",
			want:     []string{"b3", "{two lines}", "b4"},
		},
		{
			name:     "comment touching moves",
			movetext: "1. b3{tight}b4",
			want:     []string{"b3", "{tight}", "b4"},
		},
		{
			name:     "empty comment",
			movetext: "1. b3 {} b4",
			want:     []string{"b3", "{}", "b4"},
		},
		{
			name:     "rest of line comment",
			movetext: "1. b3 ; a remark\nb4",
			want:     []string{"b3", "{a remark}", "b4"},
		},
		{
			name:     "nested variations",
			movetext: "1. b3 (1. c3 (1. d3 d4) c4) b4 (1... a4 {gone}) 2. Nc3",
			want:     []string{"b3", "b4", "Nc3"},
		},
		{
			name:     "numeric annotation glyphs",
			movetext: "1. b3 $1 b4 $14",
			want:     []string{"b3", "b4"},
		},
		{
			name:     "annotation suffixes stay on the move",
			movetext: "1. b3!? b4??",
			want:     []string{"b3!?", "b4??"},
		},
		{
			name:     "custom newline",
			movetext: "1. b3 b4<br />2. c3 {a<br />b}",
			newline:  "<br />",
			want:     []string{"b3", "b4", "c3", "{a b}"},
		},
		{
			name:     "rest of line comment ends at custom newline",
			movetext: "1. b3 ; rest<br />b4 ; last",
			newline:  "<br />",
			want:     []string{"b3", "{rest}", "b4", "{last}"},
		},
		{
			name:     "rest of line comment keeps plain line feeds under custom newline",
			movetext: "1. b3 ; one\ntwo<br />b4",
			newline:  "<br />",
			want:     []string{"b3", "{one\ntwo}", "b4"},
		},
		{
			name:     "rest of line comment before crlf",
			movetext: "1. b3 ; remark\r\nb4",
			want:     []string{"b3", "{remark}", "b4"},
		},
		{
			name:     "empty",
			movetext: "  \n ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.movetext, tt.newline)
			if tt.want == nil {
				if len(got) != 0 {
					t.Errorf("Tokenize() = %q, want no tokens", got)
				}
				return
			}
			if diff := cmp.Diff(tt.want, decodeTokens(got)); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeComment(t *testing.T) {
	tests := []struct {
		tok    string
		want   string
		wantOK bool
	}{
		{EncodeComment("plain"), "plain", true},
		{EncodeComment("ünïcødé ♞"), "ünïcødé ♞", true},
		{EncodeComment(""), "", true},
		{"{zz}", "", false},
		{"{abc}", "", false},
		{"b3", "", false},
		{"}", "", false},
	}
	for _, tt := range tests {
		got, ok := DecodeComment(tt.tok)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DecodeComment(%q) = %q, %v; want %q, %v", tt.tok, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEncodedCommentSurvivesCleanup(t *testing.T) {
	for _, text := range []string{"12. b3", "$5", "(x)", "1... b4", "a;b"} {
		got := Tokenize("{"+text+"}", "")
		if len(got) != 1 {
			t.Fatalf("Tokenize({%s}) = %q, want one token", text, got)
		}
		if decoded, ok := DecodeComment(got[0]); !ok || decoded != text {
			t.Errorf("round trip of %q = %q, %v", text, decoded, ok)
		}
	}
}

func TestIsResult(t *testing.T) {
	for _, tok := range ResultTokens {
		if !IsResult(tok) {
			t.Errorf("IsResult(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"1-1", "½-½", "b3", ""} {
		if IsResult(tok) {
			t.Errorf("IsResult(%q) = true, want false", tok)
		}
	}
}

func TestParse(t *testing.T) {
	rec := Parse("[SetUp \"1\"]\n[FEN \"k5/4Q1/2K3/6/6/6 w 0 1\"]\n\n1. Qb5#", "")

	wantTags := []chess.Tag{{Key: "SetUp", Value: "1"}, {Key: "FEN", Value: "k5/4Q1/2K3/6/6/6 w 0 1"}}
	if diff := cmp.Diff(wantTags, rec.Tags); diff != "" {
		t.Errorf("Parse() tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Qb5#"}, rec.Tokens); diff != "" {
		t.Errorf("Parse() tokens mismatch (-want +got):\n%s", diff)
	}
}
