package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/indentlang/langcore/internal/token"
)

// concatRaw reproduces source by concatenating every raw token's bytes,
// the same operation internal/render's lossless path performs.
func concatRaw(tokens []token.RawToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}

func TestLexLosslessConcat(t *testing.T) {
	cases := []string{
		"value = 1  # inline\n\n# leading\nif value:\n    pass\n",
		"x = f\"hello {name}!\"\n",
		"y = f'a{1+2}b{3}c'\n",
		"z = (a, b, c)\n",
	}
	for _, src := range cases {
		result, err := Lex(src)
		if err != nil {
			t.Fatalf("Lex(%q) error: %v", src, err)
		}
		if got := concatRaw(result.Tokens); got != src {
			t.Errorf("Lex(%q) raw concat = %q, want %q", src, got, src)
		}
	}
}

func TestLexFStringPreservesLeadingF(t *testing.T) {
	src := `f"hi {name}"`
	result, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var found bool
	for _, tok := range result.Tokens {
		if tok.Kind == token.FSTRING {
			found = true
			if !strings.HasPrefix(tok.Raw, "f\"") {
				t.Errorf("FSTRING raw = %q, want prefix %q", tok.Raw, "f\"")
			}
		}
	}
	if !found {
		t.Fatalf("no FSTRING token produced for %q", src)
	}
}

func TestLexFStringParts(t *testing.T) {
	result, err := Lex(`f"a{x}b{y+1}c"`)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var fs *token.RawToken
	for i := range result.Tokens {
		if result.Tokens[i].Kind == token.FSTRING {
			fs = &result.Tokens[i]
		}
	}
	if fs == nil {
		t.Fatal("no FSTRING token found")
	}
	want := []token.FStringPart{
		{Kind: token.FStringLiteral, Text: "a"},
		{Kind: token.FStringExpr, Text: "x"},
		{Kind: token.FStringLiteral, Text: "b"},
		{Kind: token.FStringExpr, Text: "y+1"},
		{Kind: token.FStringLiteral, Text: "c"},
	}
	if diff := cmp.Diff(want, fs.FStringParts); diff != "" {
		t.Errorf("FStringParts mismatch (-want +got):\n%s", diff)
	}
}

func TestLexIndentWidthInference(t *testing.T) {
	src := "if x:\n  pass\n"
	result, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if result.IndentWidth != 2 {
		t.Errorf("IndentWidth = %d, want 2", result.IndentWidth)
	}
}

func TestLexIndentWidthDefaultsWhenFlat(t *testing.T) {
	result, err := Lex("x = 1\n")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if result.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4 (default)", result.IndentWidth)
	}
}

func TestLexWithForcedIndentWidth(t *testing.T) {
	result, err := Lex("x = 1\n", WithIndentWidth(8))
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if result.IndentWidth != 8 {
		t.Errorf("IndentWidth = %d, want 8 (forced)", result.IndentWidth)
	}
}

func TestLexUnterminatedStringError(t *testing.T) {
	_, err := Lex("x = \"unterminated\n")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var lexErr *Error
	if e, ok := err.(*Error); ok {
		lexErr = e
	} else {
		t.Fatalf("error is %T, want *Error", err)
	}
	if lexErr.Pos.Line != 1 {
		t.Errorf("error line = %d, want 1", lexErr.Pos.Line)
	}
}

func TestLexBangIsIllegal(t *testing.T) {
	_, err := Lex("x = !y\n")
	if err == nil {
		t.Fatal("expected error for '!' token, got nil")
	}
}

func TestLexBlankLineProducesBlankThenNewline(t *testing.T) {
	result, err := Lex("\n")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	// Every line start emits an INDENTATION token, here of width zero,
	// ahead of the line's BLANK and NEWLINE.
	if len(result.Tokens) < 3 {
		t.Fatalf("expected at least INDENTATION,BLANK,NEWLINE; got %d tokens", len(result.Tokens))
	}
	if result.Tokens[1].Kind != token.BLANK {
		t.Errorf("second token kind = %s, want BLANK", result.Tokens[1].Kind)
	}
	if result.Tokens[2].Kind != token.NEWLINE {
		t.Errorf("third token kind = %s, want NEWLINE", result.Tokens[2].Kind)
	}
}

func TestLexParenSuppressesIndentation(t *testing.T) {
	src := "x = (\n    1,\n    2,\n)\n"
	result, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	// Lines 2-4 start inside the brackets; lines 1 and 5 start outside
	// them and carry a zero-width INDENTATION token.
	for _, tok := range result.Tokens {
		if tok.Kind == token.INDENTATION && tok.Span.Start.Line >= 2 && tok.Span.Start.Line <= 4 {
			t.Errorf("got INDENTATION token inside parens: %#v", tok)
		}
	}
}
