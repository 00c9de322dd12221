package blockstruct

import (
	"strings"
	"testing"

	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/token"
)

func kinds(tokens []token.RawToken) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func kindsEqual(t *testing.T, got, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("kind count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind[%d] = %s, want %s\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

func lexRaw(t *testing.T, src string) []token.RawToken {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", src, err)
	}
	return result.Tokens
}

func TestInsertSimpleIndentDedent(t *testing.T) {
	raw := lexRaw(t, "if x:\n    pass\n")
	out := Insert(raw)

	var gotKinds []token.Kind
	for _, k := range kinds(out) {
		if k == token.WHITESPACE {
			continue
		}
		gotKinds = append(gotKinds, k)
	}

	want := []token.Kind{
		token.KEYWORD, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.KEYWORD, token.NEWLINE,
		token.DEDENT, token.EOF,
	}
	kindsEqual(t, gotKinds, want)
}

func TestInsertNestedIndentMultipleDedents(t *testing.T) {
	raw := lexRaw(t, "if x:\n    if y:\n        pass\n")
	out := Insert(raw)

	var indents, dedents int
	for _, tok := range out {
		switch tok.Kind {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	if indents != 2 {
		t.Errorf("indents = %d, want 2", indents)
	}
	if dedents != 2 {
		t.Errorf("dedents = %d, want 2", dedents)
	}
}

func TestInsertFlatSourceHasNoIndentDedent(t *testing.T) {
	raw := lexRaw(t, "x = 1\ny = 2\n")
	out := Insert(raw)
	for _, tok := range out {
		if tok.Kind == token.INDENT || tok.Kind == token.DEDENT {
			t.Errorf("unexpected %s in flat source", tok.Kind)
		}
	}
}

func TestInsertBlankLineInsideBlockDoesNotDedent(t *testing.T) {
	raw := lexRaw(t, "if x:\n    pass\n\n    pass\n")
	out := Insert(raw)

	var dedents int
	for _, tok := range out {
		if tok.Kind == token.DEDENT {
			dedents++
		}
	}
	// only the final dedent back to level 0 at EOF
	if dedents != 1 {
		t.Errorf("dedents = %d, want 1 (blank line must not trigger a dedent)", dedents)
	}
}

// TestInsertIndentedCommentLinePrecedesComment is a regression test: a
// buffered INDENTATION token must flush before a comment/blank token on the
// same line, not after, so raw-token concatenation reproduces the
// indentation ahead of the comment text (spec §8 scenario 1's
// "if value:\n    # nested\n    pass\n").
func TestInsertIndentedCommentLinePrecedesComment(t *testing.T) {
	raw := lexRaw(t, "if value:\n    # nested\n    pass\n")
	out := Insert(raw)

	var b strings.Builder
	for _, tok := range out {
		b.WriteString(tok.Raw)
	}
	if got, want := b.String(), "if value:\n    # nested\n    pass\n"; got != want {
		t.Errorf("raw concat = %q, want %q", got, want)
	}

	var commentIdx, whitespaceIdx int = -1, -1
	for i, tok := range out {
		if tok.Kind == token.COMMENT && commentIdx == -1 {
			commentIdx = i
		}
		if tok.Kind == token.WHITESPACE && tok.Raw == "    " && whitespaceIdx == -1 && commentIdx == -1 {
			whitespaceIdx = i
		}
	}
	if whitespaceIdx == -1 {
		t.Fatal("no flushed WHITESPACE token found before the comment")
	}
	if commentIdx == -1 {
		t.Fatal("no COMMENT token found")
	}
	if whitespaceIdx > commentIdx {
		t.Errorf("WHITESPACE token at index %d, want it before COMMENT token at index %d", whitespaceIdx, commentIdx)
	}
}

func TestInsertEOFUnwindsFullStack(t *testing.T) {
	raw := lexRaw(t, "if x:\n    if y:\n        pass\n")
	out := Insert(raw)

	last := out[len(out)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token kind = %s, want EOF", last.Kind)
	}
	secondLast := out[len(out)-2]
	if secondLast.Kind != token.DEDENT {
		t.Fatalf("second-to-last token kind = %s, want DEDENT", secondLast.Kind)
	}
}

func TestInsertIndentDedentCarryLevel(t *testing.T) {
	raw := lexRaw(t, "if x:\n    pass\n")
	out := Insert(raw)

	for _, tok := range out {
		if tok.Kind == token.INDENT {
			if tok.Level != 4 {
				t.Errorf("INDENT level = %d, want 4", tok.Level)
			}
		}
	}
}
