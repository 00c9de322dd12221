package trivia

import (
	"sort"
	"strings"
	"testing"

	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/token"
)

func pipeline(t *testing.T, src string) []token.Token {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	return Attach(raw)
}

// TestAttachFullReconstruction checks that every token's leading trivia,
// its own raw text, and its trailing trivia, placed in source-offset order,
// reproduce the original source byte-for-byte. Token order alone does not:
// trivia on blank or comment-only lines is leading trivia of the next
// non-newline token, which comes after those lines' NEWLINE tokens.
func TestAttachFullReconstruction(t *testing.T) {
	srcs := []string{
		"value = 1  # inline\n\n# leading\nif value:\n    # nested\n    pass\n",
		"x = f\"hi {name}\"\n",
		"if a:\n    pass\nelse:\n    pass\n",
	}
	for _, src := range srcs {
		tokens := pipeline(t, src)
		var pieces []token.RawToken
		for _, tok := range tokens {
			pieces = append(pieces, tok.LeadingTrivia...)
			pieces = append(pieces, tok.RawToken)
			pieces = append(pieces, tok.TrailingTrivia...)
		}
		sort.SliceStable(pieces, func(i, j int) bool {
			return pieces[i].Span.Start.Offset < pieces[j].Span.Start.Offset
		})
		var b strings.Builder
		for _, p := range pieces {
			b.WriteString(p.Raw)
		}
		if got := b.String(); got != src {
			t.Errorf("reconstruction mismatch:\ngot:  %q\nwant: %q", got, src)
		}
	}
}

// TestAttachNoOverlap verifies each raw trivia token (identified by its
// kind and span, since zero-width trivia of different kinds can share a
// span) is attached to exactly one side of exactly one significant token —
// never duplicated, never dropped.
func TestAttachNoOverlap(t *testing.T) {
	src := "value = 1  # inline\n\n# leading\nif value:\n    # nested\n    pass\n"
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := Attach(raw)

	type triviaKey struct {
		kind token.Kind
		span token.Span
	}
	seen := map[triviaKey]int{}
	for _, tok := range tokens {
		for _, lt := range tok.LeadingTrivia {
			seen[triviaKey{lt.Kind, lt.Span}]++
		}
		for _, tt := range tok.TrailingTrivia {
			seen[triviaKey{tt.Kind, tt.Span}]++
		}
	}
	for _, rt := range raw {
		if !rt.Kind.IsTrivia() {
			continue
		}
		if count := seen[triviaKey{rt.Kind, rt.Span}]; count != 1 {
			t.Errorf("trivia %s span %v attached %d times, want exactly 1", rt.Kind, rt.Span, count)
		}
	}
}

// TestAttachTrailingComment verifies an inline comment before a newline
// attaches as trailing trivia of the preceding significant token, not
// leading trivia of the next one.
func TestAttachTrailingComment(t *testing.T) {
	tokens := pipeline(t, "value = 1  # inline\n")

	var assign *token.Token
	for i := range tokens {
		if tokens[i].Kind == token.NUMBER {
			assign = &tokens[i]
		}
	}
	if assign == nil {
		t.Fatal("no NUMBER token found")
	}
	var foundComment bool
	for _, tt := range assign.TrailingTrivia {
		if tt.Kind == token.COMMENT {
			foundComment = true
		}
	}
	if !foundComment {
		t.Errorf("expected inline comment as trailing trivia of the number literal, got %#v", assign.TrailingTrivia)
	}
}

// TestAttachLeadingCommentOnOwnLine verifies a comment on its own line
// attaches as leading trivia of the next significant token.
func TestAttachLeadingCommentOnOwnLine(t *testing.T) {
	tokens := pipeline(t, "# leading\nif value:\n    pass\n")

	var ifTok *token.Token
	for i := range tokens {
		if tokens[i].Kind == token.KEYWORD && tokens[i].Keyword.String() == "if" {
			ifTok = &tokens[i]
		}
	}
	if ifTok == nil {
		t.Fatal("no if keyword token found")
	}
	var foundComment bool
	for _, lt := range ifTok.LeadingTrivia {
		if lt.Kind == token.COMMENT {
			foundComment = true
		}
	}
	if !foundComment {
		t.Errorf("expected leading comment on the if keyword, got %#v", ifTok.LeadingTrivia)
	}
}
