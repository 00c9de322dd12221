package render

import (
	"testing"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/trivia"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)
	prog, err := parser.Parse(tokens, raw, result.IndentWidth, feature.Default())
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return prog
}

// TestLosslessLaw covers spec §8 scenario 1: rendering an unedited parse in
// lossless mode reproduces the source byte-for-byte, comments included.
func TestLosslessLaw(t *testing.T) {
	src := "value = 1  # inline\n\n# leading\nif value:\n    # nested\n    pass\n"
	prog := parseProgram(t, src)

	got := Render(prog, Config{Mode: Lossless})
	if got != src {
		t.Errorf("lossless render mismatch:\ngot:  %q\nwant: %q", got, src)
	}
}

// TestLosslessDegradesWhenDirty checks that a program marked dirty never
// renders from its (possibly stale) raw tokens in lossless mode.
func TestLosslessDegradesWhenDirty(t *testing.T) {
	prog := parseProgram(t, "x = 1\n")
	prog.Dirty = true

	got := Render(prog, Config{Mode: Lossless})
	want := renderPretty(prog, Config{Mode: Pretty})
	if got != want {
		t.Errorf("dirty lossless render = %q, want pretty fallback %q", got, want)
	}
}

// TestPrettyRoundTripCongruence reparses a pretty render and checks the
// top-level statement count survives (spec §8 pretty round-trip congruence).
func TestPrettyRoundTripCongruence(t *testing.T) {
	srcs := []string{
		"x = 1\n",
		"if a:\n    pass\nelse:\n    pass\n",
		"def f(a, b):\n    return a + b\n",
	}
	for _, src := range srcs {
		prog := parseProgram(t, src)
		pretty := Render(prog, Config{Mode: Pretty})

		reparsed := parseProgram(t, pretty)
		if len(reparsed.Body) != len(prog.Body) {
			t.Errorf("%q: reparsed body length = %d, want %d", src, len(reparsed.Body), len(prog.Body))
		}
	}
}

// TestPrettyComprehension covers spec §8 scenario 3.
func TestPrettyComprehension(t *testing.T) {
	src := "values = [x for x in items if x > 1]\n"
	prog := parseProgram(t, src)
	pretty := Render(prog, Config{Mode: Pretty})

	reparsed := parseProgram(t, pretty)
	if len(reparsed.Body) != 1 {
		t.Fatalf("reparsed body length = %d, want 1", len(reparsed.Body))
	}
	assign, ok := reparsed.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.AssignStmt", reparsed.Body[0])
	}
	comp, ok := assign.Value.(*ast.ComprehensionExpr)
	if !ok {
		t.Fatalf("value type = %T, want *ast.ComprehensionExpr", assign.Value)
	}
	if comp.Kind != ast.ListComprehension {
		t.Errorf("comprehension kind = %v, want ListComprehension", comp.Kind)
	}
	if len(comp.For) != 1 {
		t.Fatalf("for-clauses = %d, want 1", len(comp.For))
	}
	if len(comp.For[0].Guards) != 1 {
		t.Errorf("guards = %d, want 1", len(comp.For[0].Guards))
	}
}

// TestPrecedenceParenthesization covers spec §8 scenario 5.
func TestPrecedenceParenthesization(t *testing.T) {
	withParens := parseProgram(t, "x = (a + b) * c\n")
	gotParens := Render(withParens, Config{Mode: Pretty})
	if !containsSubstring(gotParens, "(a + b) * c") {
		t.Errorf("rendered %q, want parens preserved around the additive group", gotParens)
	}

	chained := parseProgram(t, "x = a + b + c\n")
	gotChained := Render(chained, Config{Mode: Pretty})
	if containsSubstring(gotChained, "(") {
		t.Errorf("rendered %q, want no parens for a left-associative chain", gotChained)
	}

	reparsed := parseProgram(t, gotChained)
	assign := reparsed.Body[0].(*ast.AssignStmt)
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("value type = %T, want *ast.BinaryExpr", assign.Value)
	}
	// left-associative: outermost node's Left side is itself a BinaryExpr.
	if _, ok := bin.Left.(*ast.BinaryExpr); !ok {
		t.Errorf("outer left operand type = %T, want *ast.BinaryExpr (left-associative nesting)", bin.Left)
	}
}

func containsSubstring(s, sub string) bool {
	return len(s) >= len(sub) && (func() bool {
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return true
			}
		}
		return false
	})()
}

func TestReuseTokenRangesAdvisory(t *testing.T) {
	src := "x = 1\n"
	prog := parseProgram(t, src)

	withReuse := Render(prog, Config{Mode: Pretty, ReuseTokenRanges: true})
	withoutReuse := Render(prog, Config{Mode: Pretty, ReuseTokenRanges: false})
	if withReuse != withoutReuse {
		t.Errorf("ReuseTokenRanges changed output for an unedited tree: %q vs %q", withReuse, withoutReuse)
	}
}
