package ir

import (
	"testing"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/trivia"
)

func parseToIR(t *testing.T, src string, features feature.Set) *IrProgram {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)
	prog, err := parser.Parse(tokens, raw, result.IndentWidth, features)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return SurfaceToIR(prog)
}

// TestIRIdentityLaw checks ir_to_surface(surface_to_ir(P)) reproduces the
// same top-level statement count.
func TestIRIdentityLaw(t *testing.T) {
	src := "if value:\n    x = 1\n    y = 2\n"
	irp := parseToIR(t, src, feature.Default())

	prog, err := IRToSurface(irp, feature.Default())
	if err != nil {
		t.Fatalf("IRToSurface error: %v", err)
	}
	if len(prog.Body) != len(irp.Body) {
		t.Errorf("body length = %d, want %d", len(prog.Body), len(irp.Body))
	}
}

// TestIRToSurfaceRejectsGatedMatch covers the match-gate half of spec §8
// scenario 2 at the IR→surface boundary: a match statement surviving in an
// IR document, converted under a feature set that disables it, fails with
// a ConvertError rather than silently dropping the construct.
func TestIRToSurfaceRejectsGatedMatch(t *testing.T) {
	src := "match value:\n    case 1:\n        pass\n"
	irp := parseToIR(t, src, feature.Set{MatchStmt: true})

	_, err := IRToSurface(irp, feature.Set{MatchStmt: false})
	if err == nil {
		t.Fatal("expected ConvertError for a gated match statement, got nil")
	}
	if _, ok := err.(*ConvertError); !ok {
		t.Fatalf("error type = %T, want *ConvertError", err)
	}

	// Default features allow it straight through.
	if _, err := IRToSurface(irp, feature.Default()); err != nil {
		t.Errorf("IRToSurface with match enabled: unexpected error %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	srcs := []string{
		"x = 1\n",
		"if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n",
		"def f(a, b):\n    return a + b\n",
		"values = [x for x in items if x > 1]\n",
		"match value:\n    case 1:\n        pass\n    case _:\n        pass\n",
		"t = (a, b, c)\n",
	}
	for _, src := range srcs {
		irp := parseToIR(t, src, feature.Default())

		data, err := Marshal(irp)
		if err != nil {
			t.Fatalf("Marshal(%q) error: %v", src, err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal(%q) error: %v", src, err)
		}
		if len(got.Body) != len(irp.Body) {
			t.Errorf("%q: round-tripped body length = %d, want %d", src, len(got.Body), len(irp.Body))
		}
		if got.IndentWidth != irp.IndentWidth {
			t.Errorf("%q: round-tripped IndentWidth = %d, want %d", src, got.IndentWidth, irp.IndentWidth)
		}
	}
}

// TestJSONRoundTripMatchCaseReindent is a regression test: case bodies sit
// two levels deeper than the match statement itself (case header, then
// body), and that nesting must survive a JSON round trip and reindent.
func TestJSONRoundTripMatchCaseReindent(t *testing.T) {
	src := "match value:\n    case 1:\n        pass\n"
	irp := parseToIR(t, src, feature.Set{MatchStmt: true})

	data, err := Marshal(irp)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	prog, err := IRToSurface(got, feature.Default())
	if err != nil {
		t.Fatalf("IRToSurface error: %v", err)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(prog.Body))
	}
	match, ok := prog.Body[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("body[0] type = %T, want *ast.MatchStmt", prog.Body[0])
	}
	if got := match.Cases[0].Body.IndentLevel; got != 2 {
		t.Errorf("case body IndentLevel = %d, want 2", got)
	}
}

func TestHashDeterministic(t *testing.T) {
	irp := parseToIR(t, "x = 1\ny = 2\n", feature.Default())

	a, err := Hash(irp)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := Hash(irp)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a != b {
		t.Errorf("Hash is not deterministic across calls: %x != %x", a, b)
	}

	other := parseToIR(t, "x = 1\ny = 3\n", feature.Default())
	c, err := Hash(other)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == c {
		t.Errorf("Hash collided for distinct IR documents")
	}
}
