package parser

import (
	"testing"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/trivia"
)

func mustParse(t *testing.T, src string, features feature.Set) *ast.Program {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)
	prog, err := Parse(tokens, raw, result.IndentWidth, features)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return prog
}

func TestParseSimpleIfPass(t *testing.T) {
	prog := mustParse(t, "if value:\n    pass\n", feature.Default())
	if len(prog.Body) != 1 {
		t.Fatalf("statements = %d, want 1", len(prog.Body))
	}
	ifStmt, ok := prog.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.IfStmt", prog.Body[0])
	}
	if len(ifStmt.Body.Statements) != 1 {
		t.Fatalf("if body statements = %d, want 1", len(ifStmt.Body.Statements))
	}
	if _, ok := ifStmt.Body.Statements[0].(*ast.PassStmt); !ok {
		t.Errorf("if body statement type = %T, want *ast.PassStmt", ifStmt.Body.Statements[0])
	}
}

// TestParseMatchGate covers spec §8 scenario 2: parsing under a disabled
// feature set fails with a ParseError at the match keyword, while the
// default feature set parses successfully.
func TestParseMatchGate(t *testing.T) {
	src := "match value:\n    case 1:\n        pass\n"

	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)

	_, err = Parse(tokens, raw, result.IndentWidth, feature.Set{MatchStmt: false})
	if err == nil {
		t.Fatal("expected ParseError with match disabled, got nil")
	}
	parseErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if parseErr.Span.Start.Line != 1 || parseErr.Span.Start.Column != 1 {
		t.Errorf("error span start = %v, want line 1 column 1", parseErr.Span.Start)
	}

	prog := mustParse(t, src, feature.Set{MatchStmt: true})
	if _, ok := prog.Body[0].(*ast.MatchStmt); !ok {
		t.Fatalf("statement type = %T, want *ast.MatchStmt", prog.Body[0])
	}
}

// TestParseTupleVsGroupDisambiguation covers spec §8 scenario 4.
func TestParseTupleVsGroupDisambiguation(t *testing.T) {
	cases := []struct {
		src  string
		want func(ast.Expr) bool
	}{
		{"(a)\n", func(e ast.Expr) bool { _, ok := e.(*ast.GroupedExpr); return ok }},
		{"(a,)\n", func(e ast.Expr) bool {
			n, ok := e.(*ast.TupleExpr)
			return ok && len(n.Elements) == 1
		}},
		{"(a, b)\n", func(e ast.Expr) bool {
			n, ok := e.(*ast.TupleExpr)
			return ok && len(n.Elements) == 2
		}},
		{"(x for x in xs)\n", func(e ast.Expr) bool {
			n, ok := e.(*ast.ComprehensionExpr)
			return ok && n.Kind == ast.GeneratorComprehension
		}},
	}

	for _, c := range cases {
		prog := mustParse(t, c.src, feature.Default())
		exprStmt, ok := prog.Body[0].(*ast.ExprStmt)
		if !ok {
			t.Fatalf("%q: statement type = %T, want *ast.ExprStmt", c.src, prog.Body[0])
		}
		if !c.want(exprStmt.Value) {
			t.Errorf("%q: expression = %T, did not match expected shape", c.src, exprStmt.Value)
		}
	}
}

// TestParseStructuralErrorSpan covers spec §8 scenario 6.
func TestParseStructuralErrorSpan(t *testing.T) {
	src := "if :\n    pass\n"
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)

	_, err = Parse(tokens, raw, result.IndentWidth, feature.Default())
	if err == nil {
		t.Fatal("expected ParseError, got nil")
	}
	parseErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if parseErr.Span.Start.Line != 1 {
		t.Errorf("error span start line = %d, want 1", parseErr.Span.Start.Line)
	}
}

func TestParseCompareChain(t *testing.T) {
	prog := mustParse(t, "x = a < b <= c\n", feature.Default())
	assign := prog.Body[0].(*ast.AssignStmt)
	cmp, ok := assign.Value.(*ast.CompareExpr)
	if !ok {
		t.Fatalf("value type = %T, want *ast.CompareExpr", assign.Value)
	}
	if len(cmp.Ops) != len(cmp.Comparators) || len(cmp.Ops) < 1 {
		t.Errorf("ops=%d comparators=%d, want equal and >= 1", len(cmp.Ops), len(cmp.Comparators))
	}
}

func TestParseBlockIndentLevels(t *testing.T) {
	prog := mustParse(t, "if a:\n    if b:\n        pass\n", feature.Default())
	outer := prog.Body[0].(*ast.IfStmt)
	if outer.Body.IndentLevel < 1 {
		t.Errorf("outer block indent level = %d, want >= 1", outer.Body.IndentLevel)
	}
	inner := outer.Body.Statements[0].(*ast.IfStmt)
	if inner.Body.IndentLevel <= outer.Body.IndentLevel {
		t.Errorf("inner indent level %d must exceed outer %d", inner.Body.IndentLevel, outer.Body.IndentLevel)
	}
}
