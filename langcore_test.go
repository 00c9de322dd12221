package langcore

import (
	"strings"
	"testing"

	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/render"
)

func TestEmptyIR(t *testing.T) {
	irp := EmptyIR()
	if irp.IndentWidth != 4 {
		t.Errorf("IndentWidth = %d, want 4", irp.IndentWidth)
	}
	if !irp.Dirty {
		t.Error("Dirty = false, want true")
	}
	if len(irp.Body) != 0 {
		t.Errorf("Body length = %d, want 0", len(irp.Body))
	}
}

// TestScenarioLosslessWithComments covers spec §8 scenario 1 through the
// public Parse/Render round trip.
func TestScenarioLosslessWithComments(t *testing.T) {
	src := "value = 1  # inline\n\n# leading\nif value:\n    # nested\n    pass\n"
	irp, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := Render(irp, render.Config{Mode: render.Lossless})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if out != src {
		t.Errorf("lossless round trip mismatch:\ngot:  %q\nwant: %q", out, src)
	}
}

// TestScenarioMatchGate covers spec §8 scenario 2.
func TestScenarioMatchGate(t *testing.T) {
	src := "match value:\n    case 1:\n        pass\n"

	_, err := ParseWithFeatures(src, feature.Set{MatchStmt: false})
	if err == nil {
		t.Fatal("expected an error with match disabled, got nil")
	}
	parseErr, ok := err.(*parser.Error)
	if !ok {
		t.Fatalf("error type = %T, want *parser.Error", err)
	}
	if parseErr.Span.Start.Line != 1 || parseErr.Span.Start.Column != 1 {
		t.Errorf("error span start = %v, want line 1 column 1", parseErr.Span.Start)
	}

	if _, err := ParseWithFeatures(src, feature.Set{MatchStmt: true}); err != nil {
		t.Errorf("unexpected error with match enabled: %v", err)
	}
}

// TestScenarioStructuralErrorSpan covers spec §8 scenario 6 via Validate.
func TestScenarioStructuralErrorSpan(t *testing.T) {
	diags := Validate("if :\n    pass\n")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(diags))
	}
	if diags[0].Span.Start.Line != 1 {
		t.Errorf("diagnostic span start line = %d, want 1", diags[0].Span.Start.Line)
	}
	if !strings.Contains(diags[0].Message, "expected expression") {
		t.Errorf("diagnostic message = %q, want it to mention %q", diags[0].Message, "expected expression")
	}
}

func TestValidateCleanSourceReportsNoDiagnostics(t *testing.T) {
	diags := Validate("x = 1\n")
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "if value:\n  pass\n"
	once, err := Format(src)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatalf("Format error on already-formatted source: %v", err)
	}
	if once != twice {
		t.Errorf("Format is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestParseCachesByDefault(t *testing.T) {
	src := "x = 1\n"
	first, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok, err := parseCache.Get(src); err != nil || !ok {
		t.Errorf("parseCache.Get after Parse: ok = %v, err = %v; want a cache hit", ok, err)
	}
	second, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(first.Body) != len(second.Body) {
		t.Errorf("cached reparse body length = %d, want %d", len(second.Body), len(first.Body))
	}
}
