package ast

import (
	"strings"
	"testing"
)

func TestDumpIncludesNodeTypeName(t *testing.T) {
	n := &PassStmt{}
	out := Dump(n)
	if !strings.Contains(out, "PassStmt") {
		t.Errorf("Dump(%T) = %q, want it to mention the type name", n, out)
	}
}

func TestDumpNestedExpr(t *testing.T) {
	n := &BinaryExpr{
		Op:   Add,
		Left: &Ident{Name: "a"},
		Right: &Ident{Name: "b"},
	}
	out := Dump(n)
	if !strings.Contains(out, "BinaryExpr") || !strings.Contains(out, "Ident") {
		t.Errorf("Dump(%T) = %q, want it to mention BinaryExpr and Ident", n, out)
	}
}
