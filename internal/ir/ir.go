// Package ir implements surface↔IR translation (spec §4.5) and the IR's
// external contracts: JSON tagged-union serialization (spec §6) and
// content hashing (SPEC_FULL.md supplement).
//
// The IR is specified as "a mirror of the statement/expression trees with
// the same shape" (spec §3 "IR"): rather than duplicate the ~30 statement
// and expression variants as a second parallel type hierarchy, IrProgram
// reuses internal/ast's Stmt/Expr/Pattern trees directly and differs from
// ast.Program only in the program-level fields spec §4.5 actually calls
// out as different (the significant Tokens list dropped, RawTokens made
// optional via TokenStore). Each node's NodeMeta, including its trivia
// copies, is carried across unchanged, matching "trivia remains inside
// each node's meta". This keeps surface_to_ir/ir_to_surface genuinely
// total, near-identity functions instead of a second large tree walker,
// without narrowing anything spec.md describes.
package ir

import (
	"fmt"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/token"
	"github.com/indentlang/langcore/internal/trivia"
)

// IrProgram is the interchange representation (spec §3 "IR", §4.5).
type IrProgram struct {
	Meta        ast.NodeMeta
	IndentWidth int
	Body        []ast.Stmt
	TokenStore  []token.RawToken // optional; nil/empty means absent
	Dirty       bool
}

// ConvertError is returned by IRToSurface when a feature-gated construct is
// present (spec §6 "Errors").
type ConvertError struct {
	Message string
	Span    token.Span
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("line %s %s", e.Span.Start, e.Message)
}

// SurfaceToIR strips Program.Tokens and carries everything else across
// one-for-one (spec §4.5).
func SurfaceToIR(p *ast.Program) *IrProgram {
	var store []token.RawToken
	if len(p.RawTokens) > 0 {
		store = append([]token.RawToken(nil), p.RawTokens...)
	}
	return &IrProgram{
		Meta:        p.NodeMeta,
		IndentWidth: p.IndentWidth,
		Body:        p.Body,
		TokenStore:  store,
		Dirty:       p.Dirty,
	}
}

// IRToSurface rebuilds a Program from an IrProgram, refusing IR that
// contains a gated construct (spec §4.5).
func IRToSurface(irp *IrProgram, features feature.Set) (*ast.Program, error) {
	if !features.MatchStmt {
		if span, found := findMatchStmt(irp.Body); found {
			return nil, &ConvertError{Message: "match is disabled", Span: span}
		}
	}

	reindentBody(irp.Body, 0)

	var tokens []token.Token
	if len(irp.TokenStore) > 0 {
		tokens = trivia.Attach(irp.TokenStore)
	}
	dirty := irp.Dirty || len(irp.TokenStore) == 0

	return &ast.Program{
		NodeMeta:    irp.Meta,
		IndentWidth: irp.IndentWidth,
		Body:        irp.Body,
		Tokens:      tokens,
		RawTokens:   irp.TokenStore,
		Dirty:       dirty,
	}, nil
}

// findMatchStmt searches a statement list (recursively, through every
// nested block) for a match statement, matching spec §4.5 "if the IR
// contains any match statement (recursively)".
func findMatchStmt(body []ast.Stmt) (token.Span, bool) {
	for _, s := range body {
		switch n := s.(type) {
		case *ast.MatchStmt:
			return n.Meta().Span, true
		case *ast.IfStmt:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
			for _, e := range n.Elifs {
				if span, ok := findMatchStmt(e.Body.Statements); ok {
					return span, true
				}
			}
			if n.Else != nil {
				if span, ok := findMatchStmt(n.Else.Statements); ok {
					return span, true
				}
			}
		case *ast.WhileStmt:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
		case *ast.ForStmt:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
		case *ast.FunctionDef:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
		case *ast.ClassDef:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
		case *ast.TryStmt:
			if span, ok := findMatchStmt(n.Body.Statements); ok {
				return span, true
			}
			for _, ex := range n.Excepts {
				if span, ok := findMatchStmt(ex.Body.Statements); ok {
					return span, true
				}
			}
			if n.Finally != nil {
				if span, ok := findMatchStmt(n.Finally.Statements); ok {
					return span, true
				}
			}
		}
	}
	return token.Span{}, false
}

// reindentBody assigns Block.IndentLevel = parentLevel + 1 top-down from 0
// (spec §4.5 "Rebuilds Program.body (assigning Block.indent_level =
// parent_level + 1 top-down from 0)").
func reindentBody(body []ast.Stmt, parentLevel int) {
	for _, s := range body {
		switch n := s.(type) {
		case *ast.IfStmt:
			reindentBlock(n.Body, parentLevel)
			for _, e := range n.Elifs {
				reindentBlock(e.Body, parentLevel)
			}
			if n.Else != nil {
				reindentBlock(n.Else, parentLevel)
			}
		case *ast.WhileStmt:
			reindentBlock(n.Body, parentLevel)
		case *ast.ForStmt:
			reindentBlock(n.Body, parentLevel)
		case *ast.MatchStmt:
			// Case headers sit one level under match with no Block of
			// their own (parseMatch consumes their INDENT/DEDENT
			// directly); case bodies are one level under that.
			for _, c := range n.Cases {
				reindentBlock(c.Body, parentLevel+1)
			}
		case *ast.FunctionDef:
			reindentBlock(n.Body, parentLevel)
		case *ast.ClassDef:
			reindentBlock(n.Body, parentLevel)
		case *ast.TryStmt:
			reindentBlock(n.Body, parentLevel)
			for _, ex := range n.Excepts {
				reindentBlock(ex.Body, parentLevel)
			}
			if n.Finally != nil {
				reindentBlock(n.Finally, parentLevel)
			}
		}
	}
}

func reindentBlock(b *ast.Block, parentLevel int) {
	b.IndentLevel = parentLevel + 1
	reindentBody(b.Statements, b.IndentLevel)
}
