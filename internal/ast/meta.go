// Package ast defines the surface tree: the statement, expression, and
// pattern closed sum types produced by internal/parser, plus the NodeMeta
// every node carries (spec §3 "Node metadata").
//
// The interface-per-syntactic-form shape (one struct per variant,
// implementing a common Node interface that exposes position/token-range
// information) is grounded on aledsdavies-opal/pkgs/ast/ast.go's
// Node/Expression interfaces.
package ast

import "github.com/indentlang/langcore/internal/token"

// NodeMeta is the metadata every tree node carries (spec §3 "Node
// metadata"): a monotonically increasing id, the node's source span, the
// inclusive token range it covers, and copies of the boundary tokens'
// leading/trailing trivia.
type NodeMeta struct {
	ID    int
	Span  token.Span
	Start int // inclusive index into the significant-token stream
	End   int // inclusive index into the significant-token stream

	LeadingTrivia  []token.RawToken
	TrailingTrivia []token.RawToken
}

// Node is implemented by every statement, expression, and pattern node.
type Node interface {
	Meta() NodeMeta
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Pattern is implemented by every match-pattern variant.
type Pattern interface {
	Node
	patternNode()
}

// Block is an indented sequence of statements (spec §3 "A Block is (meta,
// indent_level, statements)").
type Block struct {
	NodeMeta
	IndentLevel int // logical nesting depth; strictly positive, spec §8
	Statements  []Stmt
}

func (b *Block) Meta() NodeMeta { return b.NodeMeta }
