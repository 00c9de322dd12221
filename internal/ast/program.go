package ast

import "github.com/indentlang/langcore/internal/token"

// Program is the root of the surface tree (spec §3 "Program").
type Program struct {
	NodeMeta
	IndentWidth int
	Body        []Stmt

	Tokens    []token.Token    // significant tokens consumed to build this tree
	RawTokens []token.RawToken // the full raw stream, for lossless rendering

	// Dirty means the tree has been edited since parse; lossless rendering
	// must not trust RawTokens when true (spec §3 Invariants).
	Dirty bool
}

func (n *Program) Meta() NodeMeta { return n.NodeMeta }
