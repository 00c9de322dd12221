package ast

import "github.com/alecthomas/repr"

// Dump renders a human-readable recursive dump of any tree node, for debug
// inspection. Not part of the spec itself —
// see SPEC_FULL.md DOMAIN STACK (grounded on vippsas-sqlcode's dependency on
// github.com/alecthomas/repr for AST pretty-printing).
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "), repr.OmitEmpty(true))
}
