// Package render implements stage 5 of the pipeline (spec §4.6): producing
// a source string from a surface Program, either lossless (byte-exact
// concatenation of preserved raw tokens) or pretty (a precedence-aware tree
// walk).
//
// The tree-walk-to-string-builder shape, switching on node type with one
// render function per variant, is grounded on
// aledsdavies-opal/core/planfmt/formatter/tree.go's renderExecutionNode.
package render

// Mode selects which renderer path Render uses.
type Mode int

const (
	// Lossless reproduces the original source byte-for-byte from preserved
	// raw tokens, degrading to Pretty when that is not possible.
	Lossless Mode = iota
	// Pretty regenerates source from the tree with canonical whitespace and
	// precedence-aware parenthesization.
	Pretty
)

// Config is the render configuration surface (spec §6 "Render config").
type Config struct {
	Mode Mode

	// ReuseTokenRanges, when true, makes the pretty renderer attempt to
	// reuse a statement's preserved token-range text before re-emitting it
	// (spec §4.6 "Token-range reuse"). Advisory: falls through to normal
	// pretty-printing per-statement whenever the range does not index
	// validly into the tokens the tree was built from.
	ReuseTokenRanges bool
}
