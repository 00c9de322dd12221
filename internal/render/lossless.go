package render

import (
	"strings"

	"github.com/indentlang/langcore/internal/ast"
)

// losslessEligible reports whether p can be rendered byte-exact from its
// preserved raw tokens (spec §4.6 "Mode selection").
func losslessEligible(p *ast.Program) bool {
	return !p.Dirty && len(p.RawTokens) > 0
}

// renderLossless concatenates every preserved raw token's source text in
// order. INDENT/DEDENT tokens carry no text of their own (blockstruct never
// sets Raw on them); the indentation bytes they represent are already
// present as a separate WHITESPACE raw token, so straight concatenation
// reproduces the original byte stream.
func renderLossless(p *ast.Program) string {
	var b strings.Builder
	for _, t := range p.RawTokens {
		b.WriteString(t.Raw)
	}
	return b.String()
}
