package render

import (
	"strings"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

// reuseTokenRange reconstructs a node's original source text by
// concatenating each significant token's leading trivia, raw text, and
// trailing trivia across [meta.Start, meta.End]. Leading/trailing trivia
// never overlap between adjacent tokens (internal/trivia assigns every run
// to exactly one side), so no byte is emitted twice. The first token's
// leading trivia can include comment and blank-line trivia from lines
// before the node, which internal/trivia attaches past those lines' NEWLINE
// tokens; such text is emitted here without those newlines.
func reuseTokenRange(tokens []token.Token, meta ast.NodeMeta) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	if meta.Start < 0 || meta.End < meta.Start || meta.End >= len(tokens) {
		return "", false
	}
	var b strings.Builder
	for _, t := range tokens[meta.Start : meta.End+1] {
		for _, lt := range t.LeadingTrivia {
			b.WriteString(lt.Raw)
		}
		b.WriteString(t.Raw)
		for _, tt := range t.TrailingTrivia {
			b.WriteString(tt.Raw)
		}
	}
	return b.String(), true
}
