package parser

import "github.com/indentlang/langcore/internal/ast"

// parsePattern implements spec §4.4 "Pattern parsing": parse an
// expression, then reduce it. An identifier named exactly `_` becomes a
// WildcardPattern, a plain identifier becomes an IdentPattern, a literal
// becomes a LiteralPattern; anything else is a parse error.
func (p *Parser) parsePattern() ast.Pattern {
	start := p.mark()
	expr := p.parseExpr(p.fullCtx())

	switch e := expr.(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return &ast.WildcardPattern{NodeMeta: p.finish(start)}
		}
		return &ast.IdentPattern{NodeMeta: p.finish(start), Name: e.Name}
	case *ast.Literal:
		return &ast.LiteralPattern{NodeMeta: p.finish(start), Value: e}
	default:
		p.fail("unsupported match pattern", expr.Meta().Span)
		return nil // unreachable
	}
}
