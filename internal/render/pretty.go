package render

import (
	"strings"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

// printer accumulates pretty-printed source, one logical line per
// statement, at indentLevel*indentWidth columns (spec §4.6 "Pretty
// rendering").
type printer struct {
	b           strings.Builder
	indentWidth int
	cfg         Config
	tokens      []token.Token
}

func renderPretty(p *ast.Program, cfg Config) string {
	width := p.IndentWidth
	if width <= 0 {
		width = 4
	}
	pr := &printer{indentWidth: width, cfg: cfg, tokens: p.Tokens}
	for _, s := range p.Body {
		pr.renderStmt(s, 0)
	}
	return pr.b.String()
}

func (pr *printer) writeLine(level int, text string) {
	if level > 0 {
		pr.b.WriteString(strings.Repeat(" ", level*pr.indentWidth))
	}
	pr.b.WriteString(text)
	pr.b.WriteByte('\n')
}

func (pr *printer) renderBlock(b *ast.Block) {
	if b == nil || len(b.Statements) == 0 {
		level := 1
		if b != nil {
			level = b.IndentLevel
		}
		pr.writeLine(level, "pass")
		return
	}
	for _, s := range b.Statements {
		pr.renderStmt(s, b.IndentLevel)
	}
}

// renderStmt emits one statement. When ReuseTokenRanges is set and the
// statement's token range still indexes validly into the tokens the tree
// was built from, its preserved source text (including original
// whitespace and comments) is reused verbatim instead of re-synthesizing
// the line; any mismatch falls through to normal pretty-printing for just
// that one statement (spec §4.6 "Token-range reuse").
func (pr *printer) renderStmt(s ast.Stmt, level int) {
	if pr.cfg.ReuseTokenRanges {
		if text, ok := reuseTokenRange(pr.tokens, s.Meta()); ok {
			pr.b.WriteString(text)
			return
		}
	}

	switch n := s.(type) {
	case *ast.IfStmt:
		pr.writeLine(level, "if "+renderExpr(n.Cond, PrecLowest)+":")
		pr.renderBlock(n.Body)
		for _, e := range n.Elifs {
			pr.writeLine(level, "elif "+renderExpr(e.Cond, PrecLowest)+":")
			pr.renderBlock(e.Body)
		}
		if n.Else != nil {
			pr.writeLine(level, "else:")
			pr.renderBlock(n.Else)
		}

	case *ast.WhileStmt:
		pr.writeLine(level, "while "+renderExpr(n.Cond, PrecLowest)+":")
		pr.renderBlock(n.Body)

	case *ast.ForStmt:
		pr.writeLine(level, "for "+renderExpr(n.Target, PrecLowest)+" in "+renderExpr(n.Iterable, PrecLowest)+":")
		pr.renderBlock(n.Body)

	case *ast.MatchStmt:
		pr.writeLine(level, "match "+renderExpr(n.Subject, PrecLowest)+":")
		for _, c := range n.Cases {
			pr.writeLine(level+1, "case "+renderPattern(c.Pattern)+":")
			pr.renderBlock(c.Body)
		}

	case *ast.FunctionDef:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		pr.writeLine(level, "def "+n.Name+"("+strings.Join(names, ", ")+"):")
		pr.renderBlock(n.Body)

	case *ast.ClassDef:
		pr.writeLine(level, "class "+n.Name+":")
		pr.renderBlock(n.Body)

	case *ast.AssignStmt:
		pr.writeLine(level, renderExpr(n.Target, PrecLowest)+" = "+renderExpr(n.Value, PrecLowest))

	case *ast.AugAssignStmt:
		pr.writeLine(level, renderExpr(n.Target, PrecLowest)+" "+n.Op.String()+" "+renderExpr(n.Value, PrecLowest))

	case *ast.ExprStmt:
		pr.writeLine(level, renderExpr(n.Value, PrecLowest))

	case *ast.PassStmt:
		pr.writeLine(level, "pass")

	case *ast.ReturnStmt:
		if n.Value == nil {
			pr.writeLine(level, "return")
		} else {
			pr.writeLine(level, "return "+renderExpr(n.Value, PrecLowest))
		}

	case *ast.BreakStmt:
		pr.writeLine(level, "break")

	case *ast.ContinueStmt:
		pr.writeLine(level, "continue")

	case *ast.EmptyStmt:
		pr.b.WriteByte('\n')

	case *ast.ImportStmt:
		text := "import " + n.Dotted
		if n.Alias != "" {
			text += " as " + n.Alias
		}
		pr.writeLine(level, text)

	case *ast.FromImportStmt:
		names := make([]string, len(n.Names))
		for i, nm := range n.Names {
			if nm.Alias != "" {
				names[i] = nm.Name + " as " + nm.Alias
			} else {
				names[i] = nm.Name
			}
		}
		pr.writeLine(level, "from "+n.Dotted+" import "+strings.Join(names, ", "))

	case *ast.TryStmt:
		pr.writeLine(level, "try:")
		pr.renderBlock(n.Body)
		for _, ex := range n.Excepts {
			header := "except"
			if ex.Type != nil {
				header += " " + renderExpr(*ex.Type, PrecLowest)
				if ex.Name != "" {
					header += " as " + ex.Name
				}
			}
			pr.writeLine(level, header+":")
			pr.renderBlock(ex.Body)
		}
		if n.Finally != nil {
			pr.writeLine(level, "finally:")
			pr.renderBlock(n.Finally)
		}

	default:
		pr.writeLine(level, "# <unknown statement>")
	}
}

func renderPattern(p ast.Pattern) string {
	switch n := p.(type) {
	case *ast.WildcardPattern:
		return "_"
	case *ast.IdentPattern:
		return n.Name
	case *ast.LiteralPattern:
		return renderExpr(n.Value, PrecLowest)
	default:
		return "_"
	}
}
