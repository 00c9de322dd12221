package render

import (
	"strings"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

// Precedence thresholds mirror internal/ast's operator table (spec §4.4,
// §9 "Precedence-climbing vs a hand-layered grammar" — "the renderer
// consults the same precedence values when deciding to parenthesize").
const (
	PrecLowest = ast.PrecLambda
	precAtom   = ast.PrecPostfix + 1
)

// renderExpr renders e, wrapping it in parentheses iff its own precedence
// is lower than minPrec — the minimum precedence the caller can accept
// without ambiguity (spec §4.4 "a child wraps itself in parentheses iff
// its precedence < parent").
func renderExpr(e ast.Expr, minPrec int) string {
	if e == nil {
		return ""
	}

	prec, text := renderExprPrec(e)
	if prec < minPrec {
		return "(" + text + ")"
	}
	return text
}

// renderExprPrec returns a node's own precedence level alongside its
// unparenthesized text.
func renderExprPrec(e ast.Expr) (int, string) {
	switch n := e.(type) {
	case *ast.Ident:
		return precAtom, n.Name

	case *ast.Literal:
		return precAtom, renderLiteral(n)

	case *ast.GroupedExpr:
		// An explicit grouping the source author wrote; always reproduced
		// literally rather than re-derived from precedence.
		return precAtom, "(" + renderExpr(n.Inner, PrecLowest) + ")"

	case *ast.BinaryExpr:
		own := n.Op.Precedence()
		leftMin, rightMin := own, own
		if n.Op.Associativity() == ast.LeftAssoc {
			rightMin = own + 1
		} else {
			leftMin = own + 1
		}
		text := renderExpr(n.Left, leftMin) + " " + n.Op.String() + " " + renderExpr(n.Right, rightMin)
		return own, text

	case *ast.UnaryExpr:
		return ast.PrecUnary, unaryText(n.Op) + renderExpr(n.Operand, ast.PrecUnary)

	case *ast.BoolOpExpr:
		own := ast.PrecAnd
		if n.Op == ast.BoolOr {
			own = ast.PrecOr
		}
		parts := make([]string, len(n.Operands))
		for i, o := range n.Operands {
			parts[i] = renderExpr(o, own+1)
		}
		return own, strings.Join(parts, " "+n.Op.String()+" ")

	case *ast.CompareExpr:
		var b strings.Builder
		b.WriteString(renderExpr(n.Left, ast.PrecCompare+1))
		for i, op := range n.Ops {
			b.WriteString(" ")
			b.WriteString(op.String())
			b.WriteString(" ")
			b.WriteString(renderExpr(n.Comparators[i], ast.PrecCompare+1))
		}
		return ast.PrecCompare, b.String()

	case *ast.LambdaExpr:
		text := "lambda"
		if len(n.Params) > 0 {
			text += " " + strings.Join(n.Params, ", ")
		}
		text += ": " + renderExpr(n.Body, ast.PrecLambda)
		return ast.PrecLambda, text

	case *ast.TernaryExpr:
		text := renderExpr(n.Then, ast.PrecTernary+1) + " if " + renderExpr(n.Cond, ast.PrecTernary+1) +
			" else " + renderExpr(n.Else, ast.PrecTernary)
		return ast.PrecTernary, text

	case *ast.CallExpr:
		args := make([]string, 0, len(n.Args)+len(n.Keywords))
		for _, a := range n.Args {
			args = append(args, renderExpr(a, PrecLowest))
		}
		for _, kw := range n.Keywords {
			args = append(args, kw.Name+"="+renderExpr(kw.Value, PrecLowest))
		}
		text := renderExpr(n.Func, ast.PrecPostfix) + "(" + strings.Join(args, ", ") + ")"
		return ast.PrecPostfix, text

	case *ast.AttributeExpr:
		return ast.PrecPostfix, renderExpr(n.Target, ast.PrecPostfix) + "." + n.Attr

	case *ast.SubscriptExpr:
		return ast.PrecPostfix, renderExpr(n.Target, ast.PrecPostfix) + "[" + renderExpr(n.Index, PrecLowest) + "]"

	case *ast.SliceExpr:
		var b strings.Builder
		if n.Lower != nil {
			b.WriteString(renderExpr(n.Lower, PrecLowest))
		}
		b.WriteString(":")
		if n.Upper != nil {
			b.WriteString(renderExpr(n.Upper, PrecLowest))
		}
		if n.Step != nil {
			b.WriteString(":")
			b.WriteString(renderExpr(n.Step, PrecLowest))
		}
		return precAtom, b.String()

	case *ast.TupleExpr:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = renderExpr(el, PrecLowest)
		}
		text := strings.Join(parts, ", ")
		if len(n.Elements) == 1 {
			text += ","
		}
		return precAtom, "(" + text + ")"

	case *ast.ListExpr:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = renderExpr(el, PrecLowest)
		}
		return precAtom, "[" + strings.Join(parts, ", ") + "]"

	case *ast.SetExpr:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = renderExpr(el, PrecLowest)
		}
		return precAtom, "{" + strings.Join(parts, ", ") + "}"

	case *ast.DictExpr:
		parts := make([]string, len(n.Entries))
		for i, entry := range n.Entries {
			parts[i] = renderExpr(entry.Key, PrecLowest) + ": " + renderExpr(entry.Value, PrecLowest)
		}
		return precAtom, "{" + strings.Join(parts, ", ") + "}"

	case *ast.ComprehensionExpr:
		return precAtom, renderComprehension(n)

	case *ast.FStringExpr:
		return precAtom, renderFString(n)

	default:
		return precAtom, "<?>"
	}
}

func unaryText(op ast.UnaryOp) string {
	if op == ast.UnaryNot {
		return "not "
	}
	return "-"
}

// renderLiteral prefers the verbatim source text a literal was parsed
// from (quotes, digit grouping, escape spelling all preserved). For a
// literal built without Raw set (e.g. by a host mutating the tree
// directly) it spells bool and None canonically; a number or string
// literal without Raw renders as empty text.
func renderLiteral(n *ast.Literal) string {
	if n.Raw != "" {
		return n.Raw
	}
	switch n.Kind {
	case ast.LitBool:
		if n.BoolValue {
			return "True"
		}
		return "False"
	case ast.LitNone:
		return "None"
	default:
		return n.Raw
	}
}

func renderComprehension(n *ast.ComprehensionExpr) string {
	var body string
	switch n.Kind {
	case ast.DictComprehension:
		body = renderExpr(n.Key, PrecLowest) + ": " + renderExpr(n.Value, PrecLowest)
	default:
		body = renderExpr(n.Element, PrecLowest)
	}

	var clauses strings.Builder
	for _, f := range n.For {
		clauses.WriteString(" for ")
		clauses.WriteString(renderExpr(f.Target, PrecLowest))
		clauses.WriteString(" in ")
		clauses.WriteString(renderExpr(f.Iterable, PrecLowest))
		for _, g := range f.Guards {
			clauses.WriteString(" if ")
			clauses.WriteString(renderExpr(g, PrecLowest))
		}
	}

	inner := body + clauses.String()
	switch n.Kind {
	case ast.SetComprehension:
		return "{" + inner + "}"
	case ast.DictComprehension:
		return "{" + inner + "}"
	case ast.GeneratorComprehension:
		return "(" + inner + ")"
	default:
		return "[" + inner + "]"
	}
}

func renderFString(n *ast.FStringExpr) string {
	q := "'"
	if n.Style == token.DoubleQuote {
		q = "\""
	}
	var b strings.Builder
	b.WriteString(q)
	for _, part := range n.Parts {
		if part.Kind == ast.FStrLiteral {
			b.WriteString(part.Text)
			continue
		}
		b.WriteString("{")
		b.WriteString(renderExpr(part.Expr, PrecLowest))
		b.WriteString("}")
	}
	b.WriteString(q)
	return b.String()
}
