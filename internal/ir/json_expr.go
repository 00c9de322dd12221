package ir

import (
	"encoding/json"
	"fmt"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

type wireIdent struct {
	Meta *wireMeta `json:"meta,omitempty"`
	Name string    `json:"name"`
}

type wireLiteral struct {
	Meta          *wireMeta `json:"meta,omitempty"`
	Kind          string    `json:"kind"`
	Raw           string    `json:"raw"`
	StringStyle   string    `json:"string_style,omitempty"`
	StringValue   string    `json:"string_value,omitempty"`
	StringEscaped bool      `json:"string_escaped,omitempty"`
	BoolValue     bool      `json:"bool_value,omitempty"`
}

type wireBinary struct {
	Meta  *wireMeta       `json:"meta,omitempty"`
	Op    string          `json:"op"`
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
}

type wireUnary struct {
	Meta    *wireMeta       `json:"meta,omitempty"`
	Op      string          `json:"op"`
	Operand json.RawMessage `json:"operand"`
}

type wireBoolOp struct {
	Meta     *wireMeta         `json:"meta,omitempty"`
	Op       string            `json:"op"`
	Operands []json.RawMessage `json:"operands"`
}

type wireCompare struct {
	Meta        *wireMeta         `json:"meta,omitempty"`
	Left        json.RawMessage   `json:"left"`
	Ops         []string          `json:"ops"`
	Comparators []json.RawMessage `json:"comparators"`
}

type wireLambda struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Params []string        `json:"params,omitempty"`
	Body   json.RawMessage `json:"body"`
}

type wireTernary struct {
	Meta *wireMeta       `json:"meta,omitempty"`
	Then json.RawMessage `json:"then"`
	Cond json.RawMessage `json:"cond"`
	Else json.RawMessage `json:"else"`
}

type wireKeyword struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type wireCall struct {
	Meta     *wireMeta         `json:"meta,omitempty"`
	Func     json.RawMessage   `json:"func"`
	Args     []json.RawMessage `json:"args,omitempty"`
	Keywords []wireKeyword     `json:"keywords,omitempty"`
}

type wireElements struct {
	Meta     *wireMeta         `json:"meta,omitempty"`
	Elements []json.RawMessage `json:"elements,omitempty"`
}

type wireAttribute struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Target json.RawMessage `json:"target"`
	Attr   string          `json:"attr"`
}

type wireSubscript struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Target json.RawMessage `json:"target"`
	Index  json.RawMessage `json:"index"`
}

type wireSlice struct {
	Meta  *wireMeta       `json:"meta,omitempty"`
	Lower json.RawMessage `json:"lower,omitempty"`
	Upper json.RawMessage `json:"upper,omitempty"`
	Step  json.RawMessage `json:"step,omitempty"`
}

type wireGrouped struct {
	Meta  *wireMeta       `json:"meta,omitempty"`
	Inner json.RawMessage `json:"inner"`
}

type wireDictEntry struct {
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
}

type wireDict struct {
	Meta    *wireMeta       `json:"meta,omitempty"`
	Entries []wireDictEntry `json:"entries,omitempty"`
}

type wireForClause struct {
	Target   json.RawMessage   `json:"target"`
	Iterable json.RawMessage   `json:"iterable"`
	Guards   []json.RawMessage `json:"guards,omitempty"`
}

type wireComprehension struct {
	Meta    *wireMeta       `json:"meta,omitempty"`
	Kind    string          `json:"kind"`
	Element json.RawMessage `json:"element,omitempty"`
	Key     json.RawMessage `json:"key,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	For     []wireForClause `json:"for"`
}

type wireFStringPart struct {
	Kind string          `json:"kind"`
	Text string          `json:"text,omitempty"`
	Expr json.RawMessage `json:"expr,omitempty"`
}

type wireFString struct {
	Meta  *wireMeta         `json:"meta,omitempty"`
	Style string            `json:"style"`
	Parts []wireFStringPart `json:"parts"`
}

// EncodeExpr encodes an expression node, or JSON null for a nil Expr.
func EncodeExpr(e ast.Expr) (json.RawMessage, error) {
	if e == nil {
		return jsonNull, nil
	}
	switch n := e.(type) {
	case *ast.Ident:
		return wrap("ident", wireIdent{Meta: toWireMeta(n.NodeMeta), Name: n.Name})

	case *ast.Literal:
		w := wireLiteral{Meta: toWireMeta(n.NodeMeta), Kind: literalKindString(n.Kind), Raw: n.Raw}
		if n.Kind == ast.LitString {
			w.StringStyle = stringStyleString(n.StringStyle)
			w.StringValue = n.StringValue
			w.StringEscaped = n.StringEscaped
		}
		if n.Kind == ast.LitBool {
			w.BoolValue = n.BoolValue
		}
		return wrap("literal", w)

	case *ast.BinaryExpr:
		left, err := EncodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := EncodeExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return wrap("binary", wireBinary{Meta: toWireMeta(n.NodeMeta), Op: n.Op.String(), Left: left, Right: right})

	case *ast.UnaryExpr:
		operand, err := EncodeExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		return wrap("unary", wireUnary{Meta: toWireMeta(n.NodeMeta), Op: n.Op.String(), Operand: operand})

	case *ast.BoolOpExpr:
		operands := make([]json.RawMessage, len(n.Operands))
		for i, o := range n.Operands {
			data, err := EncodeExpr(o)
			if err != nil {
				return nil, err
			}
			operands[i] = data
		}
		return wrap("bool_op", wireBoolOp{Meta: toWireMeta(n.NodeMeta), Op: n.Op.String(), Operands: operands})

	case *ast.CompareExpr:
		left, err := EncodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		ops := make([]string, len(n.Ops))
		for i, op := range n.Ops {
			ops[i] = op.String()
		}
		comparators := make([]json.RawMessage, len(n.Comparators))
		for i, c := range n.Comparators {
			data, err := EncodeExpr(c)
			if err != nil {
				return nil, err
			}
			comparators[i] = data
		}
		return wrap("compare", wireCompare{Meta: toWireMeta(n.NodeMeta), Left: left, Ops: ops, Comparators: comparators})

	case *ast.LambdaExpr:
		body, err := EncodeExpr(n.Body)
		if err != nil {
			return nil, err
		}
		return wrap("lambda", wireLambda{Meta: toWireMeta(n.NodeMeta), Params: n.Params, Body: body})

	case *ast.TernaryExpr:
		then, err := EncodeExpr(n.Then)
		if err != nil {
			return nil, err
		}
		cond, err := EncodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		els, err := EncodeExpr(n.Else)
		if err != nil {
			return nil, err
		}
		return wrap("ternary", wireTernary{Meta: toWireMeta(n.NodeMeta), Then: then, Cond: cond, Else: els})

	case *ast.CallExpr:
		fn, err := EncodeExpr(n.Func)
		if err != nil {
			return nil, err
		}
		args := make([]json.RawMessage, len(n.Args))
		for i, a := range n.Args {
			data, err := EncodeExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = data
		}
		keywords := make([]wireKeyword, len(n.Keywords))
		for i, kw := range n.Keywords {
			data, err := EncodeExpr(kw.Value)
			if err != nil {
				return nil, err
			}
			keywords[i] = wireKeyword{Name: kw.Name, Value: data}
		}
		return wrap("call", wireCall{Meta: toWireMeta(n.NodeMeta), Func: fn, Args: args, Keywords: keywords})

	case *ast.TupleExpr:
		return encodeElements("tuple", n.NodeMeta, n.Elements)

	case *ast.AttributeExpr:
		target, err := EncodeExpr(n.Target)
		if err != nil {
			return nil, err
		}
		return wrap("attribute", wireAttribute{Meta: toWireMeta(n.NodeMeta), Target: target, Attr: n.Attr})

	case *ast.SubscriptExpr:
		target, err := EncodeExpr(n.Target)
		if err != nil {
			return nil, err
		}
		index, err := EncodeExpr(n.Index)
		if err != nil {
			return nil, err
		}
		return wrap("subscript", wireSubscript{Meta: toWireMeta(n.NodeMeta), Target: target, Index: index})

	case *ast.SliceExpr:
		lower, err := EncodeExpr(n.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := EncodeExpr(n.Upper)
		if err != nil {
			return nil, err
		}
		step, err := EncodeExpr(n.Step)
		if err != nil {
			return nil, err
		}
		return wrap("slice", wireSlice{Meta: toWireMeta(n.NodeMeta), Lower: lower, Upper: upper, Step: step})

	case *ast.GroupedExpr:
		inner, err := EncodeExpr(n.Inner)
		if err != nil {
			return nil, err
		}
		return wrap("grouped", wireGrouped{Meta: toWireMeta(n.NodeMeta), Inner: inner})

	case *ast.ListExpr:
		return encodeElements("list", n.NodeMeta, n.Elements)

	case *ast.DictExpr:
		entries := make([]wireDictEntry, len(n.Entries))
		for i, e := range n.Entries {
			k, err := EncodeExpr(e.Key)
			if err != nil {
				return nil, err
			}
			v, err := EncodeExpr(e.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = wireDictEntry{Key: k, Value: v}
		}
		return wrap("dict", wireDict{Meta: toWireMeta(n.NodeMeta), Entries: entries})

	case *ast.SetExpr:
		return encodeElements("set", n.NodeMeta, n.Elements)

	case *ast.ComprehensionExpr:
		element, err := EncodeExpr(n.Element)
		if err != nil {
			return nil, err
		}
		key, err := EncodeExpr(n.Key)
		if err != nil {
			return nil, err
		}
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		forClauses := make([]wireForClause, len(n.For))
		for i, f := range n.For {
			target, err := EncodeExpr(f.Target)
			if err != nil {
				return nil, err
			}
			iterable, err := EncodeExpr(f.Iterable)
			if err != nil {
				return nil, err
			}
			guards := make([]json.RawMessage, len(f.Guards))
			for j, g := range f.Guards {
				data, err := EncodeExpr(g)
				if err != nil {
					return nil, err
				}
				guards[j] = data
			}
			forClauses[i] = wireForClause{Target: target, Iterable: iterable, Guards: guards}
		}
		return wrap("comprehension", wireComprehension{
			Meta: toWireMeta(n.NodeMeta), Kind: comprehensionKindString(n.Kind),
			Element: element, Key: key, Value: value, For: forClauses,
		})

	case *ast.FStringExpr:
		parts := make([]wireFStringPart, len(n.Parts))
		for i, p := range n.Parts {
			if p.Kind == ast.FStrLiteral {
				parts[i] = wireFStringPart{Kind: "literal", Text: p.Text}
				continue
			}
			data, err := EncodeExpr(p.Expr)
			if err != nil {
				return nil, err
			}
			parts[i] = wireFStringPart{Kind: "expr", Expr: data}
		}
		return wrap("fstring", wireFString{Meta: toWireMeta(n.NodeMeta), Style: stringStyleString(n.Style), Parts: parts})

	default:
		return nil, fmt.Errorf("ir: unknown expression type %T", e)
	}
}

func encodeElements(kind string, meta ast.NodeMeta, elements []ast.Expr) (json.RawMessage, error) {
	out := make([]json.RawMessage, len(elements))
	for i, el := range elements {
		data, err := EncodeExpr(el)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return wrap(kind, wireElements{Meta: toWireMeta(meta), Elements: out})
}

// DecodeExpr decodes an expression node, or nil from JSON null.
func DecodeExpr(data json.RawMessage) (ast.Expr, error) {
	if isNull(data) {
		return nil, nil
	}
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case "ident":
		var w wireIdent
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.Ident{NodeMeta: fromWireMeta(w.Meta), Name: w.Name}, nil

	case "literal":
		var w wireLiteral
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		lit := &ast.Literal{NodeMeta: fromWireMeta(w.Meta), Kind: literalKindFromString(w.Kind), Raw: w.Raw}
		if lit.Kind == ast.LitString {
			lit.StringStyle = stringStyleFromString(w.StringStyle)
			lit.StringValue = w.StringValue
			lit.StringEscaped = w.StringEscaped
		}
		if lit.Kind == ast.LitBool {
			lit.BoolValue = w.BoolValue
		}
		return lit, nil

	case "binary":
		var w wireBinary
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		left, err := DecodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := DecodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{NodeMeta: fromWireMeta(w.Meta), Op: binaryOpFromString(w.Op), Left: left, Right: right}, nil

	case "unary":
		var w wireUnary
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		operand, err := DecodeExpr(w.Operand)
		if err != nil {
			return nil, err
		}
		op := ast.UnaryNeg
		if w.Op == "not" {
			op = ast.UnaryNot
		}
		return &ast.UnaryExpr{NodeMeta: fromWireMeta(w.Meta), Op: op, Operand: operand}, nil

	case "bool_op":
		var w wireBoolOp
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		operands := make([]ast.Expr, len(w.Operands))
		for i, o := range w.Operands {
			e, err := DecodeExpr(o)
			if err != nil {
				return nil, err
			}
			operands[i] = e
		}
		op := ast.BoolAnd
		if w.Op == "or" {
			op = ast.BoolOr
		}
		return &ast.BoolOpExpr{NodeMeta: fromWireMeta(w.Meta), Op: op, Operands: operands}, nil

	case "compare":
		var w wireCompare
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		left, err := DecodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		ops := make([]ast.CompareOp, len(w.Ops))
		for i, op := range w.Ops {
			ops[i] = compareOpFromString(op)
		}
		comparators := make([]ast.Expr, len(w.Comparators))
		for i, c := range w.Comparators {
			e, err := DecodeExpr(c)
			if err != nil {
				return nil, err
			}
			comparators[i] = e
		}
		return &ast.CompareExpr{NodeMeta: fromWireMeta(w.Meta), Left: left, Ops: ops, Comparators: comparators}, nil

	case "lambda":
		var w wireLambda
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		body, err := DecodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LambdaExpr{NodeMeta: fromWireMeta(w.Meta), Params: w.Params, Body: body}, nil

	case "ternary":
		var w wireTernary
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		then, err := DecodeExpr(w.Then)
		if err != nil {
			return nil, err
		}
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		els, err := DecodeExpr(w.Else)
		if err != nil {
			return nil, err
		}
		return &ast.TernaryExpr{NodeMeta: fromWireMeta(w.Meta), Then: then, Cond: cond, Else: els}, nil

	case "call":
		var w wireCall
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		fn, err := DecodeExpr(w.Func)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(w.Args))
		for i, a := range w.Args {
			e, err := DecodeExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = e
		}
		keywords := make([]ast.Keyword, len(w.Keywords))
		for i, kw := range w.Keywords {
			v, err := DecodeExpr(kw.Value)
			if err != nil {
				return nil, err
			}
			keywords[i] = ast.Keyword{Name: kw.Name, Value: v}
		}
		return &ast.CallExpr{NodeMeta: fromWireMeta(w.Meta), Func: fn, Args: args, Keywords: keywords}, nil

	case "tuple":
		elements, meta, err := decodeElements(n.Data)
		if err != nil {
			return nil, err
		}
		return &ast.TupleExpr{NodeMeta: meta, Elements: elements}, nil

	case "attribute":
		var w wireAttribute
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		return &ast.AttributeExpr{NodeMeta: fromWireMeta(w.Meta), Target: target, Attr: w.Attr}, nil

	case "subscript":
		var w wireSubscript
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		index, err := DecodeExpr(w.Index)
		if err != nil {
			return nil, err
		}
		return &ast.SubscriptExpr{NodeMeta: fromWireMeta(w.Meta), Target: target, Index: index}, nil

	case "slice":
		var w wireSlice
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		lower, err := DecodeExpr(w.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := DecodeExpr(w.Upper)
		if err != nil {
			return nil, err
		}
		step, err := DecodeExpr(w.Step)
		if err != nil {
			return nil, err
		}
		return &ast.SliceExpr{NodeMeta: fromWireMeta(w.Meta), Lower: lower, Upper: upper, Step: step}, nil

	case "grouped":
		var w wireGrouped
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		inner, err := DecodeExpr(w.Inner)
		if err != nil {
			return nil, err
		}
		return &ast.GroupedExpr{NodeMeta: fromWireMeta(w.Meta), Inner: inner}, nil

	case "list":
		elements, meta, err := decodeElements(n.Data)
		if err != nil {
			return nil, err
		}
		return &ast.ListExpr{NodeMeta: meta, Elements: elements}, nil

	case "dict":
		var w wireDict
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		entries := make([]ast.DictEntry, len(w.Entries))
		for i, e := range w.Entries {
			k, err := DecodeExpr(e.Key)
			if err != nil {
				return nil, err
			}
			v, err := DecodeExpr(e.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = ast.DictEntry{Key: k, Value: v}
		}
		return &ast.DictExpr{NodeMeta: fromWireMeta(w.Meta), Entries: entries}, nil

	case "set":
		elements, meta, err := decodeElements(n.Data)
		if err != nil {
			return nil, err
		}
		return &ast.SetExpr{NodeMeta: meta, Elements: elements}, nil

	case "comprehension":
		var w wireComprehension
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		element, err := DecodeExpr(w.Element)
		if err != nil {
			return nil, err
		}
		key, err := DecodeExpr(w.Key)
		if err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		forClauses := make([]ast.ForClause, len(w.For))
		for i, f := range w.For {
			target, err := DecodeExpr(f.Target)
			if err != nil {
				return nil, err
			}
			iterable, err := DecodeExpr(f.Iterable)
			if err != nil {
				return nil, err
			}
			guards := make([]ast.Expr, len(f.Guards))
			for j, g := range f.Guards {
				e, err := DecodeExpr(g)
				if err != nil {
					return nil, err
				}
				guards[j] = e
			}
			forClauses[i] = ast.ForClause{Target: target, Iterable: iterable, Guards: guards}
		}
		return &ast.ComprehensionExpr{
			NodeMeta: fromWireMeta(w.Meta), Kind: comprehensionKindFromString(w.Kind),
			Element: element, Key: key, Value: value, For: forClauses,
		}, nil

	case "fstring":
		var w wireFString
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		parts := make([]ast.FStringPart, len(w.Parts))
		for i, p := range w.Parts {
			if p.Kind == "literal" {
				parts[i] = ast.FStringPart{Kind: ast.FStrLiteral, Text: p.Text}
				continue
			}
			e, err := DecodeExpr(p.Expr)
			if err != nil {
				return nil, err
			}
			parts[i] = ast.FStringPart{Kind: ast.FStrExpr, Expr: e}
		}
		return &ast.FStringExpr{NodeMeta: fromWireMeta(w.Meta), Style: stringStyleFromString(w.Style), Parts: parts}, nil

	default:
		return nil, fmt.Errorf("ir: unknown expression kind %q", n.Kind)
	}
}

func decodeElements(data json.RawMessage) ([]ast.Expr, ast.NodeMeta, error) {
	var w wireElements
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ast.NodeMeta{}, err
	}
	elements := make([]ast.Expr, len(w.Elements))
	for i, el := range w.Elements {
		e, err := DecodeExpr(el)
		if err != nil {
			return nil, ast.NodeMeta{}, err
		}
		elements[i] = e
	}
	return elements, fromWireMeta(w.Meta), nil
}

// --- Patterns ------------------------------------------------------------

// EncodePattern encodes a match-pattern node, or JSON null for nil.
func EncodePattern(p ast.Pattern) (json.RawMessage, error) {
	if p == nil {
		return jsonNull, nil
	}
	switch n := p.(type) {
	case *ast.WildcardPattern:
		return wrap("wildcard", wireBareMeta{Meta: toWireMeta(n.NodeMeta)})
	case *ast.IdentPattern:
		return wrap("ident_pattern", wireIdent{Meta: toWireMeta(n.NodeMeta), Name: n.Name})
	case *ast.LiteralPattern:
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return wrap("literal_pattern", wireGrouped{Meta: toWireMeta(n.NodeMeta), Inner: value})
	default:
		return nil, fmt.Errorf("ir: unknown pattern type %T", p)
	}
}

// DecodePattern decodes a match-pattern node, or nil from JSON null.
func DecodePattern(data json.RawMessage) (ast.Pattern, error) {
	if isNull(data) {
		return nil, nil
	}
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case "wildcard":
		var w wireBareMeta
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.WildcardPattern{NodeMeta: fromWireMeta(w.Meta)}, nil
	case "ident_pattern":
		var w wireIdent
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.IdentPattern{NodeMeta: fromWireMeta(w.Meta), Name: w.Name}, nil
	case "literal_pattern":
		var w wireGrouped
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Inner)
		if err != nil {
			return nil, err
		}
		lit, _ := value.(*ast.Literal)
		return &ast.LiteralPattern{NodeMeta: fromWireMeta(w.Meta), Value: lit}, nil
	default:
		return nil, fmt.Errorf("ir: unknown pattern kind %q", n.Kind)
	}
}

// --- enum <-> snake_case string helpers -----------------------------------

func literalKindString(k ast.LiteralKind) string {
	switch k {
	case ast.LitNumber:
		return "number"
	case ast.LitString:
		return "string"
	case ast.LitBool:
		return "bool"
	default:
		return "none"
	}
}

func literalKindFromString(s string) ast.LiteralKind {
	switch s {
	case "number":
		return ast.LitNumber
	case "string":
		return ast.LitString
	case "bool":
		return ast.LitBool
	default:
		return ast.LitNone
	}
}

func stringStyleString(s token.StringStyle) string {
	if s == token.DoubleQuote {
		return "double"
	}
	return "single"
}

func stringStyleFromString(s string) token.StringStyle {
	if s == "double" {
		return token.DoubleQuote
	}
	return token.SingleQuote
}

func comprehensionKindString(k ast.ComprehensionKind) string {
	switch k {
	case ast.SetComprehension:
		return "set"
	case ast.GeneratorComprehension:
		return "generator"
	case ast.DictComprehension:
		return "dict"
	default:
		return "list"
	}
}

func comprehensionKindFromString(s string) ast.ComprehensionKind {
	switch s {
	case "set":
		return ast.SetComprehension
	case "generator":
		return ast.GeneratorComprehension
	case "dict":
		return ast.DictComprehension
	default:
		return ast.ListComprehension
	}
}

var binaryOpByString = map[string]ast.BinaryOp{
	"+": ast.Add, "-": ast.Sub, "*": ast.Mul, "/": ast.Div,
	"%": ast.Mod, "//": ast.FloorDiv, "**": ast.Pow,
}

func binaryOpFromString(s string) ast.BinaryOp { return binaryOpByString[s] }

var compareOpByString = map[string]ast.CompareOp{
	"==": ast.CmpEq, "!=": ast.CmpNotEq, "<": ast.CmpLt, "<=": ast.CmpLe,
	">": ast.CmpGt, ">=": ast.CmpGe, "in": ast.CmpIn, "not in": ast.CmpNotIn,
	"is": ast.CmpIs, "is not": ast.CmpIsNot,
}

func compareOpFromString(s string) ast.CompareOp { return compareOpByString[s] }
