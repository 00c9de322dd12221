package ir

import (
	"encoding/json"
	"fmt"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

// This file implements the tagged-union wire format mandated by spec §6
// ("Serialization"): sum types encode as {"kind": variant-name, "data":
// payload}; enums use snake_case names; node metadata defaults when
// absent (all fields optional on the wire). Trivia copies inside NodeMeta
// are not themselves put on the wire: the lossless byte stream is already
// carried once, authoritatively, in IrProgram.TokenStore, so re-encoding
// every node's leading/trailing trivia copies would only duplicate that
// data redundantly. Omitting them is exactly what "all fields optional on
// the wire" sanctions.

type wirePos struct {
	Line   int `json:"line"`
	Col    int `json:"col"`
	Offset int `json:"offset"`
}

type wireSpan struct {
	Start wirePos `json:"start"`
	End   wirePos `json:"end"`
}

func toWireSpan(s token.Span) wireSpan {
	return wireSpan{
		Start: wirePos{Line: s.Start.Line, Col: s.Start.Column, Offset: s.Start.Offset},
		End:   wirePos{Line: s.End.Line, Col: s.End.Column, Offset: s.End.Offset},
	}
}

func fromWireSpan(w wireSpan) token.Span {
	return token.Span{
		Start: token.Position{Line: w.Start.Line, Column: w.Start.Col, Offset: w.Start.Offset},
		End:   token.Position{Line: w.End.Line, Column: w.End.Col, Offset: w.End.Offset},
	}
}

type wireMeta struct {
	ID         int       `json:"id,omitempty"`
	Span       *wireSpan `json:"span,omitempty"`
	TokenStart int       `json:"token_start,omitempty"`
	TokenEnd   int       `json:"token_end,omitempty"`
}

func toWireMeta(m ast.NodeMeta) *wireMeta {
	span := toWireSpan(m.Span)
	return &wireMeta{ID: m.ID, Span: &span, TokenStart: m.Start, TokenEnd: m.End}
}

func fromWireMeta(w *wireMeta) ast.NodeMeta {
	if w == nil {
		return ast.NodeMeta{}
	}
	m := ast.NodeMeta{ID: w.ID, Start: w.TokenStart, End: w.TokenEnd}
	if w.Span != nil {
		m.Span = fromWireSpan(*w.Span)
	}
	return m
}

type wireNode struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

func wrap(kind string, data any) (json.RawMessage, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireNode{Kind: kind, Data: payload})
}

var jsonNull = json.RawMessage("null")

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}

// --- Marshal / Unmarshal entry points -------------------------------------

// Marshal encodes an IrProgram per spec §6.
func Marshal(irp *IrProgram) ([]byte, error) {
	body := make([]json.RawMessage, len(irp.Body))
	for i, s := range irp.Body {
		data, err := EncodeStmt(s)
		if err != nil {
			return nil, err
		}
		body[i] = data
	}

	var store []wireRawToken
	for _, t := range irp.TokenStore {
		store = append(store, toWireRawToken(t))
	}

	out := struct {
		Meta        *wireMeta         `json:"meta,omitempty"`
		IndentWidth int               `json:"indent_width"`
		Body        []json.RawMessage `json:"body"`
		TokenStore  []wireRawToken    `json:"token_store,omitempty"`
		Dirty       bool              `json:"dirty"`
	}{
		Meta:        toWireMeta(irp.Meta),
		IndentWidth: irp.IndentWidth,
		Body:        body,
		TokenStore:  store,
		Dirty:       irp.Dirty,
	}
	return json.Marshal(out)
}

// Unmarshal decodes an IrProgram per spec §6.
func Unmarshal(data []byte) (*IrProgram, error) {
	var in struct {
		Meta        *wireMeta         `json:"meta"`
		IndentWidth int               `json:"indent_width"`
		Body        []json.RawMessage `json:"body"`
		TokenStore  []wireRawToken    `json:"token_store"`
		Dirty       bool              `json:"dirty"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	body := make([]ast.Stmt, len(in.Body))
	for i, raw := range in.Body {
		s, err := DecodeStmt(raw)
		if err != nil {
			return nil, err
		}
		body[i] = s
	}

	var store []token.RawToken
	for _, t := range in.TokenStore {
		store = append(store, fromWireRawToken(t))
	}

	width := in.IndentWidth
	if width == 0 {
		width = 4
	}

	return &IrProgram{
		Meta:        fromWireMeta(in.Meta),
		IndentWidth: width,
		Body:        body,
		TokenStore:  store,
		Dirty:       in.Dirty,
	}, nil
}

type wireRawToken struct {
	Kind        string `json:"kind"`
	Raw         string `json:"raw"`
	Level       int    `json:"level,omitempty"`
	BlankOrigin string `json:"blank_origin,omitempty"`
}

func toWireRawToken(t token.RawToken) wireRawToken {
	w := wireRawToken{Kind: t.Kind.String(), Raw: t.Raw, Level: t.Level}
	if t.Kind == token.BLANK {
		w.BlankOrigin = t.BlankOrigin.String()
	}
	return w
}

func fromWireRawToken(w wireRawToken) token.RawToken {
	t := token.RawToken{Raw: w.Raw, Level: w.Level, Kind: kindFromString(w.Kind)}
	if w.BlankOrigin == "generated" {
		t.BlankOrigin = token.BlankGenerated
	}
	return t
}

func kindFromString(s string) token.Kind {
	for k := token.EOF; k <= token.INDENTATION; k++ {
		if k.String() == s {
			return k
		}
	}
	return token.ILLEGAL
}

// --- Block -----------------------------------------------------------------

type wireBlock struct {
	Meta        *wireMeta         `json:"meta,omitempty"`
	IndentLevel int               `json:"indent_level"`
	Statements  []json.RawMessage `json:"statements"`
}

// EncodeBlock encodes a block node. A nil block encodes as JSON null.
func EncodeBlock(b *ast.Block) (json.RawMessage, error) {
	if b == nil {
		return jsonNull, nil
	}
	stmts := make([]json.RawMessage, len(b.Statements))
	for i, s := range b.Statements {
		data, err := EncodeStmt(s)
		if err != nil {
			return nil, err
		}
		stmts[i] = data
	}
	payload := wireBlock{Meta: toWireMeta(b.NodeMeta), IndentLevel: b.IndentLevel, Statements: stmts}
	return wrap("block", payload)
}

// DecodeBlock decodes a block node, or nil from JSON null.
func DecodeBlock(data json.RawMessage) (*ast.Block, error) {
	if isNull(data) {
		return nil, nil
	}
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	var payload wireBlock
	if err := json.Unmarshal(n.Data, &payload); err != nil {
		return nil, err
	}
	stmts := make([]ast.Stmt, len(payload.Statements))
	for i, raw := range payload.Statements {
		s, err := DecodeStmt(raw)
		if err != nil {
			return nil, err
		}
		stmts[i] = s
	}
	return &ast.Block{NodeMeta: fromWireMeta(payload.Meta), IndentLevel: payload.IndentLevel, Statements: stmts}, nil
}

// --- Statements --------------------------------------------------------

type wireElif struct {
	Cond json.RawMessage `json:"cond"`
	Body json.RawMessage `json:"body"`
}

type wireIf struct {
	Meta  *wireMeta         `json:"meta,omitempty"`
	Cond  json.RawMessage   `json:"cond"`
	Body  json.RawMessage   `json:"body"`
	Elifs []wireElif        `json:"elifs,omitempty"`
	Else  json.RawMessage   `json:"else,omitempty"`
}

type wireCondBlock struct {
	Meta *wireMeta       `json:"meta,omitempty"`
	Cond json.RawMessage `json:"cond"`
	Body json.RawMessage `json:"body"`
}

type wireFor struct {
	Meta     *wireMeta       `json:"meta,omitempty"`
	Target   json.RawMessage `json:"target"`
	Iterable json.RawMessage `json:"iterable"`
	Body     json.RawMessage `json:"body"`
}

type wireMatchCase struct {
	Pattern json.RawMessage `json:"pattern"`
	Body    json.RawMessage `json:"body"`
}

type wireMatch struct {
	Meta    *wireMeta       `json:"meta,omitempty"`
	Subject json.RawMessage `json:"subject"`
	Cases   []wireMatchCase `json:"cases"`
}

type wireFunctionDef struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Name   string          `json:"name"`
	Params []string        `json:"params,omitempty"`
	Body   json.RawMessage `json:"body"`
}

type wireClassDef struct {
	Meta *wireMeta       `json:"meta,omitempty"`
	Name string          `json:"name"`
	Body json.RawMessage `json:"body"`
}

type wireAssign struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Target json.RawMessage `json:"target"`
	Value  json.RawMessage `json:"value"`
}

type wireAugAssign struct {
	Meta   *wireMeta       `json:"meta,omitempty"`
	Target json.RawMessage `json:"target"`
	Op     string          `json:"op"`
	Value  json.RawMessage `json:"value"`
}

type wireExprStmt struct {
	Meta  *wireMeta       `json:"meta,omitempty"`
	Value json.RawMessage `json:"value"`
}

type wireBareMeta struct {
	Meta *wireMeta `json:"meta,omitempty"`
}

type wireReturn struct {
	Meta  *wireMeta       `json:"meta,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

type wireEmpty struct {
	Meta   *wireMeta `json:"meta,omitempty"`
	Origin string    `json:"origin"`
}

type wireImport struct {
	Meta   *wireMeta `json:"meta,omitempty"`
	Dotted string    `json:"dotted"`
	Alias  string    `json:"alias,omitempty"`
}

type wireImportedName struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

type wireFromImport struct {
	Meta   *wireMeta          `json:"meta,omitempty"`
	Dotted string             `json:"dotted"`
	Names  []wireImportedName `json:"names"`
}

type wireExcept struct {
	Type json.RawMessage `json:"type,omitempty"`
	Name string          `json:"name,omitempty"`
	Body json.RawMessage `json:"body"`
}

type wireTry struct {
	Meta    *wireMeta       `json:"meta,omitempty"`
	Body    json.RawMessage `json:"body"`
	Excepts []wireExcept    `json:"excepts,omitempty"`
	Finally json.RawMessage `json:"finally,omitempty"`
}

// EncodeStmt encodes a statement node (spec §6).
func EncodeStmt(s ast.Stmt) (json.RawMessage, error) {
	if s == nil {
		return jsonNull, nil
	}
	switch n := s.(type) {
	case *ast.IfStmt:
		elifs := make([]wireElif, len(n.Elifs))
		for i, e := range n.Elifs {
			cond, err := EncodeExpr(e.Cond)
			if err != nil {
				return nil, err
			}
			body, err := EncodeBlock(e.Body)
			if err != nil {
				return nil, err
			}
			elifs[i] = wireElif{Cond: cond, Body: body}
		}
		cond, err := EncodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		elseData, err := EncodeBlock(n.Else)
		if err != nil {
			return nil, err
		}
		return wrap("if", wireIf{Meta: toWireMeta(n.NodeMeta), Cond: cond, Body: body, Elifs: elifs, Else: elseData})

	case *ast.WhileStmt:
		cond, err := EncodeExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return wrap("while", wireCondBlock{Meta: toWireMeta(n.NodeMeta), Cond: cond, Body: body})

	case *ast.ForStmt:
		target, err := EncodeExpr(n.Target)
		if err != nil {
			return nil, err
		}
		iterable, err := EncodeExpr(n.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return wrap("for", wireFor{Meta: toWireMeta(n.NodeMeta), Target: target, Iterable: iterable, Body: body})

	case *ast.MatchStmt:
		subject, err := EncodeExpr(n.Subject)
		if err != nil {
			return nil, err
		}
		cases := make([]wireMatchCase, len(n.Cases))
		for i, c := range n.Cases {
			pat, err := EncodePattern(c.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := EncodeBlock(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = wireMatchCase{Pattern: pat, Body: body}
		}
		return wrap("match", wireMatch{Meta: toWireMeta(n.NodeMeta), Subject: subject, Cases: cases})

	case *ast.FunctionDef:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return wrap("function_def", wireFunctionDef{Meta: toWireMeta(n.NodeMeta), Name: n.Name, Params: params, Body: body})

	case *ast.ClassDef:
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return wrap("class_def", wireClassDef{Meta: toWireMeta(n.NodeMeta), Name: n.Name, Body: body})

	case *ast.AssignStmt:
		target, err := EncodeExpr(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return wrap("assign", wireAssign{Meta: toWireMeta(n.NodeMeta), Target: target, Value: value})

	case *ast.AugAssignStmt:
		target, err := EncodeExpr(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return wrap("aug_assign", wireAugAssign{Meta: toWireMeta(n.NodeMeta), Target: target, Op: n.Op.String(), Value: value})

	case *ast.ExprStmt:
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return wrap("expr_stmt", wireExprStmt{Meta: toWireMeta(n.NodeMeta), Value: value})

	case *ast.PassStmt:
		return wrap("pass", wireBareMeta{Meta: toWireMeta(n.NodeMeta)})

	case *ast.ReturnStmt:
		value, err := EncodeExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if n.Value == nil {
			value = nil
		}
		return wrap("return", wireReturn{Meta: toWireMeta(n.NodeMeta), Value: value})

	case *ast.BreakStmt:
		return wrap("break", wireBareMeta{Meta: toWireMeta(n.NodeMeta)})

	case *ast.ContinueStmt:
		return wrap("continue", wireBareMeta{Meta: toWireMeta(n.NodeMeta)})

	case *ast.EmptyStmt:
		return wrap("empty", wireEmpty{Meta: toWireMeta(n.NodeMeta), Origin: n.Origin.String()})

	case *ast.ImportStmt:
		return wrap("import", wireImport{Meta: toWireMeta(n.NodeMeta), Dotted: n.Dotted, Alias: n.Alias})

	case *ast.FromImportStmt:
		names := make([]wireImportedName, len(n.Names))
		for i, nm := range n.Names {
			names[i] = wireImportedName{Name: nm.Name, Alias: nm.Alias}
		}
		return wrap("from_import", wireFromImport{Meta: toWireMeta(n.NodeMeta), Dotted: n.Dotted, Names: names})

	case *ast.TryStmt:
		body, err := EncodeBlock(n.Body)
		if err != nil {
			return nil, err
		}
		excepts := make([]wireExcept, len(n.Excepts))
		for i, ex := range n.Excepts {
			var typData json.RawMessage
			if ex.Type != nil {
				typData, err = EncodeExpr(*ex.Type)
				if err != nil {
					return nil, err
				}
			}
			exBody, err := EncodeBlock(ex.Body)
			if err != nil {
				return nil, err
			}
			excepts[i] = wireExcept{Type: typData, Name: ex.Name, Body: exBody}
		}
		finallyData, err := EncodeBlock(n.Finally)
		if err != nil {
			return nil, err
		}
		return wrap("try", wireTry{Meta: toWireMeta(n.NodeMeta), Body: body, Excepts: excepts, Finally: finallyData})

	default:
		return nil, fmt.Errorf("ir: unknown statement type %T", s)
	}
}

// DecodeStmt decodes a statement node, or nil from JSON null.
func DecodeStmt(data json.RawMessage) (ast.Stmt, error) {
	if isNull(data) {
		return nil, nil
	}
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case "if":
		var w wireIf
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		elifs := make([]ast.ElifClause, len(w.Elifs))
		for i, e := range w.Elifs {
			c, err := DecodeExpr(e.Cond)
			if err != nil {
				return nil, err
			}
			b, err := DecodeBlock(e.Body)
			if err != nil {
				return nil, err
			}
			elifs[i] = ast.ElifClause{Cond: c, Body: b}
		}
		elseBlock, err := DecodeBlock(w.Else)
		if err != nil {
			return nil, err
		}
		return &ast.IfStmt{NodeMeta: fromWireMeta(w.Meta), Cond: cond, Body: body, Elifs: elifs, Else: elseBlock}, nil

	case "while":
		var w wireCondBlock
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{NodeMeta: fromWireMeta(w.Meta), Cond: cond, Body: body}, nil

	case "for":
		var w wireFor
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		iterable, err := DecodeExpr(w.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{NodeMeta: fromWireMeta(w.Meta), Target: target, Iterable: iterable, Body: body}, nil

	case "match":
		var w wireMatch
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		subject, err := DecodeExpr(w.Subject)
		if err != nil {
			return nil, err
		}
		cases := make([]ast.MatchCase, len(w.Cases))
		for i, c := range w.Cases {
			pat, err := DecodePattern(c.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := DecodeBlock(c.Body)
			if err != nil {
				return nil, err
			}
			cases[i] = ast.MatchCase{Pattern: pat, Body: body}
		}
		return &ast.MatchStmt{NodeMeta: fromWireMeta(w.Meta), Subject: subject, Cases: cases}, nil

	case "function_def":
		var w wireFunctionDef
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		params := make([]ast.Param, len(w.Params))
		for i, p := range w.Params {
			params[i] = ast.Param{Name: p}
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDef{NodeMeta: fromWireMeta(w.Meta), Name: w.Name, Params: params, Body: body}, nil

	case "class_def":
		var w wireClassDef
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ClassDef{NodeMeta: fromWireMeta(w.Meta), Name: w.Name, Body: body}, nil

	case "assign":
		var w wireAssign
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{NodeMeta: fromWireMeta(w.Meta), Target: target, Value: value}, nil

	case "aug_assign":
		var w wireAugAssign
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.AugAssignStmt{NodeMeta: fromWireMeta(w.Meta), Target: target, Op: augAssignOpFromString(w.Op), Value: value}, nil

	case "expr_stmt":
		var w wireExprStmt
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{NodeMeta: fromWireMeta(w.Meta), Value: value}, nil

	case "pass":
		var w wireBareMeta
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.PassStmt{NodeMeta: fromWireMeta(w.Meta)}, nil

	case "return":
		var w wireReturn
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{NodeMeta: fromWireMeta(w.Meta), Value: value}, nil

	case "break":
		var w wireBareMeta
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{NodeMeta: fromWireMeta(w.Meta)}, nil

	case "continue":
		var w wireBareMeta
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{NodeMeta: fromWireMeta(w.Meta)}, nil

	case "empty":
		var w wireEmpty
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		origin := token.BlankFromSource
		if w.Origin == "generated" {
			origin = token.BlankGenerated
		}
		return &ast.EmptyStmt{NodeMeta: fromWireMeta(w.Meta), Origin: origin}, nil

	case "import":
		var w wireImport
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		return &ast.ImportStmt{NodeMeta: fromWireMeta(w.Meta), Dotted: w.Dotted, Alias: w.Alias}, nil

	case "from_import":
		var w wireFromImport
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		names := make([]ast.ImportedName, len(w.Names))
		for i, nm := range w.Names {
			names[i] = ast.ImportedName{Name: nm.Name, Alias: nm.Alias}
		}
		return &ast.FromImportStmt{NodeMeta: fromWireMeta(w.Meta), Dotted: w.Dotted, Names: names}, nil

	case "try":
		var w wireTry
		if err := json.Unmarshal(n.Data, &w); err != nil {
			return nil, err
		}
		body, err := DecodeBlock(w.Body)
		if err != nil {
			return nil, err
		}
		excepts := make([]ast.ExceptClause, len(w.Excepts))
		for i, ex := range w.Excepts {
			var typ *ast.Expr
			if !isNull(ex.Type) {
				e, err := DecodeExpr(ex.Type)
				if err != nil {
					return nil, err
				}
				typ = &e
			}
			exBody, err := DecodeBlock(ex.Body)
			if err != nil {
				return nil, err
			}
			excepts[i] = ast.ExceptClause{Type: typ, Name: ex.Name, Body: exBody}
		}
		finallyBlock, err := DecodeBlock(w.Finally)
		if err != nil {
			return nil, err
		}
		return &ast.TryStmt{NodeMeta: fromWireMeta(w.Meta), Body: body, Excepts: excepts, Finally: finallyBlock}, nil

	default:
		return nil, fmt.Errorf("ir: unknown statement kind %q", n.Kind)
	}
}

func augAssignOpFromString(s string) token.Operator {
	for op, text := range map[token.Operator]string{
		token.OpPlusEq: "+=", token.OpMinusEq: "-=", token.OpStarEq: "*=",
		token.OpSlashEq: "/=", token.OpPercentEq: "%=",
	} {
		if text == s {
			return op
		}
	}
	return token.NoOperator
}
