package parser

import (
	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/token"
)

// parseProgramBody implements spec §4.4 "Top-level": parse_program loops
// over statements until EOF. A bare newline at top level becomes an
// EmptyStmt{source=Source}.
func (p *Parser) parseProgramBody() []ast.Stmt {
	var body []ast.Stmt
	for !p.atEOF() {
		body = append(body, p.parseStatement())
	}
	return body
}

// parseStatement dispatches on the current token's keyword, or falls
// through to assignment/expression-statement parsing (spec §4.4).
func (p *Parser) parseStatement() ast.Stmt {
	t := p.cur()

	if t.Kind == token.NEWLINE {
		start := p.mark()
		p.advance()
		return &ast.EmptyStmt{NodeMeta: p.finish(start), Origin: token.BlankFromSource}
	}

	if t.Kind == token.KEYWORD {
		switch t.Keyword {
		case token.KwIf:
			return p.parseIf()
		case token.KwWhile:
			return p.parseWhile()
		case token.KwFor:
			return p.parseFor()
		case token.KwMatch:
			return p.parseMatch()
		case token.KwDef:
			return p.parseFunctionDef()
		case token.KwClass:
			return p.parseClassDef()
		case token.KwPass:
			return p.parseSimpleKeywordStmt(token.KwPass)
		case token.KwBreak:
			return p.parseSimpleKeywordStmt(token.KwBreak)
		case token.KwContinue:
			return p.parseSimpleKeywordStmt(token.KwContinue)
		case token.KwReturn:
			return p.parseReturn()
		case token.KwImport:
			return p.parseImport()
		case token.KwFrom:
			return p.parseFromImport()
		case token.KwTry:
			return p.parseTry()
		case token.KwElif, token.KwElse:
			p.fail("'"+t.Keyword.String()+"' must follow 'if'", t.Span)
		case token.KwCase:
			p.fail("'case' outside 'match'", t.Span)
		case token.KwExcept, token.KwFinally:
			p.fail("'"+t.Keyword.String()+"' must follow 'try'", t.Span)
		}
	}

	return p.parseAssignOrExprStmt()
}

// consumeTerminator enforces spec §4.4 "Statement ends at newline, dedent,
// or EOF."
func (p *Parser) consumeTerminator() {
	if p.check(token.NEWLINE) {
		p.advance()
		return
	}
	if p.check(token.DEDENT) || p.atEOF() {
		return
	}
	p.fail("expected newline", p.cur().Span)
}

// parseBlock implements spec §4.4 "Block parsing": expect a newline,
// absorb any trailing blank newlines (each becomes an EmptyStmt inside the
// block), then expect an INDENT, a sequence of statements, and a DEDENT.
func (p *Parser) parseBlock() *ast.Block {
	start := p.mark()
	p.expect(token.NEWLINE, "newline")

	var statements []ast.Stmt
	for p.check(token.NEWLINE) {
		blankStart := p.mark()
		p.advance()
		statements = append(statements, &ast.EmptyStmt{NodeMeta: p.finish(blankStart), Origin: token.BlankFromSource})
	}

	indentTok := p.expect(token.INDENT, "indented block")
	indentLevel := indentTok.Level
	if p.indentWidth > 0 {
		if indentLevel%p.indentWidth != 0 {
			p.fail("indentation is not a multiple of the project indent width", indentTok.Span)
		}
		indentLevel /= p.indentWidth
	}

	for !p.check(token.DEDENT) && !p.atEOF() {
		statements = append(statements, p.parseStatement())
	}
	p.expect(token.DEDENT, "dedent")

	return &ast.Block{NodeMeta: p.finish(start), IndentLevel: indentLevel, Statements: statements}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwIf)
	cond := p.parseExpr(p.fullCtx())
	p.expect(token.COLON, "':'")
	body := p.parseBlock()

	var elifs []ast.ElifClause
	for p.checkKeyword(token.KwElif) {
		p.advance()
		c := p.parseExpr(p.fullCtx())
		p.expect(token.COLON, "':'")
		b := p.parseBlock()
		elifs = append(elifs, ast.ElifClause{Cond: c, Body: b})
	}

	var elseBlock *ast.Block
	if p.checkKeyword(token.KwElse) {
		p.advance()
		p.expect(token.COLON, "':'")
		elseBlock = p.parseBlock()
	}

	return &ast.IfStmt{NodeMeta: p.finish(start), Cond: cond, Body: body, Elifs: elifs, Else: elseBlock}
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwWhile)
	cond := p.parseExpr(p.fullCtx())
	p.expect(token.COLON, "':'")
	body := p.parseBlock()
	return &ast.WhileStmt{NodeMeta: p.finish(start), Cond: cond, Body: body}
}

// parseFor implements spec §4.4 "for requires <target> in <iterable>".
// The target is parsed with allowIn=false so the compare-level parser
// does not consume the loop's own `in` keyword as a chained comparison.
func (p *Parser) parseFor() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwFor)

	targetCtx := p.fullCtx()
	targetCtx.allowIn = false
	target := p.parseExpr(targetCtx)

	p.expectKeyword(token.KwIn)
	iterable := p.parseExpr(p.fullCtx())
	p.expect(token.COLON, "':'")
	body := p.parseBlock()

	return &ast.ForStmt{NodeMeta: p.finish(start), Target: target, Iterable: iterable, Body: body}
}

// parseMatch implements spec §6 feature gating: when the match feature is
// disabled, encountering `match` fails with "match is disabled".
func (p *Parser) parseMatch() ast.Stmt {
	start := p.mark()
	matchSpan := p.cur().Span
	if !p.features.MatchStmt {
		p.fail("match is disabled", matchSpan)
	}
	p.expectKeyword(token.KwMatch)
	subject := p.parseExpr(p.fullCtx())
	p.expect(token.COLON, "':'")
	p.expect(token.NEWLINE, "newline")

	for p.check(token.NEWLINE) {
		p.advance()
	}
	p.expect(token.INDENT, "indented match body")

	var cases []ast.MatchCase
	for p.checkKeyword(token.KwCase) {
		p.advance()
		pat := p.parsePattern()
		p.expect(token.COLON, "':'")
		body := p.parseBlock()
		cases = append(cases, ast.MatchCase{Pattern: pat, Body: body})
	}
	p.expect(token.DEDENT, "dedent")

	return &ast.MatchStmt{NodeMeta: p.finish(start), Subject: subject, Cases: cases}
}

func (p *Parser) parseFunctionDef() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwDef)
	name := p.expect(token.IDENT, "function name").Raw
	p.expect(token.LPAREN, "'('")

	var params []ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, ast.Param{Name: p.expect(token.IDENT, "parameter name").Raw})
		for p.check(token.COMMA) {
			p.advance()
			if p.check(token.RPAREN) {
				break
			}
			params = append(params, ast.Param{Name: p.expect(token.IDENT, "parameter name").Raw})
		}
	}
	p.expect(token.RPAREN, "')'")
	p.expect(token.COLON, "':'")
	body := p.parseBlock()

	return &ast.FunctionDef{NodeMeta: p.finish(start), Name: name, Params: params, Body: body}
}

func (p *Parser) parseClassDef() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwClass)
	name := p.expect(token.IDENT, "class name").Raw
	p.expect(token.COLON, "':'")
	body := p.parseBlock()
	return &ast.ClassDef{NodeMeta: p.finish(start), Name: name, Body: body}
}

func (p *Parser) parseSimpleKeywordStmt(kw token.Keyword) ast.Stmt {
	start := p.mark()
	p.expectKeyword(kw)
	p.consumeTerminator()
	meta := p.finish(start)
	switch kw {
	case token.KwPass:
		return &ast.PassStmt{NodeMeta: meta}
	case token.KwBreak:
		return &ast.BreakStmt{NodeMeta: meta}
	default:
		return &ast.ContinueStmt{NodeMeta: meta}
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwReturn)
	var value ast.Expr
	if !p.check(token.NEWLINE) && !p.check(token.DEDENT) && !p.atEOF() {
		value = p.parseExpr(p.fullCtx())
	}
	p.consumeTerminator()
	return &ast.ReturnStmt{NodeMeta: p.finish(start), Value: value}
}

func (p *Parser) parseDottedName() string {
	name := p.expect(token.IDENT, "module name").Raw
	for p.check(token.DOT) {
		p.advance()
		name += "." + p.expect(token.IDENT, "module name").Raw
	}
	return name
}

func (p *Parser) parseImport() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwImport)
	dotted := p.parseDottedName()
	alias := ""
	if p.checkKeyword(token.KwAs) {
		p.advance()
		alias = p.expect(token.IDENT, "alias").Raw
	}
	p.consumeTerminator()
	return &ast.ImportStmt{NodeMeta: p.finish(start), Dotted: dotted, Alias: alias}
}

func (p *Parser) parseImportedName() ast.ImportedName {
	name := p.expect(token.IDENT, "imported name").Raw
	alias := ""
	if p.checkKeyword(token.KwAs) {
		p.advance()
		alias = p.expect(token.IDENT, "alias").Raw
	}
	return ast.ImportedName{Name: name, Alias: alias}
}

func (p *Parser) parseFromImport() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwFrom)
	dotted := p.parseDottedName()
	p.expectKeyword(token.KwImport)

	names := []ast.ImportedName{p.parseImportedName()}
	for p.check(token.COMMA) {
		p.advance()
		names = append(names, p.parseImportedName())
	}
	p.consumeTerminator()
	return &ast.FromImportStmt{NodeMeta: p.finish(start), Dotted: dotted, Names: names}
}

func (p *Parser) parseTry() ast.Stmt {
	start := p.mark()
	p.expectKeyword(token.KwTry)
	p.expect(token.COLON, "':'")
	body := p.parseBlock()

	var excepts []ast.ExceptClause
	for p.checkKeyword(token.KwExcept) {
		p.advance()
		var typ *ast.Expr
		name := ""
		if !p.check(token.COLON) {
			t := p.parseExpr(p.fullCtx())
			typ = &t
			if p.checkKeyword(token.KwAs) {
				p.advance()
				name = p.expect(token.IDENT, "exception name").Raw
			}
		}
		p.expect(token.COLON, "':'")
		b := p.parseBlock()
		excepts = append(excepts, ast.ExceptClause{Type: typ, Name: name, Body: b})
	}

	var finallyBlock *ast.Block
	if p.checkKeyword(token.KwFinally) {
		p.advance()
		p.expect(token.COLON, "':'")
		finallyBlock = p.parseBlock()
	}

	return &ast.TryStmt{NodeMeta: p.finish(start), Body: body, Excepts: excepts, Finally: finallyBlock}
}

// parseAssignOrExprStmt parses an expression and then decides, from what
// follows, whether it is an assignment, an augmented assignment, or a bare
// expression statement (spec §4.4).
func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	start := p.mark()
	target := p.parseExpr(p.fullCtx())

	if p.check(token.OPERATOR) && p.cur().Operator == token.OpAssign {
		p.advance()
		value := p.parseExpr(p.fullCtx())
		p.consumeTerminator()
		return &ast.AssignStmt{NodeMeta: p.finish(start), Target: target, Value: value}
	}

	if p.check(token.OPERATOR) && p.cur().Operator.IsAugmented() {
		op := p.advance().Operator
		value := p.parseExpr(p.fullCtx())
		p.consumeTerminator()
		return &ast.AugAssignStmt{NodeMeta: p.finish(start), Target: target, Op: op, Value: value}
	}

	p.consumeTerminator()
	return &ast.ExprStmt{NodeMeta: p.finish(start), Value: target}
}
