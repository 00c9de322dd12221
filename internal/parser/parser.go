// Package parser implements stage 4 of the pipeline (spec §4.4):
// recursive-descent parsing of the significant-token stream into the
// surface tree defined by internal/ast.
//
// Grounded on aledsdavies-opal/pkgs/parser/parser.go's token-cursor
// recursive-descent shape (expect/peek/advance helpers) and
// aledsdavies-opal/pkgs/parser/errors.go's error-construction conventions.
package parser

import (
	"fmt"

	"github.com/indentlang/langcore/internal/ast"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/token"
)

// Parser holds the cursor over the significant-token stream and allocates
// NodeIds monotonically (spec §4.4 "Allocates NodeIds monotonically").
type Parser struct {
	tokens      []token.Token
	pos         int
	indentWidth int
	features    feature.Set
	nextID      int
}

// Parse runs the recursive-descent parser over tokens and returns the
// resulting Program, or the first ParseError encountered (spec §4.4, §7:
// "the core fails fast: first error terminates the operation").
func Parse(tokens []token.Token, rawTokens []token.RawToken, indentWidth int, features feature.Set) (prog *ast.Program, err error) {
	p := &Parser{tokens: tokens, indentWidth: indentWidth, features: features, nextID: 1}

	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*Error); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()

	start := p.mark()
	body := p.parseProgramBody()
	meta := p.finish(start)

	return &ast.Program{
		NodeMeta:    meta,
		IndentWidth: indentWidth,
		Body:        body,
		Tokens:      tokens,
		RawTokens:   rawTokens,
		Dirty:       false,
	}, nil
}

// --- cursor helpers -------------------------------------------------------

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// advance consumes and returns the current token, never stepping past the
// trailing EOF token so cur() keeps returning it once exhausted.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) checkKeyword(kw token.Keyword) bool {
	t := p.cur()
	return t.Kind == token.KEYWORD && t.Keyword == kw
}

func (p *Parser) checkOperator(op token.Operator) bool {
	t := p.cur()
	return t.Kind == token.OPERATOR && t.Operator == op
}

func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if !p.check(kind) {
		p.fail(fmt.Sprintf("expected %s, found %s", what, p.cur().Kind), p.cur().Span)
	}
	return p.advance()
}

func (p *Parser) expectKeyword(kw token.Keyword) token.Token {
	if !p.checkKeyword(kw) {
		p.fail(fmt.Sprintf("expected %q, found %s", kw, describeTok(p.cur())), p.cur().Span)
	}
	return p.advance()
}

func describeTok(t token.Token) string {
	switch t.Kind {
	case token.IDENT:
		return fmt.Sprintf("identifier %q", t.Raw)
	case token.KEYWORD:
		return fmt.Sprintf("keyword %q", t.Keyword)
	case token.OPERATOR:
		return fmt.Sprintf("operator %q", t.Operator)
	case token.EOF:
		return "end of input"
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Raw)
	}
}

// fail panics with a structured *Error, unwound by Parse's recover (spec
// §4.4 "Failure semantics: ... parsing aborts. No error recovery.").
func (p *Parser) fail(message string, span token.Span) {
	e := &Error{Message: message, Span: span}
	if p.cur().Kind == token.IDENT {
		if s := suggestKeyword(p.cur().Raw); s != "" {
			e.Suggestion = s
		}
	}
	panic(e)
}

// --- node metadata ----------------------------------------------------

func (p *Parser) mark() int { return p.pos }

func (p *Parser) allocID() int {
	id := p.nextID
	p.nextID++
	return id
}

// finish builds a NodeMeta covering tokens [start, p.pos-1] (inclusive). It
// must be called immediately after the node's last token was consumed.
func (p *Parser) finish(start int) ast.NodeMeta {
	id := p.allocID()

	end := p.pos - 1
	if end < start {
		end = start
	}
	if end >= len(p.tokens) {
		end = len(p.tokens) - 1
	}
	startTok := p.tokens[start]
	endTok := p.tokens[end]

	return ast.NodeMeta{
		ID:             id,
		Span:           token.Span{Start: startTok.Span.Start, End: endTok.Span.End},
		Start:          start,
		End:            end,
		LeadingTrivia:  append([]token.RawToken(nil), startTok.LeadingTrivia...),
		TrailingTrivia: append([]token.RawToken(nil), endTok.TrailingTrivia...),
	}
}
