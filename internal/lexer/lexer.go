// Package lexer implements stage 1 of the pipeline (spec §4.1): it segments
// source text into a flat stream of raw tokens, including whitespace,
// comments, and per-line blank markers, tracking paren depth so that
// indentation is suppressed inside brackets, and inferring the project
// indent width from the first non-zero indentation encountered.
//
// The scanning style (byte cursor, ASCII fast paths, ungrounded runes
// counted by decoding width only) is grounded on
// aledsdavies-opal/pkgs/lexer/lexer.go and
// aledsdavies-opal/runtime/lexer/v2/lexer.go.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/indentlang/langcore/internal/token"
)

// Error is a lex-stage failure (spec §4.1 "Failure modes").
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Pos, e.Message)
}

// Option configures a Lexer, grounded on the LexerOpt/LexerConfig functional
// options pattern in aledsdavies-opal/runtime/lexer/v2/lexer.go.
type Option func(*config)

type config struct {
	forcedIndentWidth int // 0 means "infer"
	debug             bool
}

// WithIndentWidth forces the project indent width instead of inferring it
// from the first non-zero indentation. Primarily useful in tests.
func WithIndentWidth(width int) Option {
	return func(c *config) { c.forcedIndentWidth = width }
}

// WithDebug enables per-token debug accounting (currently only token count;
// kept symmetrical with the teacher's WithDebug for lexer-telemetry parity).
func WithDebug() Option {
	return func(c *config) { c.debug = true }
}

// Result is the output of a full lex pass.
type Result struct {
	Tokens     []token.RawToken
	IndentWidth int
	TokenCount  int // populated only when WithDebug is set
}

// Lex tokenizes source into the flat raw-token stream described by spec
// §4.1, returning the inferred (or forced) project indent width alongside
// it.
func Lex(source string, opts ...Option) (Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	l := &lexer{
		input:        source,
		line:         1,
		column:       1,
		atLineStart:  true,
		indentWidth:  0,
		forcedWidth:  cfg.forcedIndentWidth,
		debug:        cfg.debug,
	}

	for {
		tok, err := l.next()
		if err != nil {
			return Result{}, err
		}
		l.tokens = append(l.tokens, tok)
		if cfg.debug {
			l.tokenCount++
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	width := l.indentWidth
	if cfg.forcedIndentWidth > 0 {
		width = cfg.forcedIndentWidth
	} else if width == 0 {
		width = 4
	}

	return Result{Tokens: l.tokens, IndentWidth: width, TokenCount: l.tokenCount}, nil
}

type lexer struct {
	input  string
	pos    int
	line   int
	column int

	parenDepth     int
	atLineStart    bool
	lineHasContent bool

	// pendingNewline holds a NEWLINE token to emit on the next call to
	// next(), used when a blank line's NEWLINE must be emitted after its
	// BLANK marker (spec §4.1 "if the line had no content emit a
	// blank(source) marker first, then emit newline").
	pendingNewline    bool
	pendingNewlineTok token.RawToken

	indentWidth int // inferred project indent width; 0 until first non-zero indentation
	forcedWidth int
	debug       bool

	tokens     []token.RawToken
	tokenCount int
}

func (l *lexer) here() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) peekByte(off int) byte {
	p := l.pos + off
	if p < 0 || p >= len(l.input) {
		return 0
	}
	return l.input[p]
}

func (l *lexer) cur() byte { return l.peekByte(0) }

// advance moves the cursor forward by one rune, updating line/column.
func (l *lexer) advance() byte {
	ch := l.input[l.pos]
	if ch < 0x80 {
		l.pos++
		if ch == '\n' {
			l.line++
			l.column = 1
		} else if ch == '\t' {
			l.column += 4
		} else {
			l.column++
		}
		return ch
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if size <= 0 {
		size = 1
	}
	l.pos += size
	l.column++
	return ch
}

func (l *lexer) span(start token.Position) token.Span {
	return token.Span{Start: start, End: l.here()}
}

func (l *lexer) mk(kind token.Kind, start token.Position, raw string) token.RawToken {
	return token.RawToken{Kind: kind, Span: l.span(start), Raw: raw}
}

// next produces the single next raw token.
func (l *lexer) next() (token.RawToken, error) {
	if l.pendingNewline {
		l.pendingNewline = false
		tok := l.pendingNewlineTok
		l.pendingNewlineTok = token.RawToken{}
		return tok, nil
	}

	if l.atLineStart && l.parenDepth == 0 {
		return l.lexIndentation()
	}

	if l.eof() {
		return token.RawToken{Kind: token.EOF, Span: token.Span{Start: l.here(), End: l.here()}}, nil
	}

	ch := l.cur()

	switch {
	case ch == '\n':
		return l.lexNewline()
	case ch == '#':
		return l.lexComment()
	case ch == ' ' || ch == '\t':
		return l.lexWhitespaceRun()
	case ch == '"' || ch == '\'':
		return l.lexString(ch)
	case isDigit(ch):
		return l.lexNumber()
	case isIdentStart(ch):
		return l.lexIdentOrFString()
	default:
		return l.lexOperatorOrPunct()
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
func isIdentStart(ch byte) bool { return isAlpha(ch) || ch == '_' }
func isIdentPart(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }

// lexIndentation consumes the leading run of spaces/tabs at line start and
// emits an INDENTATION trivium (spec §4.1 "At line start ... emit an
// indentation(width) trivium").
func (l *lexer) lexIndentation() (token.RawToken, error) {
	start := l.here()
	width := 0
	var raw strings.Builder
	for !l.eof() {
		ch := l.cur()
		if ch == ' ' {
			width++
			raw.WriteByte(ch)
			l.advance()
		} else if ch == '\t' {
			width += 4
			raw.WriteByte(ch)
			l.advance()
		} else {
			break
		}
	}
	l.atLineStart = false
	if width > 0 && l.indentWidth == 0 {
		l.indentWidth = width
	}
	tok := l.mk(token.INDENTATION, start, raw.String())
	tok.Level = width
	return tok, nil
}

// lexNewline handles spec §4.1's newline rule: inside brackets it is a
// continuation (raw-whitespace), otherwise it flushes a blank marker when
// the line had no significant content and then emits NEWLINE itself.
func (l *lexer) lexNewline() (token.RawToken, error) {
	start := l.here()
	l.advance() // consume '\n'

	if l.parenDepth > 0 {
		l.atLineStart = false
		return l.mk(token.WHITESPACE, start, "\n"), nil
	}

	hadContent := l.lineHasContent
	end := l.here()
	l.lineHasContent = false
	l.atLineStart = true

	if !hadContent {
		l.pendingNewline = true
		l.pendingNewlineTok = token.RawToken{
			Kind: token.NEWLINE,
			Span: token.Span{Start: start, End: end},
			Raw:  "\n",
		}
		return token.RawToken{
			Kind:        token.BLANK,
			Span:        token.Span{Start: start, End: start},
			BlankOrigin: token.BlankFromSource,
		}, nil
	}

	return token.RawToken{Kind: token.NEWLINE, Span: token.Span{Start: start, End: end}, Raw: "\n"}, nil
}

func (l *lexer) lexComment() (token.RawToken, error) {
	start := l.here()
	l.advance() // consume '#'
	textStart := l.pos
	for !l.eof() && l.cur() != '\n' {
		l.advance()
	}
	text := l.input[textStart:l.pos]
	tok := l.mk(token.COMMENT, start, "#"+text)
	return tok, nil
}

func (l *lexer) lexWhitespaceRun() (token.RawToken, error) {
	start := l.here()
	startPos := l.pos
	for !l.eof() {
		ch := l.cur()
		if ch != ' ' && ch != '\t' {
			break
		}
		l.advance()
	}
	return l.mk(token.WHITESPACE, start, l.input[startPos:l.pos]), nil
}

func (l *lexer) lexNumber() (token.RawToken, error) {
	start := l.here()
	startPos := l.pos
	for !l.eof() && (isDigit(l.cur()) || l.cur() == '.') {
		l.advance()
	}
	l.lineHasContent = true
	return l.mk(token.NUMBER, start, l.input[startPos:l.pos]), nil
}

// lexString scans a quoted string literal (spec §4.1 "Strings").
func (l *lexer) lexString(quote byte) (token.RawToken, error) {
	start := l.here()
	startPos := l.pos
	l.advance() // opening quote

	var value strings.Builder
	escaped := false
	for {
		if l.eof() {
			return token.RawToken{}, &Error{Message: "unterminated string literal", Pos: start}
		}
		ch := l.cur()
		if ch == '\\' {
			escaped = true
			l.advance()
			if l.eof() {
				return token.RawToken{}, &Error{Message: "unterminated string literal", Pos: start}
			}
			esc := l.cur()
			l.advance()
			value.WriteByte(esc)
			continue
		}
		if ch == quote {
			l.advance()
			break
		}
		if ch == '\n' {
			return token.RawToken{}, &Error{Message: "unterminated string literal", Pos: start}
		}
		value.WriteByte(ch)
		l.advance()
	}

	l.lineHasContent = true
	tok := l.mk(token.STRING, start, l.input[startPos:l.pos])
	tok.StringStyle = styleOf(quote)
	tok.StringValue = value.String()
	tok.StringEscaped = escaped
	return tok, nil
}

func styleOf(quote byte) token.StringStyle {
	if quote == '\'' {
		return token.SingleQuote
	}
	return token.DoubleQuote
}

// lexIdentOrFString scans an identifier, keyword, or (when immediately
// followed by a quote) an f-string (spec §4.1 "Identifiers", "F-strings").
func (l *lexer) lexIdentOrFString() (token.RawToken, error) {
	start := l.here()
	startPos := l.pos
	for !l.eof() && isIdentPart(l.cur()) {
		l.advance()
	}
	text := l.input[startPos:l.pos]

	if text == "f" && !l.eof() && (l.cur() == '"' || l.cur() == '\'') {
		return l.lexFString(start)
	}

	l.lineHasContent = true
	if kw, ok := token.Keywords[text]; ok {
		tok := l.mk(token.KEYWORD, start, text)
		tok.Keyword = kw
		return tok, nil
	}
	return l.mk(token.IDENT, start, text), nil
}

// lexFString scans an f-string literal. Each expression slot's text (the
// span strictly between a matching '{' and '}') is recorded verbatim; the
// sub-lexer/sub-parser for that text runs later, in the parser stage (spec
// §4.4 "F-string sub-parse"), so the lexer only needs balanced-brace
// splitting here.
func (l *lexer) lexFString(start token.Position) (token.RawToken, error) {
	quote := l.cur()
	rawStart := start.Offset // includes the leading 'f' already consumed by the caller
	l.advance()              // opening quote

	var parts []token.FStringPart
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			parts = append(parts, token.FStringPart{Kind: token.FStringLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for {
		if l.eof() {
			return token.RawToken{}, &Error{Message: "unterminated f-string literal", Pos: start}
		}
		ch := l.cur()
		if ch == quote {
			l.advance()
			break
		}
		if ch == '\n' {
			return token.RawToken{}, &Error{Message: "unterminated f-string literal", Pos: start}
		}
		if ch == '\\' {
			lit.WriteByte(ch)
			l.advance()
			if !l.eof() {
				lit.WriteByte(l.cur())
				l.advance()
			}
			continue
		}
		if ch == '{' {
			flushLiteral()
			l.advance()
			depth := 1
			exprStart := l.pos
			for depth > 0 {
				if l.eof() {
					return token.RawToken{}, &Error{Message: "unterminated f-string expression", Pos: start}
				}
				c := l.cur()
				if c == '{' {
					depth++
					l.advance()
				} else if c == '}' {
					depth--
					if depth == 0 {
						break
					}
					l.advance()
				} else {
					l.advance()
				}
			}
			exprText := l.input[exprStart:l.pos]
			parts = append(parts, token.FStringPart{Kind: token.FStringExpr, Text: exprText})
			l.advance() // closing '}'
			continue
		}
		lit.WriteByte(ch)
		l.advance()
	}
	flushLiteral()

	l.lineHasContent = true
	tok := l.mk(token.FSTRING, start, l.input[rawStart:l.pos])
	tok.FStringStyle = styleOf(quote)
	tok.FStringParts = parts
	return tok, nil
}

// lexOperatorOrPunct handles punctuation and operators (spec §4.1
// "Operators & punctuation").
func (l *lexer) lexOperatorOrPunct() (token.RawToken, error) {
	start := l.here()
	ch := l.cur()

	switch ch {
	case '(':
		l.advance()
		l.parenDepth++
		l.lineHasContent = true
		return l.mk(token.LPAREN, start, "("), nil
	case ')':
		l.advance()
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.lineHasContent = true
		return l.mk(token.RPAREN, start, ")"), nil
	case '[':
		l.advance()
		l.parenDepth++
		l.lineHasContent = true
		return l.mk(token.LBRACKET, start, "["), nil
	case ']':
		l.advance()
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.lineHasContent = true
		return l.mk(token.RBRACKET, start, "]"), nil
	case '{':
		l.advance()
		l.parenDepth++
		l.lineHasContent = true
		return l.mk(token.LBRACE, start, "{"), nil
	case '}':
		l.advance()
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		l.lineHasContent = true
		return l.mk(token.RBRACE, start, "}"), nil
	case '.':
		l.advance()
		l.lineHasContent = true
		return l.mk(token.DOT, start, "."), nil
	case ':':
		l.advance()
		l.lineHasContent = true
		return l.mk(token.COLON, start, ":"), nil
	case ',':
		l.advance()
		l.lineHasContent = true
		return l.mk(token.COMMA, start, ","), nil
	}

	two := l.peekTwoChar()
	if op, ok := token.TwoCharOperators[two]; ok {
		l.advance()
		l.advance()
		l.lineHasContent = true
		tok := l.mk(token.OPERATOR, start, two)
		tok.Operator = op
		return tok, nil
	}

	if ch == '!' {
		return token.RawToken{}, &Error{Message: "unexpected character '!'", Pos: start}
	}

	if op, ok := token.OneCharOperators[ch]; ok {
		l.advance()
		l.lineHasContent = true
		tok := l.mk(token.OPERATOR, start, string(ch))
		tok.Operator = op
		return tok, nil
	}

	l.advance()
	return token.RawToken{}, &Error{Message: fmt.Sprintf("unexpected character %q", ch), Pos: start}
}

func (l *lexer) peekTwoChar() string {
	if l.pos+1 >= len(l.input) {
		return string(l.cur())
	}
	return l.input[l.pos : l.pos+2]
}
