// Package trivia implements stage 3 of the pipeline (spec §4.3): it turns
// the raw stream (lexed and block-structured) into a list of significant
// Tokens, each carrying the trivia (comments, whitespace, blank markers,
// raw indentation) that surrounds it.
//
// Grounded on aledsdavies-opal/pkgs/ast/ast.go's TokenRange{Start,End,All}
// convention of carrying a token's full surrounding context, generalized
// here into explicit leading/trailing trivia lists.
package trivia

import "github.com/indentlang/langcore/internal/token"

// Attach partitions a raw stream into significant tokens decorated with
// leading/trailing trivia, per spec §4.3.
func Attach(raw []token.RawToken) []token.Token {
	var out []token.Token
	var pending []token.RawToken

	// afterNewline tracks whether the most recently appended significant
	// token was a NEWLINE (or we are at the very start of the stream).
	// Trivia seen while true attaches as LEADING to whatever significant
	// token comes next, however many blank/comment-only lines away that
	// is; trivia seen while false attaches as LEADING to the next token on
	// the same line, or, when a NEWLINE ends the line first, as TRAILING to
	// the line's last significant token.
	afterNewline := true

	for _, t := range raw {
		switch {
		case t.Kind.IsTrivia():
			pending = append(pending, t)

		case t.Kind == token.NEWLINE:
			if !afterNewline && len(pending) > 0 {
				out[len(out)-1].TrailingTrivia = append(out[len(out)-1].TrailingTrivia, pending...)
				pending = nil
			}
			out = append(out, token.Token{RawToken: t})
			afterNewline = true

		default:
			tok := token.Token{RawToken: t}
			if len(pending) > 0 {
				tok.LeadingTrivia = pending
				pending = nil
			}
			out = append(out, tok)
			afterNewline = false
		}
	}

	return out
}
