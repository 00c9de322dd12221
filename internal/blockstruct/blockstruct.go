// Package blockstruct implements stage 2 of the pipeline (spec §4.2): it
// rewrites the raw token stream produced by internal/lexer so that
// synthetic INDENT/DEDENT tokens mark logical block boundaries, driven by a
// stack of active indentation widths.
//
// The algorithm has no analogue in the teacher repo (aledsdavies-opal's
// command language is not indentation-sensitive); it is grounded on
// original_source/src-tauri/src/ast/lexer.rs, the reference implementation
// this spec was distilled from.
package blockstruct

import "github.com/indentlang/langcore/internal/token"

// Insert rewrites a raw token stream to carry INDENT/DEDENT structure,
// per spec §4.2.
func Insert(raw []token.RawToken) []token.RawToken {
	out := make([]token.RawToken, 0, len(raw)+8)
	stack := []int{0}

	var buffered *token.RawToken // most recent INDENTATION token, pending re-emission

	// pendingCompare is true exactly when the next significant,
	// non-newline token is the first one on its logical line and must be
	// compared against the indent stack. It starts true (start of file) and
	// is set true again after every NEWLINE; paren-continuation newlines
	// are lexed as WHITESPACE, not NEWLINE, so they never re-arm it —
	// which is exactly how indentation is suppressed inside brackets.
	pendingCompare := true

	flushBuffered := func() {
		if buffered != nil {
			ws := *buffered
			ws.Kind = token.WHITESPACE
			out = append(out, ws)
			buffered = nil
		}
	}

	var lastPos token.Position

	for _, tok := range raw {
		lastPos = tok.Span.End

		switch {
		case tok.Kind == token.INDENTATION:
			buffered = new(token.RawToken)
			*buffered = tok
			continue

		case tok.Kind.IsTrivia():
			// Non-indentation trivia (comment, whitespace, blank) never
			// triggers a compare; pass through untouched. A buffered
			// INDENTATION token must still be flushed first so its text
			// precedes whatever trivia follows it on the line (an indented
			// comment-only line carries INDENTATION before the COMMENT in
			// the raw stream).
			flushBuffered()
			out = append(out, tok)
			continue

		case tok.Kind == token.NEWLINE:
			// A newline while an indentation is still buffered (a
			// whitespace-only or comment-only blank line) flushes the
			// buffer as whitespace and re-enters line-start mode (spec
			// §4.2).
			flushBuffered()
			out = append(out, tok)
			pendingCompare = true
			continue

		case tok.Kind == token.EOF:
			flushBuffered()
			for len(stack) > 1 {
				stack = stack[:len(stack)-1]
				out = append(out, token.RawToken{
					Kind:  token.DEDENT,
					Span:  token.Span{Start: lastPos, End: lastPos},
					Level: 0,
				})
			}
			out = append(out, tok)
			continue

		default:
			if pendingCompare {
				width := 0
				if buffered != nil {
					width = buffered.Level
				}
				top := stack[len(stack)-1]

				switch {
				case width > top && width > 0:
					stack = append(stack, width)
					out = append(out, token.RawToken{
						Kind:  token.INDENT,
						Span:  token.Span{Start: tok.Span.Start, End: tok.Span.Start},
						Level: width,
					})
				case width < top:
					for len(stack) > 1 && stack[len(stack)-1] > width {
						stack = stack[:len(stack)-1]
						out = append(out, token.RawToken{
							Kind:  token.DEDENT,
							Span:  token.Span{Start: tok.Span.Start, End: tok.Span.Start},
							Level: width,
						})
					}
				}
				pendingCompare = false
			}

			flushBuffered()
			out = append(out, tok)
		}
	}

	return out
}
