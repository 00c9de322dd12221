package parser

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/indentlang/langcore/internal/token"
)

// Error is a structured parse error (spec §6, §7): a single error
// terminates the operation, carrying the offending span and a short
// message. Grounded on aledsdavies-opal/pkgs/parser/errors.go's ParseError
// (Token + Message + Context + Hint), generalized to the span-based shape
// spec §6 mandates.
type Error struct {
	Message    string
	Span       token.Span
	Suggestion string // "did you mean ...", populated when a close match exists
}

// Error implements the error interface with the "line L:C message" form
// mandated by spec §6.
func (e *Error) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("line %s %s (did you mean %q?)", e.Span.Start, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("line %s %s", e.Span.Start, e.Message)
}

// knownKeywords lists every closed keyword, used to build "did you mean"
// suggestions for unrecognized identifiers that appear where a keyword was
// expected. Grounded on
// opal-lang-opal/runtime/planner/planner.go's findClosestMatch
// (fuzzy.RankFindFold) for near-miss suggestions.
var knownKeywords = func() []string {
	names := make([]string, 0, len(token.Keywords))
	for name := range token.Keywords {
		names = append(names, name)
	}
	return names
}()

// suggestKeyword returns the closest known keyword to text, or "" if none
// is close enough to be a plausible typo.
func suggestKeyword(text string) string {
	ranks := fuzzy.RankFindFold(text, knownKeywords)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	if best.Distance > 2 {
		return ""
	}
	return best.Target
}
