package token

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	a := Span{Start: Position{Offset: 5}, End: Position{Offset: 10}}
	b := Span{Start: Position{Offset: 2}, End: Position{Offset: 8}}

	got := Join(a, b)
	if got.Start.Offset != 2 {
		t.Errorf("Join start offset = %d, want 2", got.Start.Offset)
	}
	if got.End.Offset != 10 {
		t.Errorf("Join end offset = %d, want 10", got.End.Offset)
	}
}

func TestKindIsTrivia(t *testing.T) {
	trivia := []Kind{COMMENT, WHITESPACE, BLANK, INDENTATION}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = false, want true", k)
		}
	}

	significant := []Kind{IDENT, NUMBER, STRING, NEWLINE, INDENT, DEDENT, EOF}
	for _, k := range significant {
		if k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = true, want false", k)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	got := Kind(9999).String()
	if want := "Kind(9999)"; got != want {
		t.Errorf("Kind(9999).String() = %q, want %q", got, want)
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	for text, kw := range Keywords {
		if got := kw.String(); got != text {
			t.Errorf("Keyword(%d).String() = %q, want %q", kw, got, text)
		}
	}
}

func TestOperatorIsAugmented(t *testing.T) {
	augmented := []Operator{OpPlusEq, OpMinusEq, OpStarEq, OpSlashEq, OpPercentEq}
	for _, op := range augmented {
		if !op.IsAugmented() {
			t.Errorf("%s.IsAugmented() = false, want true", op)
		}
	}
	if OpPlus.IsAugmented() {
		t.Errorf("OpPlus.IsAugmented() = true, want false")
	}
}
