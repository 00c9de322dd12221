package validate

import (
	"testing"

	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/ir"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/trivia"
)

func marshaledIR(t *testing.T, src string) []byte {
	t.Helper()
	result, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)
	prog, err := parser.Parse(tokens, raw, result.IndentWidth, feature.Default())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	data, err := ir.Marshal(ir.SurfaceToIR(prog))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	return data
}

func TestValidateIRAcceptsWellFormedDocument(t *testing.T) {
	doc := marshaledIR(t, "if value:\n    x = 1\n")
	if err := ValidateIR(doc); err != nil {
		t.Errorf("ValidateIR rejected a well-formed document: %v", err)
	}
}

func TestValidateIRRejectsInvalidJSON(t *testing.T) {
	if err := ValidateIR([]byte("not json")); err == nil {
		t.Error("expected an error for malformed JSON, got nil")
	}
}

func TestValidateIRRejectsMissingRequiredFields(t *testing.T) {
	if err := ValidateIR([]byte(`{"body": []}`)); err == nil {
		t.Error("expected an error for a document missing indent_width/dirty, got nil")
	}
}

func TestValidateIRRejectsWrongFieldType(t *testing.T) {
	doc := []byte(`{"indent_width": "four", "body": [], "dirty": false}`)
	if err := ValidateIR(doc); err == nil {
		t.Error("expected an error for a non-integer indent_width, got nil")
	}
}

func TestValidateIRRejectsMalformedNode(t *testing.T) {
	doc := []byte(`{"indent_width": 4, "body": [{"data": {}}], "dirty": false}`)
	if err := ValidateIR(doc); err == nil {
		t.Error("expected an error for a body node missing its kind tag, got nil")
	}
}
