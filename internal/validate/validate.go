package validate

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates raw IR documents against the compiled schema before
// they reach internal/ir's decoder.
type Validator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// Default is a package-level Validator shared by callers that don't need
// their own cache lifetime (the package-level ValidateIR uses this).
var Default = &Validator{}

func (v *Validator) compile() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("ir-program.json", bytes.NewReader([]byte(irDocumentSchema))); err != nil {
		v.err = fmt.Errorf("validate: compiling schema resource: %w", err)
		return
	}
	schema, err := compiler.Compile("ir-program.json")
	if err != nil {
		v.err = fmt.Errorf("validate: compiling schema: %w", err)
		return
	}
	v.schema = schema
}

// ValidateIR reports whether doc is a well-formed IR document per spec §6's
// wire contract. It does not attempt to fully decode the document — a
// document that passes ValidateIR can still fail internal/ir.Unmarshal if
// a nested node kind is unrecognized.
func (v *Validator) ValidateIR(doc []byte) error {
	v.once.Do(v.compile)
	if v.err != nil {
		return v.err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("validate: invalid JSON: %w", err)
	}
	if err := v.schema.Validate(instance); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// ValidateIR validates doc against the package-level Default validator.
func ValidateIR(doc []byte) error {
	return Default.ValidateIR(doc)
}
