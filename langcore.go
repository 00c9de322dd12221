// Package langcore is the language core for an indentation-sensitive,
// Python-like editing surface: lexing, block-structure insertion, trivia
// attachment, parsing, surface↔IR translation, and rendering, behind the
// small external surface a desktop host drives (spec §6 "External
// interfaces").
//
// Grounded on aledsdavies-opal/pkgs/parser/types.go's top-level
// Parse(...) (*ast.Program, []ParseError) entry-point shape, generalized
// to the parse/render/format/validate quartet this spec's host needs
// (supplementing from original_source/src-tauri/src/lib.rs's Tauri
// command surface: get_empty_ir, parse_python_to_ir,
// generate_python_from_ir — run_python has no counterpart here, since
// executing the parsed program is the sandboxed subprocess runner spec §1
// keeps external).
package langcore

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/cache"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/ir"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/render"
	"github.com/indentlang/langcore/internal/token"
	"github.com/indentlang/langcore/internal/trivia"
)

// parseCache memoizes Parse (the default-feature-set path) keyed on source
// text, so a host re-parsing an unedited buffer on every debounce tick
// (an editor revalidating as the user types elsewhere) skips the pipeline
// entirely. ParseWithFeatures never consults it, whatever its feature set,
// since the cache key does not distinguish feature configurations.
var parseCache = cache.New("")

// IrProgram is the persisted interchange representation (spec §3 "IR").
type IrProgram = ir.IrProgram

// Logger is the FieldLogger every entry point logs through, grounded on
// vippsas-sqlcode/cli/cmd/config.go's FieldLogger-injection convention.
// Defaults to logrus' standard logger; a host embedding this package can
// replace it with its own configured instance.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// EmptyIR returns a freshly-minted IR: indent width 4, empty body, no
// token store, dirty (spec §6 "empty_ir").
func EmptyIR() *IrProgram {
	return &IrProgram{
		IndentWidth: 4,
		Dirty:       true,
	}
}

// newCallID gives each top-level entry-point call a short correlation id
// for log correlation across a parse→render pipeline run, grounded on
// vippsas-sqlcode's use of gofrs/uuid for disposable per-call identifiers.
func newCallID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}

// Parse lexes and parses source at the default feature set (match
// enabled), then converts the result to IR (spec §6 "parse"). Results are
// memoized in parseCache.
func Parse(source string) (*IrProgram, error) {
	if irp, ok, err := parseCache.Get(source); err == nil && ok {
		Logger.WithField("call_id", newCallID()).Debug("parse cache hit")
		return irp, nil
	}

	irp, err := ParseWithFeatures(source, feature.Default())
	if err != nil {
		return nil, err
	}
	if err := parseCache.Put(source, irp); err != nil {
		Logger.WithError(err).Debug("parse cache put failed")
	}
	return irp, nil
}

// ParseWithFeatures is Parse with an explicit feature set, supplementing
// spec §6's default-feature-set entry point for hosts that need to parse
// under a non-default gate (e.g. match disabled for a restricted mode).
// Bypasses parseCache, which is only valid for the default feature set.
func ParseWithFeatures(source string, features feature.Set) (*IrProgram, error) {
	callID := newCallID()
	log := Logger.WithField("call_id", callID)

	result, err := lexer.Lex(source)
	if err != nil {
		log.WithError(err).Debug("lex failed")
		return nil, err
	}

	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)

	prog, err := parser.Parse(tokens, raw, result.IndentWidth, features)
	if err != nil {
		log.WithError(err).Debug("parse failed")
		return nil, err
	}

	log.WithField("statements", len(prog.Body)).Debug("parse succeeded")
	return ir.SurfaceToIR(prog), nil
}

// Render converts irp to surface form and renders it to source text per
// cfg (spec §6 "render"). The conversion always runs under the default
// feature set, since the render path carries no feature-gating
// configuration of its own; match is enabled there, so a match statement
// in irp does not cause a ConvertError.
func Render(irp *IrProgram, cfg render.Config) (string, error) {
	prog, err := ir.IRToSurface(irp, feature.Default())
	if err != nil {
		Logger.WithError(err).Debug("render: surface conversion failed")
		return "", err
	}
	return render.Render(prog, cfg), nil
}

// Format is a convenience wrapper that parses source and re-renders it in
// pretty mode, supplementing original_source/src-tauri/src/lib.rs's
// generate_python_from_ir command for the common "reformat this buffer"
// host operation.
func Format(source string) (string, error) {
	irp, err := Parse(source)
	if err != nil {
		return "", err
	}
	return Render(irp, render.Config{Mode: render.Pretty})
}

// Diagnostic is the host-facing shape of a single ParseError/ConvertError
// (spec §6 "Errors"), carrying the message and span without requiring the
// host to import internal/parser or internal/ir directly.
type Diagnostic struct {
	Message string
	Span    token.Span
}

// Validate parses source and reports at most one Diagnostic (the first
// error the core taxonomy produces terminates the operation — spec §7
// "Propagation policy": "first error terminates the operation"). An empty
// slice means source parses cleanly under the default feature set.
func Validate(source string) []Diagnostic {
	_, err := Parse(source)
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *parser.Error:
		return []Diagnostic{{Message: e.Message, Span: e.Span}}
	case *lexer.Error:
		return []Diagnostic{{Message: e.Message, Span: token.Span{Start: e.Pos, End: e.Pos}}}
	default:
		return []Diagnostic{{Message: err.Error()}}
	}
}
