// Package validate checks an IR document's wire shape against a JSON
// Schema before internal/ir ever attempts to decode it, so a malformed
// document from a host (a hand-edited file, a buggy client) fails with a
// schema error at the boundary instead of a confusing decode panic deep in
// a recursive DecodeStmt/DecodeExpr call.
//
// Grounded on aledsdavies-opal/core/types/validation.go: a Validator that
// compiles a schema once via santhosh-tekuri/jsonschema and caches the
// compiled *jsonschema.Schema, reused across calls.
package validate

// irDocumentSchema validates the IrProgram envelope (spec §6
// "Serialization"): the program-level fields and the {"kind","data"} tagged
// -union shape every node wire form shares. It does not re-derive the full
// recursive statement/expression grammar — that is internal/ir's job, and
// duplicating it here would just be a second, driftable copy of the same
// rules; this schema exists to catch a malformed document before decoding
// even starts.
const irDocumentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://indentlang.dev/schema/ir-program.json",
	"type": "object",
	"required": ["indent_width", "body", "dirty"],
	"properties": {
		"meta": { "$ref": "#/$defs/meta" },
		"indent_width": { "type": "integer", "minimum": 0 },
		"body": {
			"type": "array",
			"items": { "$ref": "#/$defs/node" }
		},
		"token_store": {
			"type": "array",
			"items": { "$ref": "#/$defs/rawToken" }
		},
		"dirty": { "type": "boolean" }
	},
	"$defs": {
		"node": {
			"oneOf": [
				{ "type": "null" },
				{
					"type": "object",
					"required": ["kind"],
					"properties": {
						"kind": { "type": "string", "minLength": 1 },
						"data": {}
					}
				}
			]
		},
		"meta": {
			"type": "object",
			"properties": {
				"id": { "type": "integer" },
				"span": { "$ref": "#/$defs/span" },
				"token_start": { "type": "integer", "minimum": 0 },
				"token_end": { "type": "integer", "minimum": 0 }
			}
		},
		"span": {
			"type": "object",
			"properties": {
				"start": { "$ref": "#/$defs/pos" },
				"end": { "$ref": "#/$defs/pos" }
			}
		},
		"pos": {
			"type": "object",
			"properties": {
				"line": { "type": "integer" },
				"col": { "type": "integer" },
				"offset": { "type": "integer" }
			}
		},
		"rawToken": {
			"type": "object",
			"required": ["kind", "raw"],
			"properties": {
				"kind": { "type": "string", "minLength": 1 },
				"raw": { "type": "string" },
				"level": { "type": "integer" },
				"blank_origin": { "type": "string" }
			}
		}
	}
}`
