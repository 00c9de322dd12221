package ir

import (
	"golang.org/x/crypto/blake2b"
)

// Hash returns the blake2b-256 digest of the canonical JSON encoding of
// irp, exposed as an optional integrity digest a host can compare across
// loads/saves to detect whether an IR document changed underneath it
// (SPEC_FULL.md "internal/ir" supplement, grounded on
// aledsdavies-opal/core/planfmt/writer.go's doc-commented 32-byte file
// hash). Distinct from internal/cache's key, which hashes source text
// rather than IR content.
func Hash(irp *IrProgram) ([32]byte, error) {
	data, err := Marshal(irp)
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}
