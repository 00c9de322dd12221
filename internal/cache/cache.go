// Package cache implements a content-hash-keyed cache mapping source text
// to the IrProgram it last parsed to, so a host that re-parses the same
// unedited buffer repeatedly (an editor re-validating on every keystroke
// debounce) can skip the lex/blockstruct/trivia/parse pipeline entirely.
//
// Grounded on aledsdavies-opal/core/planfmt/writer.go and reader.go's
// persisted-form idiom (a framed binary envelope around structured plan
// data); adapted from that package's bespoke MAGIC|VERSION|FLAGS framing
// to a CBOR envelope, since fxamacker/cbor/v2 is the teacher's actual
// binary-codec dependency (used there for terminal/manifest structures)
// and no component here needs detached-signature or compression flags.
// The envelope wraps internal/ir's own JSON tagged-union payload rather
// than re-deriving a second tree codec in CBOR.
package cache

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/indentlang/langcore/internal/ir"
)

// frame is the on-disk/in-memory envelope: the source hash the payload was
// computed from, plus the IR's own JSON wire encoding.
type frame struct {
	Hash    []byte `cbor:"hash"`
	Payload []byte `cbor:"payload"`
}

// Cache maps source text to its parsed IrProgram, held in memory and
// optionally mirrored to disk.
type Cache struct {
	mu      sync.RWMutex
	entries map[[32]byte]frame
	dir     string // empty disables disk persistence
}

// New returns a Cache. dir, if non-empty, is used to persist entries across
// process restarts (one file per hash).
func New(dir string) *Cache {
	return &Cache{entries: make(map[[32]byte]frame), dir: dir}
}

func hashSource(source string) [32]byte {
	return blake2b.Sum256([]byte(source))
}

// Get returns the cached IrProgram for source, if present.
func (c *Cache) Get(source string) (*ir.IrProgram, bool, error) {
	h := hashSource(source)

	c.mu.RLock()
	f, ok := c.entries[h]
	c.mu.RUnlock()

	if !ok {
		var err error
		f, ok, err = c.loadFromDisk(h)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		c.mu.Lock()
		c.entries[h] = f
		c.mu.Unlock()
	}

	irp, err := ir.Unmarshal(f.Payload)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decoding cached entry: %w", err)
	}
	return irp, true, nil
}

// Put records irp as the parse result of source.
func (c *Cache) Put(source string, irp *ir.IrProgram) error {
	h := hashSource(source)
	payload, err := ir.Marshal(irp)
	if err != nil {
		return fmt.Errorf("cache: encoding entry: %w", err)
	}
	f := frame{Hash: h[:], Payload: payload}

	c.mu.Lock()
	c.entries[h] = f
	c.mu.Unlock()

	return c.storeToDisk(h, f)
}

func (c *Cache) diskPath(h [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(h[:])+".cache")
}

func (c *Cache) storeToDisk(h [32]byte, f frame) error {
	if c.dir == "" {
		return nil
	}
	data, err := cbor.Marshal(f)
	if err != nil {
		return fmt.Errorf("cache: cbor encode: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating cache dir: %w", err)
	}
	return os.WriteFile(c.diskPath(h), data, 0o644)
}

func (c *Cache) loadFromDisk(h [32]byte) (frame, bool, error) {
	if c.dir == "" {
		return frame{}, false, nil
	}
	data, err := os.ReadFile(c.diskPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return frame{}, false, nil
		}
		return frame{}, false, fmt.Errorf("cache: reading cache file: %w", err)
	}
	var f frame
	if err := cbor.Unmarshal(data, &f); err != nil {
		return frame{}, false, fmt.Errorf("cache: cbor decode: %w", err)
	}
	return f, true, nil
}
