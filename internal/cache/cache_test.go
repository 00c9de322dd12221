package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indentlang/langcore/internal/blockstruct"
	"github.com/indentlang/langcore/internal/feature"
	"github.com/indentlang/langcore/internal/ir"
	"github.com/indentlang/langcore/internal/lexer"
	"github.com/indentlang/langcore/internal/parser"
	"github.com/indentlang/langcore/internal/trivia"
)

func parseToIR(t *testing.T, src string) *ir.IrProgram {
	t.Helper()
	result, err := lexer.Lex(src)
	require.NoError(t, err)
	raw := blockstruct.Insert(result.Tokens)
	tokens := trivia.Attach(raw)
	prog, err := parser.Parse(tokens, raw, result.IndentWidth, feature.Default())
	require.NoError(t, err)
	return ir.SurfaceToIR(prog)
}

func TestCacheMiss(t *testing.T) {
	c := New("")
	_, ok, err := c.Get("x = 1\n")
	require.NoError(t, err)
	assert.False(t, ok, "Get on an empty cache reported a hit")
}

func TestCacheMemoryRoundTrip(t *testing.T) {
	c := New("")
	src := "x = 1\n"
	irp := parseToIR(t, src)

	require.NoError(t, c.Put(src, irp))

	got, ok, err := c.Get(src)
	require.NoError(t, err)
	require.True(t, ok, "expected a cache hit after Put")
	assert.Equal(t, len(irp.Body), len(got.Body))
}

func TestCacheKeyedOnSourceText(t *testing.T) {
	c := New("")
	a := "x = 1\n"
	b := "x = 2\n"

	require.NoError(t, c.Put(a, parseToIR(t, a)))

	_, ok, err := c.Get(b)
	require.NoError(t, err)
	assert.False(t, ok, "Get reported a hit for source text that was never Put")
}

func TestCacheDiskPersistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "langcore-cache")
	src := "x = 1\ny = 2\n"
	irp := parseToIR(t, src)

	writer := New(dir)
	require.NoError(t, writer.Put(src, irp))

	reader := New(dir)
	got, ok, err := reader.Get(src)
	require.NoError(t, err)
	require.True(t, ok, "expected a disk-backed cache hit in a fresh Cache over the same dir")
	assert.Equal(t, len(irp.Body), len(got.Body))
}
