package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/chunk"
)

func TestExtractFileRustFunctions(t *testing.T) {
	src := []byte(`fn hello_world() {
    println!("Hello, world!");
}

pub fn add(a: i32, b: i32) -> i32 {
    a + b
}
`)
	e := New(nil)
	chunks, err := e.ExtractFile(context.Background(), "lib.rs", "rust", src)
	require.NoError(t, err)

	var fns []chunk.Chunk
	for _, c := range chunks {
		if c.Kind == chunk.KindFunction {
			fns = append(fns, c)
		}
	}
	require.Len(t, fns, 2)
	names := map[string]bool{}
	for _, c := range fns {
		names[c.SymbolName] = true
		assert.Equal(t, 0, c.OriginalIndentation)
		assert.Empty(t, c.CommentRanges)
	}
	assert.True(t, names["hello_world"])
	assert.True(t, names["add"])

	hasFileChunk := false
	for _, c := range chunks {
		if c.Kind == chunk.KindFile {
			hasFileChunk = true
		}
	}
	assert.True(t, hasFileChunk)
}

func TestExtractFileCommentRanges(t *testing.T) {
	src := []byte(`// Sample function with comments
fn calculate_sum(a: i32, b: i32) -> i32 {
    let result = a + b; // Add the numbers
    result
}
`)
	e := New(nil)
	chunks, err := e.ExtractFile(context.Background(), "calc.rs", "rust", src)
	require.NoError(t, err)

	var fn *chunk.Chunk
	for i := range chunks {
		if chunks[i].Kind == chunk.KindFunction {
			fn = &chunks[i]
		}
	}
	require.NotNil(t, fn)
	assert.NotEmpty(t, fn.CommentRanges)
	for _, r := range fn.CommentRanges {
		assert.True(t, r.Start < r.End)
		assert.True(t, r.End <= len(fn.Content))
	}
}
