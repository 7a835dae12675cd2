package challenge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/chunk"
)

func makeChunk(kind chunk.Kind, nonWhitespaceTarget int) chunk.Chunk {
	var b strings.Builder
	for i := 0; i < nonWhitespaceTarget; i++ {
		b.WriteByte('x')
		if i%10 == 9 {
			b.WriteString(";\n")
		}
	}
	return chunk.Chunk{Content: b.String(), Kind: kind, StartLine: 1, EndLine: 1}
}

func TestApplicableDifficultiesFunction150Chars(t *testing.T) {
	c := makeChunk(chunk.KindFunction, 150)
	applicable := ApplicableDifficulties(c)
	has := func(d chunk.Difficulty) bool {
		for _, x := range applicable {
			if x == d {
				return true
			}
		}
		return false
	}
	assert.True(t, has(chunk.Easy))
	assert.True(t, has(chunk.Normal))
	assert.True(t, has(chunk.Wild))
	assert.False(t, has(chunk.Hard))
	assert.False(t, has(chunk.Zen))
}

func TestApplicableDifficultiesFileChunk1000Chars(t *testing.T) {
	c := makeChunk(chunk.KindFile, 1000)
	applicable := ApplicableDifficulties(c)
	assert.Len(t, applicable, 5)
}

func TestSplitRejectsBelowMinimum(t *testing.T) {
	c := makeChunk(chunk.KindFunction, 10)
	_, ok := Split(c, chunk.Easy)
	assert.False(t, ok)
}

func TestSplitTruncatesAtNaturalBoundary(t *testing.T) {
	c := makeChunk(chunk.KindFunction, 150)
	got, ok := Split(c, chunk.Easy)
	require.True(t, ok)
	codeChars := chunk.CodeCharCount(got.CodeContent, got.CommentRanges)
	assert.True(t, codeChars >= chunk.Windows[chunk.Easy].Min)
	assert.True(t, codeChars <= chunk.Windows[chunk.Easy].Max)
}

func TestSplitAcceptsWithinWindowUnchanged(t *testing.T) {
	c := makeChunk(chunk.KindFunction, 150)
	got, ok := Split(c, chunk.Normal)
	require.True(t, ok)
	assert.Equal(t, c.Content, got.CodeContent)
}
