package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
)

func makeChallenge(content string, ranges []chunk.Range) challenge.Challenge {
	c, ok := challenge.FromChunk(chunk.Chunk{
		Content:       content,
		FilePath:      "main.go",
		StartLine:     1,
		EndLine:       1,
		Language:      "go",
		Kind:          chunk.KindFunction,
		CommentRanges: ranges,
	}, chunk.Easy)
	if !ok {
		panic("unexpected empty challenge in test fixture")
	}
	return c
}

func TestCoreAdvancesOnCorrectKeystroke(t *testing.T) {
	core := NewCore(makeChallenge("ab", nil))
	core.Start()
	core.BeginRunning()

	core.Press('a')
	assert.Equal(t, 1, core.PosType())
	assert.False(t, core.IsMistaken())

	core.Press('b')
	assert.Equal(t, PhaseFinished, core.Phase())
}

func TestCoreMarksMistakeWithoutAdvancing(t *testing.T) {
	core := NewCore(makeChallenge("ab", nil))
	core.Start()
	core.BeginRunning()

	core.Press('x')
	assert.Equal(t, 0, core.PosType())
	assert.True(t, core.IsMistaken())

	core.Press('a')
	assert.Equal(t, 1, core.PosType())
	assert.False(t, core.IsMistaken())
}

func TestCoreSkipsCommentRangesOnAdvance(t *testing.T) {
	// "a/*x*/b" - bytes 1..6 are a comment range; typing 'a' should skip
	// straight to 'b' at index 6.
	core := NewCore(makeChallenge("a/*x*/b", []chunk.Range{{Start: 1, End: 6}}))
	core.Start()
	core.BeginRunning()

	core.Press('a')
	require.Equal(t, 6, core.PosType())

	core.Press('b')
	assert.Equal(t, PhaseFinished, core.Phase())
}

func TestCoreIgnoresInputBeforeRunning(t *testing.T) {
	core := NewCore(makeChallenge("ab", nil))
	core.Press('a')
	assert.Equal(t, 0, core.PosType())
	assert.Equal(t, PhaseWaitingToStart, core.Phase())
}

func TestCorePosDisplayAdvancesPastGlyphOnNewline(t *testing.T) {
	// DisplayText for "a\nb" is "a↵\nb": the glyph precedes the real '\n',
	// so typing the newline byte must move posDisplay past both runes.
	core := NewCore(makeChallenge("a\nb", nil))
	core.Start()
	core.BeginRunning()

	core.Press('a')
	assert.Equal(t, 1, core.PosType())
	assert.Equal(t, 1, core.PosDisplay())

	core.Press('\n')
	assert.Equal(t, 2, core.PosType())
	assert.Equal(t, 3, core.PosDisplay())
	assert.Equal(t, "a↵\nb", core.DisplayText)
}

func TestCoreSkipsWholeCommentOnlyLineIncludingIndentation(t *testing.T) {
	// "a\n  // c\nb" - line 2 is entirely indentation plus a comment
	// (bytes 4..8 are the comment range); typing 'a' then the newline
	// should land directly on 'b', skipping "  // c\n" as one unit even
	// though the leading two spaces sit outside the comment range.
	content := "a\n  // c\nb"
	core := NewCore(makeChallenge(content, []chunk.Range{{Start: 4, End: 8}}))
	core.Start()
	core.BeginRunning()

	core.Press('a')
	core.Press('\n')
	require.Equal(t, len(content)-1, core.PosType())

	core.Press('b')
	assert.Equal(t, PhaseFinished, core.Phase())
}

func TestCoreSkipRecordsSkipOnTracker(t *testing.T) {
	core := NewCore(makeChallenge("ab", nil))
	core.Start()
	core.BeginRunning()
	core.Skip()

	assert.Equal(t, PhaseFinished, core.Phase())
	assert.True(t, core.Tracker().GetData().WasSkipped)
}
