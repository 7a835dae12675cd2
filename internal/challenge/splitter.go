package challenge

import (
	"strings"

	"github.com/unhappychoice/gittype/internal/chunk"
)

// Split applies a chunk to a difficulty window (spec §4.4), returning a
// Challenge when the chunk (or a natural-boundary prefix of it) fits the
// window, or false when it's too small even after truncation, or the
// chunk's own code-character count is already below the window's minimum.
func Split(c chunk.Chunk, difficulty chunk.Difficulty) (Challenge, bool) {
	window := chunk.Windows[difficulty]
	codeChars := c.NonWhitespaceLen()

	if codeChars < window.Min {
		return Challenge{}, false
	}
	if codeChars <= window.Max {
		return FromChunk(c, difficulty)
	}

	truncated, ok := splitAtNaturalBoundary(c, window.Max)
	if !ok {
		return Challenge{}, false
	}
	if truncated.NonWhitespaceLen() < window.Min {
		return Challenge{}, false
	}
	return FromChunk(truncated, difficulty)
}

// splitAtNaturalBoundary scans content line by line, accumulating code
// characters (excluding whitespace and comment ranges), and records every
// line ending at a natural boundary ('}', ']', ')', ';', or blank) as a
// candidate break point. When the running count first exceeds maxChars, the
// last candidate recorded before the line that crossed maxChars becomes the
// truncation point, so the kept lines stay within maxChars; with no candidate
// recorded, the split fails. Ported from
// original_source/.../chunk_splitter.rs's find_optimal_break_point.
func splitAtNaturalBoundary(c chunk.Chunk, maxChars int) (chunk.Chunk, bool) {
	lines := strings.Split(c.Content, "\n")

	lastGoodBreak := -1
	codeCharCount := 0
	byteOffset := 0
	breakByteOffset := 0

	for i, line := range lines {
		lineStart := byteOffset
		for j, r := range line {
			bytePos := lineStart + j
			if isNaturalWhitespace(r) {
				continue
			}
			if inAnyRange(bytePos, c.CommentRanges) {
				continue
			}
			codeCharCount++
		}
		lineEnd := lineStart + len(line)
		if i != len(lines)-1 {
			lineEnd++ // account for the '\n' joiner
		}
		byteOffset = lineEnd

		if codeCharCount > maxChars {
			if lastGoodBreak < 0 {
				return chunk.Chunk{}, false
			}
			return truncateChunk(c, lastGoodBreak+1, breakByteOffset), true
		}

		if isNaturalBoundary(line) {
			lastGoodBreak = i
			breakByteOffset = lineEnd
		}
	}

	// Never exceeded maxChars; shouldn't happen given the caller's
	// precondition, but return the chunk unchanged rather than panic.
	return c, true
}

func isNaturalWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isNaturalBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	last := trimmed[len(trimmed)-1]
	return last == '}' || last == ']' || last == ')' || last == ';'
}

func inAnyRange(pos int, ranges []chunk.Range) bool {
	for _, r := range ranges {
		if pos >= r.Start && pos < r.End {
			return true
		}
	}
	return false
}

// truncateChunk keeps the first lineCount lines (joined with '\n') of c and
// adjusts comment ranges: ranges entirely past truncByte are dropped,
// ranges straddling it are clamped.
func truncateChunk(c chunk.Chunk, lineCount, truncByte int) chunk.Chunk {
	lines := strings.Split(c.Content, "\n")
	if lineCount > len(lines) {
		lineCount = len(lines)
	}
	content := strings.Join(lines[:lineCount], "\n")
	if truncByte > len(content) {
		truncByte = len(content)
	}

	var ranges []chunk.Range
	for _, r := range c.CommentRanges {
		if r.Start >= truncByte {
			continue
		}
		end := r.End
		if end > truncByte {
			end = truncByte
		}
		if end > r.Start {
			ranges = append(ranges, chunk.Range{Start: r.Start, End: end})
		}
	}

	out := c
	out.Content = content
	out.CommentRanges = ranges
	out.EndLine = c.StartLine + lineCount - 1
	return out
}

// ApplicableDifficulties returns every difficulty a chunk could produce a
// Challenge for: codeChars must meet the window's minimum (a chunk above
// the maximum can still qualify by splitting down to it; splitting can
// never raise a chunk's count, so falling short of the minimum is always
// disqualifying), and Zen is restricted to file chunks.
func ApplicableDifficulties(c chunk.Chunk) []chunk.Difficulty {
	codeChars := c.NonWhitespaceLen()
	var out []chunk.Difficulty
	for _, d := range chunk.AllDifficulties() {
		if d == chunk.Zen && c.Kind != chunk.KindFile {
			continue
		}
		if codeChars >= chunk.Windows[d].Min {
			out = append(out, d)
		}
	}
	return out
}
