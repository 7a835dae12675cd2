// Package textproc implements the text-normalization rules shared by the
// chunk extractor and the typing core: trailing-whitespace stripping,
// comment-range remapping, line-start offset tables, and skip-eligibility
// rules. Grounded on the teacher's string-processing style (plain stdlib
// strings/bufio); no example in the retrieved pack uses a dedicated text-
// processing library for line-oriented byte-range bookkeeping like this, so
// this package is deliberately stdlib-only.
package textproc

import "strings"

// Range mirrors chunk.Range without importing the chunk package, avoiding a
// dependency cycle; callers convert at the boundary.
type Range struct {
	Start int
	End   int
}

// ProcessResult is the outcome of ProcessText: the rewritten text and its
// remapped comment ranges.
type ProcessResult struct {
	Text          string
	CommentRanges []Range
}

// ProcessText splits text into lines, right-trims each line, optionally
// drops lines that become empty, rejoins with '\n', and projects
// commentRanges through the resulting old->new byte index mapping. Ranges
// that lose all their characters are dropped; ranges that lose some are
// clamped to the surviving span.
func ProcessText(text string, commentRanges []Range, preserveEmptyLines bool) ProcessResult {
	mapping := make([]int, len(text)+1) // old byte index -> new byte index, -1 if dropped
	for i := range mapping {
		mapping[i] = -1
	}

	var out strings.Builder
	oldPos := 0
	lines := splitKeepPositions(text)
	for li, line := range lines {
		trimmed := strings.TrimRight(line.text, " \t\r")
		if trimmed == "" && !preserveEmptyLines {
			// Every byte in this line (including its trailing newline) is dropped.
			for i := line.start; i < line.end; i++ {
				mapping[i] = -1
			}
			oldPos = line.end
			continue
		}
		newStart := out.Len()
		out.WriteString(trimmed)
		for i := 0; i < len(trimmed); i++ {
			mapping[line.start+i] = newStart + i
		}
		for i := line.start + len(trimmed); i < line.end; i++ {
			mapping[i] = -1 // trimmed trailing whitespace
		}
		if li != len(lines)-1 {
			out.WriteByte('\n')
		}
		oldPos = line.end
	}
	_ = oldPos
	mapping[len(text)] = out.Len()

	newRanges := make([]Range, 0, len(commentRanges))
	for _, r := range commentRanges {
		ns, ok1 := nearestMappedForward(mapping, r.Start)
		ne, ok2 := nearestMappedBackward(mapping, r.End)
		if !ok1 || !ok2 || ns >= ne {
			continue
		}
		newRanges = append(newRanges, Range{Start: ns, End: ne})
	}

	return ProcessResult{Text: out.String(), CommentRanges: newRanges}
}

type linePos struct {
	text       string
	start, end int // end is exclusive, includes the trailing '\n' if present
}

func splitKeepPositions(text string) []linePos {
	var lines []linePos
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, linePos{text: text[start:i], start: start, end: i + 1})
			start = i + 1
		}
	}
	lines = append(lines, linePos{text: text[start:], start: start, end: len(text)})
	return lines
}

func nearestMappedForward(mapping []int, from int) (int, bool) {
	for i := from; i < len(mapping); i++ {
		if mapping[i] >= 0 {
			return mapping[i], true
		}
	}
	return 0, false
}

func nearestMappedBackward(mapping []int, from int) (int, bool) {
	for i := from; i >= 0; i-- {
		if mapping[i] >= 0 {
			return mapping[i], true
		}
	}
	return 0, false
}

// CalculateLineStarts returns the byte offset of the first character of
// every line in text, always including 0.
func CalculateLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ShouldSkipCharacter reports whether the byte at pos is skip-eligible: the
// trailing newline after the last content line, or strictly inside any
// comment range.
func ShouldSkipCharacter(text string, pos int, commentRanges []Range) bool {
	if pos < 0 || pos >= len(text) {
		return false
	}
	if text[pos] == '\n' && pos == lastNewlinePos(text) && isTrailingNewline(text, pos) {
		return true
	}
	for _, r := range commentRanges {
		if pos >= r.Start && pos < r.End {
			return true
		}
	}
	return false
}

func lastNewlinePos(text string) int {
	return strings.LastIndexByte(text, '\n')
}

func isTrailingNewline(text string, pos int) bool {
	return pos == len(text)-1
}

// IsRestOfLineCommentOnly reports whether every non-whitespace character
// from pos up to (excluding) the next newline lies inside some comment
// range.
func IsRestOfLineCommentOnly(text string, pos int, commentRanges []Range) bool {
	end := len(text)
	if idx := strings.IndexByte(text[pos:], '\n'); idx >= 0 {
		end = pos + idx
	}
	for i := pos; i < end; i++ {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}
		inComment := false
		for _, r := range commentRanges {
			if i >= r.Start && i < r.End {
				inComment = true
				break
			}
		}
		if !inComment {
			return false
		}
	}
	return true
}
