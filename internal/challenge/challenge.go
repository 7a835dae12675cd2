// Package challenge implements the Challenge data model, the chunk
// splitter, and the StageRepository (spec §4.4). The splitter algorithm is
// ported line-for-line from original_source's chunk_splitter.rs; the
// Challenge struct's builder style is grounded on
// original_source/.../models/challenge.rs, translated to Go idiom
// (a plain struct with exported fields instead of consuming `self`).
package challenge

import (
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/unhappychoice/gittype/internal/chunk"
)

// Challenge is an immutable typing task generated from a chunk.
type Challenge struct {
	ID              string
	SourceFilePath  string
	CodeContent     string
	StartLine       int
	EndLine         int
	Language        string
	CommentRanges   []chunk.Range
	DifficultyLevel chunk.Difficulty
}

// FromChunk builds a Challenge from an already difficulty-accepted chunk.
// Returns false if the chunk content is empty after trimming.
func FromChunk(c chunk.Chunk, difficulty chunk.Difficulty) (Challenge, bool) {
	if len(trimSpace(c.Content)) == 0 {
		return Challenge{}, false
	}
	return Challenge{
		ID:              uuid.NewString(),
		SourceFilePath:  c.FilePath,
		CodeContent:     c.Content,
		StartLine:       c.StartLine,
		EndLine:         c.EndLine,
		Language:        c.Language,
		CommentRanges:   c.CommentRanges,
		DifficultyLevel: difficulty,
	}, true
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// DisplayTitle renders "parentDir/file:start-end" or "Challenge <id>" when
// no source path is known, grounded on Challenge::get_display_title.
func (c Challenge) DisplayTitle() string {
	if c.SourceFilePath == "" {
		return "Challenge " + c.ID
	}
	rel := relativeDisplayPath(c.SourceFilePath)
	if c.StartLine > 0 && c.EndLine > 0 {
		return rel + ":" + strconv.Itoa(c.StartLine) + "-" + strconv.Itoa(c.EndLine)
	}
	return rel
}

func relativeDisplayPath(path string) string {
	base := filepath.Base(path)
	parent := filepath.Base(filepath.Dir(path))
	if parent == "." || parent == "" || parent == string(filepath.Separator) {
		return base
	}
	return parent + "/" + base
}
