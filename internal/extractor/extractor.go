// Package extractor implements the chunk extractor (spec §4.3): parsing one
// file with its language's thread-local parser, running the comment/
// top-level/middle-implementation queries, normalizing indentation, and
// applying final text processing. Grounded on the teacher's
// internal/chunker/treesitter.go Chunk() method shape, generalized from
// node-type-map walking to the sourceparser package's query-based
// extraction.
package extractor

import (
	"context"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/unhappychoice/gittype/internal/chunk"
	gterrors "github.com/unhappychoice/gittype/internal/errors"
	"github.com/unhappychoice/gittype/internal/sourceparser"
)

// Extractor turns one file's content into a slice of chunks.
type Extractor struct {
	registry *sourceparser.Registry
}

func New(registry *sourceparser.Registry) *Extractor {
	if registry == nil {
		registry = sourceparser.Default()
	}
	return &Extractor{registry: registry}
}

// ExtractFile parses content (the file at path, in languageName) and
// returns every chunk the extraction algorithm produces: the whole-file
// chunk, top-level construct chunks, and middle-implementation chunks,
// deduplicated and text-processed.
func (e *Extractor) ExtractFile(ctx context.Context, path, languageName string, content []byte) ([]chunk.Chunk, error) {
	lang, err := e.registry.Get(languageName)
	if err != nil {
		return nil, err
	}

	parser, err := e.registry.CheckoutParser(languageName)
	if err != nil {
		return nil, err
	}
	defer e.registry.ReturnParser(languageName, parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil || tree == nil {
		return nil, gterrors.Wrap(gterrors.ExtractionFailed, path, err)
	}
	defer tree.Close()
	root := tree.RootNode()

	fileCommentRanges := runCommentQuery(lang, root, content)

	var chunks []chunk.Chunk

	// Whole-file chunk (ChunkKind::File), the only one eligible for Zen.
	chunks = append(chunks, buildChunk(path, languageName, chunk.KindFile, "anonymous", content, 1, countLines(content), fileCommentRanges))

	topCaptures := sourceparser.RunQuery(lang.QueryPatterns(), lang.TreeSitterLanguage(), root, content)
	chunks = append(chunks, materializeCaptures(lang, path, languageName, content, topCaptures, fileCommentRanges, lang.CaptureNameToChunkKind)...)

	middlePattern := lang.MiddleImplementationQuery()
	if strings.TrimSpace(middlePattern) == "" {
		middlePattern = "(ERROR) @dummy"
	}
	middleCaptures := sourceparser.RunQuery(middlePattern, lang.TreeSitterLanguage(), root, content)
	chunks = append(chunks, materializeCaptures(lang, path, languageName, content, middleCaptures, fileCommentRanges, lang.MiddleCaptureNameToChunkKind)...)

	for i := range chunks {
		normalizeIndentation(&chunks[i])
		applyTextProcessing(&chunks[i])
	}

	return chunk.Dedup(chunks), nil
}

func runCommentQuery(lang sourceparser.LanguageExtractor, root *sitter.Node, content []byte) []chunk.Range {
	caps := sourceparser.RunQuery(lang.CommentQuery(), lang.TreeSitterLanguage(), root, content)
	ranges := make([]chunk.Range, 0, len(caps))
	for _, c := range caps {
		ranges = append(ranges, chunk.Range{Start: int(c.Node.StartByte()), End: int(c.Node.EndByte())})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	return ranges
}

func materializeCaptures(
	lang sourceparser.LanguageExtractor,
	path, languageName string,
	content []byte,
	captures []sourceparser.QueryCapture,
	fileCommentRanges []chunk.Range,
	kindOf func(string) (chunk.Kind, bool),
) []chunk.Chunk {
	var out []chunk.Chunk
	for _, cap := range captures {
		if cap.Name == "name" || cap.Name == "dummy" {
			continue
		}
		kind, ok := kindOf(cap.Name)
		if !ok {
			continue
		}
		start := int(cap.Node.StartByte())
		end := int(cap.Node.EndByte())
		text := string(content[start:end])

		name := lang.ExtractName(cap.Node, content, cap.Name)
		projected := projectCommentRanges(fileCommentRanges, start, end)

		c := buildChunk(path, languageName, kind, name, []byte(text),
			int(cap.Node.StartPoint().Row)+1, int(cap.Node.EndPoint().Row)+1, projected)
		out = append(out, c)
	}
	return out
}

func projectCommentRanges(fileRanges []chunk.Range, chunkStart, chunkEnd int) []chunk.Range {
	var out []chunk.Range
	for _, r := range fileRanges {
		if !r.Overlaps(chunk.Range{Start: chunkStart, End: chunkEnd}) {
			continue
		}
		s := r.Start
		if s < chunkStart {
			s = chunkStart
		}
		e := r.End
		if e > chunkEnd {
			e = chunkEnd
		}
		out = append(out, chunk.Range{Start: s - chunkStart, End: e - chunkStart})
	}
	return out
}

func buildChunk(path, languageName string, kind chunk.Kind, name string, content []byte, startLine, endLine int, commentRanges []chunk.Range) chunk.Chunk {
	return chunk.Chunk{
		Content:       string(content),
		FilePath:      path,
		StartLine:     startLine,
		EndLine:       endLine,
		Language:      languageName,
		Kind:          kind,
		SymbolName:    name,
		CommentRanges: commentRanges,
	}
}

func countLines(content []byte) int {
	n := 1
	for _, b := range content {
		if b == '\n' {
			n++
		}
	}
	return n
}

// normalizeIndentation strips the minimum leading-whitespace count shared by
// every non-empty line of the chunk, recording it as OriginalIndentation and
// shifting comment ranges by the whitespace removed from preceding lines.
func normalizeIndentation(c *chunk.Chunk) {
	lines := strings.Split(c.Content, "\n")
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := leadingWhitespaceCount(l)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		c.OriginalIndentation = 0
		return
	}

	var out strings.Builder
	shiftTable := make([]int, 0, len(c.Content)+1) // old byte -> cumulative removed before it
	removed := 0
	oldPos := 0
	for li, l := range lines {
		stripped := 0
		if strings.TrimSpace(l) != "" && len(l) >= minIndent {
			stripped = minIndent
		} else if strings.TrimSpace(l) == "" {
			stripped = min(minIndent, len(l))
		}
		for i := 0; i < len(l); i++ {
			if i < stripped {
				removed++
			}
			shiftTable = append(shiftTable, removed)
		}
		out.WriteString(l[stripped:])
		if li != len(lines)-1 {
			out.WriteByte('\n')
			shiftTable = append(shiftTable, removed)
		}
		oldPos += len(l) + 1
	}
	shiftTable = append(shiftTable, removed)

	newRanges := make([]chunk.Range, 0, len(c.CommentRanges))
	for _, r := range c.CommentRanges {
		s := r.Start - shiftAt(shiftTable, r.Start)
		e := r.End - shiftAt(shiftTable, r.End)
		if e > s {
			newRanges = append(newRanges, chunk.Range{Start: s, End: e})
		}
	}

	c.Content = out.String()
	c.CommentRanges = newRanges
	c.OriginalIndentation = minIndent
}

func shiftAt(table []int, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(table) {
		return table[len(table)-1]
	}
	return table[pos]
}

func leadingWhitespaceCount(l string) int {
	n := 0
	for _, r := range l {
		if r == ' ' || r == '\t' {
			n++
		} else {
			break
		}
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
