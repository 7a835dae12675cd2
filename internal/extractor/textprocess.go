package extractor

import (
	"github.com/unhappychoice/gittype/internal/chunk"
	"github.com/unhappychoice/gittype/internal/textproc"
)

// applyTextProcessing strips trailing whitespace and empty lines from a
// chunk's content (spec §4.3 step 7 / §4.11), remapping comment ranges.
func applyTextProcessing(c *chunk.Chunk) {
	ranges := make([]textproc.Range, len(c.CommentRanges))
	for i, r := range c.CommentRanges {
		ranges[i] = textproc.Range{Start: r.Start, End: r.End}
	}
	res := textproc.ProcessText(c.Content, ranges, false)
	c.Content = res.Text
	out := make([]chunk.Range, len(res.CommentRanges))
	for i, r := range res.CommentRanges {
		out[i] = chunk.Range{Start: r.Start, End: r.End}
	}
	c.CommentRanges = out
	lines := countLines([]byte(c.Content))
	if c.StartLine > 0 {
		c.EndLine = c.StartLine + lines - 1
	}
}
