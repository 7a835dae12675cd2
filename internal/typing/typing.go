// Package typing implements the typing core state machine (spec §4.5),
// the per-keystroke loop that sits between a Challenge and a StageTracker.
package typing

import (
	"strings"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/textproc"
	"github.com/unhappychoice/gittype/internal/tracker"
)

// Phase is the typing core's coarse lifecycle state.
type Phase int

const (
	PhaseWaitingToStart Phase = iota
	PhaseCountdown
	PhaseRunning
	PhaseFinished
)

// Core holds type_text/display_text and the two cursor positions for one
// stage, plus the StageTracker it drives.
type Core struct {
	TypeText    string
	DisplayText string

	posType    int
	posDisplay int

	commentRanges []textproc.Range
	lineStarts    []int
	lineStartSet  map[int]bool

	phase    Phase
	mistaken bool
	tracker  *tracker.StageTracker
}

// NewCore builds type_text/display_text from a Challenge's code content and
// comment ranges per spec §4.5.
func NewCore(c challenge.Challenge) *Core {
	ranges := make([]textproc.Range, len(c.CommentRanges))
	for i, r := range c.CommentRanges {
		ranges[i] = textproc.Range{Start: r.Start, End: r.End}
	}

	lineStarts := textproc.CalculateLineStarts(c.CodeContent)
	lineStartSet := make(map[int]bool, len(lineStarts))
	for _, s := range lineStarts {
		lineStartSet[s] = true
	}

	core := &Core{
		TypeText:      c.CodeContent,
		commentRanges: ranges,
		lineStarts:    lineStarts,
		lineStartSet:  lineStartSet,
		tracker:       tracker.NewStageTrackerWithPath(c.CodeContent, c.SourceFilePath),
	}
	core.DisplayText = buildDisplayText(c.CodeContent)
	core.skipToNextRequired()
	return core
}

// buildDisplayText inserts '↵' before every '\n' and '→' before every '\t'
// (spec §4.5); the original '\n'/'\t' is kept right after its glyph.
func buildDisplayText(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	for _, r := range text {
		switch r {
		case '\n':
			b.WriteRune('↵')
			b.WriteRune('\n')
		case '\t':
			b.WriteRune('→')
			b.WriteRune('\t')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Start transitions waiting-to-start → countdown. The countdown → running
// transition and its ~2s overlay timing are owned by the presentation
// layer; Core only tracks that Start has been requested.
func (c *Core) Start() {
	if c.phase == PhaseWaitingToStart {
		c.phase = PhaseCountdown
	}
}

// BeginRunning transitions countdown → running and starts the tracker.
func (c *Core) BeginRunning() {
	c.phase = PhaseRunning
	c.tracker.Record(tracker.InputStart, nil)
}

func (c *Core) Phase() Phase { return c.phase }

// Press handles one typed character per spec §4.5 steps 1-3.
func (c *Core) Press(ch byte) {
	if c.phase != PhaseRunning {
		return
	}
	if c.posType >= len(c.TypeText) {
		return
	}

	c.tracker.Record(tracker.InputKeystroke, &tracker.KeystrokeEvent{Char: ch, Position: c.posType})

	if c.TypeText[c.posType] == ch {
		c.mistaken = false
		c.advance()
		if c.posType >= len(c.TypeText) {
			c.finish()
		}
	} else {
		c.mistaken = true
	}
}

// Escape opens the in-stage pause dialog. Confirming it is the caller's
// responsibility via Skip.
func (c *Core) Escape() {
	c.tracker.Record(tracker.InputPause, nil)
}

// ResumeFromPause resumes after a dialog is dismissed without skipping.
func (c *Core) ResumeFromPause() {
	c.tracker.Record(tracker.InputResume, nil)
}

// Skip ends the stage via StageInput::Skip (spec §4.5 step 4).
func (c *Core) Skip() {
	c.tracker.Record(tracker.InputSkip, nil)
	c.phase = PhaseFinished
}

// Fail ends the stage via StageInput::Fail.
func (c *Core) Fail() {
	c.tracker.Record(tracker.InputFail, nil)
	c.phase = PhaseFinished
}

func (c *Core) finish() {
	c.tracker.Record(tracker.InputFinish, nil)
	c.phase = PhaseFinished
}

// IsMistaken reports whether the current position is highlighted as
// currently-mistaken (spec §4.5 step 3: "highlight until a correct
// keystroke arrives").
func (c *Core) IsMistaken() bool { return c.mistaken }

func (c *Core) PosType() int    { return c.posType }
func (c *Core) PosDisplay() int { return c.posDisplay }

// Tracker exposes the underlying StageTracker for snapshotting.
func (c *Core) Tracker() *tracker.StageTracker { return c.tracker }

// advance consumes one character of type_text and then skips across any
// subsequent skip-eligible characters, per spec §4.5/§4.11.
func (c *Core) advance() {
	c.consumeChar()
	c.skipToNextRequired()
}

// consumeChar moves past the character at posType, advancing posDisplay by
// its width in DisplayText. buildDisplayText inserts a glyph rune ('↵'/'→')
// immediately ahead of every '\n'/'\t', so those two characters occupy two
// runes of DisplayText for the one byte of TypeText they represent.
func (c *Core) consumeChar() {
	ch := c.TypeText[c.posType]
	c.posDisplay += displayWidth(ch)
	c.posType++
}

func displayWidth(ch byte) int {
	if ch == '\n' || ch == '\t' {
		return 2
	}
	return 1
}

// skipToNextRequired moves posType/posDisplay forward across any run of
// skip-eligible characters (comment ranges and the content's trailing
// newline) so the cursor always rests on a character the user must
// actually type next. Whitespace after code at the end of a line is not
// skipped; it must be typed. At a line start, a line whose only non-blank
// content is a comment (§4.11 IsRestOfLineCommentOnly) is skipped whole,
// including leading indentation that sits outside the comment range and
// the newline that terminates it.
func (c *Core) skipToNextRequired() {
	for c.posType < len(c.TypeText) {
		if c.lineStartSet[c.posType] &&
			textproc.IsRestOfLineCommentOnly(c.TypeText, c.posType, c.commentRanges) {
			next := c.nextLineStart(c.posType)
			for c.posType < next {
				c.consumeChar()
			}
			continue
		}
		if !textproc.ShouldSkipCharacter(c.TypeText, c.posType, c.commentRanges) {
			break
		}
		c.consumeChar()
	}
}

// nextLineStart returns the offset of the first line start strictly after
// pos, per textproc.CalculateLineStarts, or len(TypeText) if pos is on the
// last line.
func (c *Core) nextLineStart(pos int) int {
	for _, s := range c.lineStarts {
		if s > pos {
			return s
		}
	}
	return len(c.TypeText)
}
