package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/unhappychoice/gittype/internal/pipeline"
	"github.com/unhappychoice/gittype/internal/ui"
)

// cliProgressReporter adapts pipeline.ProgressReporter to a terminal
// progress bar, one bar per step, rebuilt whenever SetFileCounts reports a
// new total (SPEC_FULL.md §4.19: the loading pipeline owns its own
// ProgressReporter; this is the thin non-interactive renderer for it).
type cliProgressReporter struct {
	cfg   ui.ProgressConfig
	step  pipeline.Step
	bar   *progressbar.ProgressBar
	total int
}

func newCLIProgressReporter(cfg ui.ProgressConfig) *cliProgressReporter {
	return &cliProgressReporter{cfg: cfg}
}

func (r *cliProgressReporter) SetStep(step pipeline.Step) {
	r.step = step
	r.bar = nil
	r.total = 0
}

func (r *cliProgressReporter) SetCurrentFile(path string) {
	if r.bar != nil {
		r.bar.Describe(fmt.Sprintf("%s: %s", r.step, path))
	}
}

func (r *cliProgressReporter) SetFileCounts(step pipeline.Step, processed, total int, note string) {
	if r.bar == nil || total != r.total {
		r.bar = ui.NewProgressBar(r.cfg, int64(total), step.String())
		r.total = total
	}
	if r.bar == nil {
		return
	}
	_ = r.bar.Set(processed)
	if processed >= total {
		_ = r.bar.Finish()
	}
}
