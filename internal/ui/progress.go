package ui

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressConfig determines whether and how a non-interactive command
// reports progress (SPEC_FULL.md §4.19), grounded on
// kraklabs-cie/cmd/cie/progress.go's TTY-gated ProgressConfig.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
	NoColor bool
}

// NewProgressConfig disables progress when stderr is not a terminal or the
// caller asked for quiet output.
func NewProgressConfig(quiet, noColor bool) ProgressConfig {
	return ProgressConfig{
		Enabled: !quiet && isatty.IsTerminal(os.Stderr.Fd()),
		Writer:  os.Stderr,
		NoColor: noColor,
	}
}

// NewProgressBar returns nil when progress is disabled, so callers can
// unconditionally call bar.Add(1) behind a nil check.
func NewProgressBar(cfg ProgressConfig, total int64, description string) *progressbar.ProgressBar {
	if !cfg.Enabled {
		return nil
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(cfg.Writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(!cfg.NoColor),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}
