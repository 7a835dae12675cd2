package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/walker"
)

const sampleGoSource = `package sample

// Greet returns a greeting for name.
func Greet(name string) string {
	return "hello " + name
}

func Add(a, b int) int {
	return a + b
}
`

type recordingReporter struct {
	steps []Step
	final map[Step][2]int
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{final: make(map[Step][2]int)}
}

func (r *recordingReporter) SetStep(step Step)     { r.steps = append(r.steps, step) }
func (r *recordingReporter) SetCurrentFile(string) {}
func (r *recordingReporter) SetFileCounts(step Step, processed, total int, note string) {
	r.final[step] = [2]int{processed, total}
}

func writeSample(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.go"), []byte(sampleGoSource), 0o644))
}

func TestRunLocalPathProducesChallenges(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir)

	opts := DefaultOptions()
	opts.Walker = walker.DefaultExtractionOptions()

	res, err := Run(context.Background(), Source{LocalPath: dir}, opts)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Challenges)
	assert.NotNil(t, res.Repo)
	assert.Equal(t, dir, res.RootPath)
}

func TestRunReportsEveryStepWithFinalTotalsEqual(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir)

	reporter := newRecordingReporter()
	opts := DefaultOptions()
	opts.Progress = reporter

	_, err := Run(context.Background(), Source{LocalPath: dir}, opts)
	require.NoError(t, err)

	for _, step := range []Step{StepScanning, StepExtracting, StepGenerating, StepFinalizing} {
		totals, ok := reporter.final[step]
		require.True(t, ok, "step %s never reported", step)
		assert.Equal(t, totals[0], totals[1], "step %s processed != total", step)
	}
}

func TestRunCancelledContextDiscardsPartialResult(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, Source{LocalPath: dir}, DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, res.Repo)
}

func TestRunRejectsInvalidRemoteSpec(t *testing.T) {
	_, err := Run(context.Background(), Source{RemoteSpec: "not a valid spec!!"}, DefaultOptions())
	require.Error(t, err)
}

func TestWarnOversizedZenChallengesIsNoopWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		warnOversizedZenChallenges(nil, nil)
	})
}
