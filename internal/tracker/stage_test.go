package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time { return cur }
}

func TestStageTrackerRecordsCorrectAndIncorrectKeystrokes(t *testing.T) {
	st := NewStageTracker("abc")
	st.Record(InputStart, nil)
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'a', Position: 0})
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'x', Position: 1})
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'c', Position: 2})

	data := st.GetData()
	require.Len(t, data.Keystrokes, 3)
	assert.True(t, data.Keystrokes[0].IsCorrect)
	assert.False(t, data.Keystrokes[1].IsCorrect)
	assert.True(t, data.Keystrokes[2].IsCorrect)
}

func TestStageTrackerStreaksFlushOnMistake(t *testing.T) {
	st := NewStageTracker("aaab")
	st.Record(InputStart, nil)
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'a', Position: 0})
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'a', Position: 1})
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'x', Position: 2})
	data := st.GetData()
	assert.Equal(t, []int{2}, data.Streaks)
	assert.Equal(t, 0, data.CurrentStreak)
}

func TestStageTrackerTerminalMonotonicity(t *testing.T) {
	start := time.Now()
	clock := fixedClock(start)
	st := NewStageTracker("ab")
	st.now = clock
	st.Record(InputStart, nil)
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'a', Position: 0})
	st.Record(InputFinish, nil)
	require.True(t, st.IsTerminal())

	before := st.GetData()
	st.Record(InputKeystroke, &KeystrokeEvent{Char: 'b', Position: 1})
	after := st.GetData()
	assert.Equal(t, before.Keystrokes, after.Keystrokes)
	assert.Equal(t, before.ElapsedTime, after.ElapsedTime)
	assert.Equal(t, after.ElapsedTime, after.ElapsedTime)
}

func TestStageTrackerPauseResumeAccumulates(t *testing.T) {
	start := time.Now()
	cur := start
	st := NewStageTracker("a")
	st.now = func() time.Time { return cur }

	st.Record(InputStart, nil)
	cur = cur.Add(1 * time.Second)
	st.Record(InputPause, nil)
	cur = cur.Add(5 * time.Second) // paused time, should not count
	st.Record(InputResume, nil)
	cur = cur.Add(1 * time.Second)
	st.Record(InputFinish, nil)

	data := st.GetData()
	assert.Equal(t, 2*time.Second, data.ElapsedTime)
}
