package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unhappychoice/gittype/internal/tracker"
)

func TestCalculateStageAccuracyAndMistakes(t *testing.T) {
	data := tracker.StageTrackerData{
		Keystrokes: []tracker.Keystroke{
			{IsCorrect: true}, {IsCorrect: true}, {IsCorrect: false}, {IsCorrect: true},
		},
		ElapsedTime: 2 * time.Second,
		TargetText:  "abcd",
	}
	result := CalculateStage(data)
	assert.Equal(t, 1, result.Mistakes)
	assert.InDelta(t, 75.0, result.Accuracy, 1e-9)
	assert.InDelta(t, 90.0, result.CPM, 1e-9) // 3 correct / 2s * 60
}

func TestCalculateSessionSkipsInvalidStages(t *testing.T) {
	results := []tracker.StageResult{
		{Keystrokes: 100, Mistakes: 0, CompletionTime: 10 * time.Second, ChallengeScore: 500},
		{Keystrokes: 999, Mistakes: 999, CompletionTime: time.Hour, WasSkipped: true, ChallengeScore: 1},
		{Keystrokes: 200, Mistakes: 10, CompletionTime: 20 * time.Second, ChallengeScore: 700},
	}
	session := CalculateSession(results)
	assert.True(t, session.SessionSuccessful)
	assert.Equal(t, 700.0, session.BestStage.ChallengeScore)
	assert.Equal(t, 500.0, session.WorstStage.ChallengeScore)
	// only valid (non-skipped) keystrokes counted: 300 over 30s
	assert.InDelta(t, 600.0, session.OverallCPM, 1e-9)
}

func TestCalculateSessionFailedStageMarksUnsuccessful(t *testing.T) {
	results := []tracker.StageResult{
		{Keystrokes: 10, CompletionTime: time.Second, ChallengeScore: 10},
		{WasFailed: true, ChallengeScore: 0},
	}
	session := CalculateSession(results)
	assert.False(t, session.SessionSuccessful)
}

func TestCalculateTotalAggregatesOnlySuccessfulSessions(t *testing.T) {
	sessions := []tracker.SessionResult{
		{SessionSuccessful: true, SessionScore: 100, OverallWPM: 40, OverallAccuracy: 95},
		{SessionSuccessful: false, SessionScore: 9999, OverallWPM: 999, OverallAccuracy: 1},
		{SessionSuccessful: true, SessionScore: 200, OverallWPM: 60, OverallAccuracy: 90},
	}
	total := CalculateTotal(sessions)
	assert.Equal(t, 3, total.SessionsAttempted)
	assert.Equal(t, 2, total.SessionsCompleted)
	assert.InDelta(t, 300.0, total.TotalScore, 1e-9)
	assert.InDelta(t, 60.0, total.BestSessionWPM, 1e-9)
	assert.InDelta(t, 40.0, total.WorstSessionWPM, 1e-9)
}

func TestBestWorstStageNaNSafe(t *testing.T) {
	results := []tracker.StageResult{
		{ChallengeScore: 50},
		{ChallengeScore: nanScore()},
		{ChallengeScore: 10},
	}
	best, worst := bestWorstStage(results)
	assert.Equal(t, 50.0, best.ChallengeScore)
	assert.Equal(t, 10.0, worst.ChallengeScore)
}

func nanScore() float64 {
	var zero float64
	return zero / zero
}
