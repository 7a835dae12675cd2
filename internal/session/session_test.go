package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
	"github.com/unhappychoice/gittype/internal/tracker"
)

func buildRepo(t *testing.T, n int) *challenge.StageRepository {
	t.Helper()
	repo := challenge.NewStageRepository()
	var challenges []challenge.Challenge
	for i := 0; i < n; i++ {
		challenges = append(challenges, challenge.Challenge{
			ID:              string(rune('a' + i)),
			CodeContent:     "x",
			DifficultyLevel: chunk.Easy,
		})
	}
	repo.BuildDifficultyIndices(challenges)
	return repo
}

func TestStartSelectsUpToMaxStages(t *testing.T) {
	repo := buildRepo(t, 10)
	m := New(Config{MaxStages: 3, Difficulty: chunk.Easy, MaxSkips: 1}, repo)
	m.Start(42)

	assert.Equal(t, StateInProgress, m.State())
	c, ok := m.CurrentChallenge()
	require.True(t, ok)
	assert.NotEmpty(t, c.ID)
}

func TestAdvanceCompletesAfterMaxStages(t *testing.T) {
	repo := buildRepo(t, 5)
	m := New(Config{MaxStages: 2, Difficulty: chunk.Easy, MaxSkips: 1}, repo)
	m.Start(1)

	state := m.Advance(tracker.StageResult{})
	assert.Equal(t, StateInProgress, state)

	state = m.Advance(tracker.StageResult{})
	assert.Equal(t, StateComplete, state)
}

func TestAdvanceFailsOnFailedStage(t *testing.T) {
	repo := buildRepo(t, 5)
	m := New(Config{MaxStages: 3, Difficulty: chunk.Easy, MaxSkips: 1}, repo)
	m.Start(1)

	state := m.Advance(tracker.StageResult{WasFailed: true})
	assert.Equal(t, StateFailed, state)
}

func TestAdvanceFailsWhenSkipsExceedMax(t *testing.T) {
	repo := buildRepo(t, 5)
	m := New(Config{MaxStages: 3, Difficulty: chunk.Easy, MaxSkips: 1}, repo)
	m.Start(1)

	m.Advance(tracker.StageResult{WasSkipped: true})
	state := m.Advance(tracker.StageResult{WasSkipped: true})
	assert.Equal(t, StateFailed, state)
}

func TestResetReturnsToWaitingToStart(t *testing.T) {
	repo := buildRepo(t, 5)
	m := New(Config{MaxStages: 2, Difficulty: chunk.Easy, MaxSkips: 1}, repo)
	m.Start(1)
	m.Reset()

	assert.Equal(t, StateWaitingToStart, m.State())
	_, ok := m.CurrentChallenge()
	assert.False(t, ok)
}
