package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTableCoversFullRangeWithoutGaps(t *testing.T) {
	ranks := AllRanks()
	assert.Len(t, ranks, 63)
	assert.Equal(t, uint32(0), ranks[0].MinScore)
	assert.Equal(t, MaxScore, ranks[len(ranks)-1].MaxScore)
	for i := 1; i < len(ranks); i++ {
		assert.Equal(t, ranks[i-1].MaxScore+1, ranks[i].MinScore, "gap/overlap at rank %d", i)
	}
}

func TestRankTierCounts(t *testing.T) {
	counts := map[Tier]int{}
	for _, r := range AllRanks() {
		counts[r.Tier]++
	}
	assert.Equal(t, 12, counts[Beginner])
	assert.Equal(t, 12, counts[Intermediate])
	assert.Equal(t, 12, counts[Advanced])
	assert.Equal(t, 12, counts[Expert])
	assert.Equal(t, 15, counts[Legendary])
}

func TestRankBoundaryScenarios(t *testing.T) {
	assert.Equal(t, "Hello World", ForScore(0).Name)
	assert.Equal(t, "Compiler", ForScore(9600).Name)
	assert.Equal(t, "Kernel Panic", ForScore(float64(MaxScore)).Name)
}

func TestScoreFormulaSanityScenarios(t *testing.T) {
	noMistake := CalculateScoreFromMetrics(600, 100, 0, 10, 100)
	assert.InDelta(t, 20500.0, noMistake, 1e-9)
	assert.InDelta(t, 8500.0, CalculateScoreFromMetrics(600, 70, 0, 10, 100), 1e-9)
	withMistake := CalculateScoreFromMetrics(600, 100, 1, 10, 100)
	assert.InDelta(t, 10.0, noMistake-withMistake, 1e-9)
}

func TestScoreFormulaMonotonicity(t *testing.T) {
	low := CalculateScoreFromMetrics(300, 90, 2, 20, 100)
	high := CalculateScoreFromMetrics(400, 90, 2, 20, 100)
	assert.True(t, high >= low)

	lowAcc := CalculateScoreFromMetrics(300, 80, 2, 20, 100)
	highAcc := CalculateScoreFromMetrics(300, 95, 2, 20, 100)
	assert.True(t, highAcc >= lowAcc)

	fewMistakes := CalculateScoreFromMetrics(300, 90, 1, 20, 100)
	manyMistakes := CalculateScoreFromMetrics(300, 90, 5, 20, 100)
	assert.True(t, fewMistakes >= manyMistakes)
}
