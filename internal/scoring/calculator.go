package scoring

import (
	"math"
	"time"

	"github.com/unhappychoice/gittype/internal/tracker"
)

// StageScore is the calculated result for one completed/skipped/failed
// stage, derived from a StageTrackerData snapshot (spec §4.8 "Stage
// score").
type StageScore struct {
	CPM      float64
	WPM      float64
	Accuracy float64
	Score    float64
	Mistakes int
	Rank     Rank
}

// CalculateStage computes cpm/wpm/accuracy/score from a stage snapshot.
func CalculateStage(data tracker.StageTrackerData) StageScore {
	elapsedSecs := data.ElapsedTime.Seconds()
	if elapsedSecs <= 0 {
		elapsedSecs = 0.001
	}

	total := len(data.Keystrokes)
	mistakes := 0
	correct := 0
	for _, k := range data.Keystrokes {
		if k.IsCorrect {
			correct++
		} else {
			mistakes++
		}
	}

	cpm := float64(correct) / elapsedSecs * 60
	wpm := cpm / 5

	var accuracy float64
	if total > 0 {
		accuracy = float64(total-mistakes) / float64(total) * 100
	}

	score := CalculateScoreFromMetrics(cpm, accuracy, mistakes, elapsedSecs, float64(len(data.TargetText)))

	return StageScore{
		CPM:      cpm,
		WPM:      wpm,
		Accuracy: accuracy,
		Score:    score,
		Mistakes: mistakes,
		Rank:     ForScore(score),
	}
}

// SessionScore is the calculated result for a completed session (spec §4.8
// "Session score"), computed only from aggregated *valid* (non-skipped,
// non-failed) stage metrics.
type SessionScore struct {
	OverallCPM        float64
	OverallWPM        float64
	OverallAccuracy   float64
	SessionScore      float64
	SessionSuccessful bool
	BestStage         *tracker.StageResult
	WorstStage        *tracker.StageResult
}

// CalculateSession aggregates a SessionTracker's stage results.
func CalculateSession(results []tracker.StageResult) SessionScore {
	var validKeystrokes, validMistakes int
	var validDuration time.Duration
	var valid []tracker.StageResult
	anyFailed := false

	for _, r := range results {
		if r.WasFailed {
			anyFailed = true
		}
		if r.WasSkipped || r.WasFailed {
			continue
		}
		valid = append(valid, r)
		validKeystrokes += r.Keystrokes
		validMistakes += r.Mistakes
		validDuration += r.CompletionTime
	}

	durationSecs := validDuration.Seconds()
	var overallCPM, overallWPM, overallAccuracy float64
	if durationSecs > 0 && validKeystrokes > 0 {
		overallCPM = float64(validKeystrokes) / durationSecs * 60
		overallWPM = overallCPM / 5
	}
	if validKeystrokes > 0 {
		overallAccuracy = float64(validKeystrokes-validMistakes) / float64(validKeystrokes) * 100
	}

	effectiveDuration := math.Max(0.1, durationSecs)
	sessionScore := CalculateScoreFromMetrics(overallCPM, overallAccuracy, validMistakes, effectiveDuration, float64(validKeystrokes))

	best, worst := bestWorstStage(valid)

	return SessionScore{
		OverallCPM:        overallCPM,
		OverallWPM:        overallWPM,
		OverallAccuracy:   overallAccuracy,
		SessionScore:      sessionScore,
		SessionSuccessful: !anyFailed,
		BestStage:         best,
		WorstStage:        worst,
	}
}

// bestWorstStage chooses by ChallengeScore, NaN-safe: a NaN score is
// treated as equal to any comparison and the first-seen input order wins.
func bestWorstStage(results []tracker.StageResult) (*tracker.StageResult, *tracker.StageResult) {
	if len(results) == 0 {
		return nil, nil
	}
	best, worst := results[0], results[0]
	for _, r := range results[1:] {
		if !math.IsNaN(r.ChallengeScore) && !math.IsNaN(best.ChallengeScore) && r.ChallengeScore > best.ChallengeScore {
			best = r
		}
		if !math.IsNaN(r.ChallengeScore) && !math.IsNaN(worst.ChallengeScore) && r.ChallengeScore < worst.ChallengeScore {
			worst = r
		}
	}
	return &best, &worst
}

// TotalScore is the calculated result aggregated across every recorded
// session (spec §4.8 "Total score").
type TotalScore struct {
	SessionsAttempted int
	SessionsCompleted int
	TotalScore        float64
	OverallCPM        float64
	BestSessionWPM    float64
	WorstSessionWPM   float64
	BestSessionAcc    float64
	WorstSessionAcc   float64
}

// CalculateTotal aggregates every SessionResult recorded by a TotalTracker.
func CalculateTotal(sessions []tracker.SessionResult) TotalScore {
	out := TotalScore{SessionsAttempted: len(sessions)}
	var totalKeystrokes int
	var totalValidDuration time.Duration
	first := true

	for _, s := range sessions {
		if !s.SessionSuccessful {
			continue
		}
		out.SessionsCompleted++
		out.TotalScore += s.SessionScore

		for _, st := range s.Stages {
			if st.WasSkipped || st.WasFailed {
				continue
			}
			totalKeystrokes += st.Keystrokes
			totalValidDuration += st.CompletionTime
		}

		if first {
			out.BestSessionWPM, out.WorstSessionWPM = s.OverallWPM, s.OverallWPM
			out.BestSessionAcc, out.WorstSessionAcc = s.OverallAccuracy, s.OverallAccuracy
			first = false
		} else {
			out.BestSessionWPM = math.Max(out.BestSessionWPM, s.OverallWPM)
			out.WorstSessionWPM = math.Min(out.WorstSessionWPM, s.OverallWPM)
			out.BestSessionAcc = math.Max(out.BestSessionAcc, s.OverallAccuracy)
			out.WorstSessionAcc = math.Min(out.WorstSessionAcc, s.OverallAccuracy)
		}
	}

	if totalValidDuration.Seconds() > 0 {
		out.OverallCPM = float64(totalKeystrokes) / totalValidDuration.Seconds() * 60
	}

	return out
}
