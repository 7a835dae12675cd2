// Package tracker implements the Stage/Session/Total trackers (spec §4.6,
// §4.7), ported from original_source/.../scoring/tracker/stage.rs. Go's
// time.Time/time.Duration stand in for Rust's Instant/Duration; Option<T>
// fields become pointers or explicit zero-value checks.
package tracker

import "time"

// Keystroke is one recorded keypress against a stage's target text.
type Keystroke struct {
	Character byte
	Position  int
	IsCorrect bool
	Timestamp time.Time
}

// StageInput is the closed set of events a StageTracker accepts.
type StageInput int

const (
	InputStart StageInput = iota
	InputKeystroke
	InputFinish
	InputPause
	InputResume
	InputSkip
	InputFail
)

// StageTracker accumulates raw keystroke data for one stage.
type StageTracker struct {
	startTime           time.Time
	hasStart            bool
	keystrokes          []Keystroke
	targetText          string
	currentStreak       int
	streaks             []int
	recordedDuration    time.Duration
	hasRecordedDuration bool
	pausedAt            time.Time
	isPaused            bool
	totalPausedDuration time.Duration
	challengePath       string
	wasSkipped          bool
	wasFailed           bool
	now                 func() time.Time
}

func NewStageTracker(targetText string) *StageTracker {
	return newStageTracker(targetText, "")
}

func NewStageTrackerWithPath(targetText, challengePath string) *StageTracker {
	return newStageTracker(targetText, challengePath)
}

func newStageTracker(targetText, challengePath string) *StageTracker {
	return &StageTracker{
		targetText:    targetText,
		challengePath: challengePath,
		now:           time.Now,
	}
}

// SetStartTime sets start_time explicitly, for precise external timing
// control (e.g. replaying a recorded session).
func (s *StageTracker) SetStartTime(t time.Time) {
	s.startTime = t
	s.hasStart = true
}

// KeystrokeEvent carries the payload for InputKeystroke.
type KeystrokeEvent struct {
	Char     byte
	Position int
}

// Record applies one StageInput, mirroring stage.rs's record() match.
func (s *StageTracker) Record(input StageInput, event *KeystrokeEvent) {
	switch input {
	case InputStart:
		if !s.hasStart {
			s.startTime = s.now()
			s.hasStart = true
		}
	case InputKeystroke:
		if s.hasRecordedDuration || event == nil {
			return
		}
		isCorrect := event.Position < len(s.targetText) && s.targetText[event.Position] == event.Char
		s.keystrokes = append(s.keystrokes, Keystroke{
			Character: event.Char,
			Position:  event.Position,
			IsCorrect: isCorrect,
			Timestamp: s.now(),
		})
		if isCorrect {
			s.currentStreak++
		} else if s.currentStreak > 0 {
			s.streaks = append(s.streaks, s.currentStreak)
			s.currentStreak = 0
		}
	case InputFinish:
		s.flushPauseAndFinish()
	case InputPause:
		if !s.isPaused {
			s.pausedAt = s.now()
			s.isPaused = true
		}
	case InputResume:
		s.resume()
	case InputSkip:
		s.wasSkipped = true
		s.flushPauseAndFinish()
	case InputFail:
		s.wasFailed = true
		s.flushPauseAndFinish()
	}
}

func (s *StageTracker) resume() {
	if s.isPaused {
		s.totalPausedDuration += s.now().Sub(s.pausedAt)
		s.isPaused = false
	}
}

func (s *StageTracker) flushPauseAndFinish() {
	s.resume()
	if s.hasStart && !s.hasRecordedDuration {
		elapsed := s.now().Sub(s.startTime) - s.totalPausedDuration
		if elapsed < 0 {
			elapsed = 0
		}
		s.recordedDuration = elapsed
		s.hasRecordedDuration = true
	}
}

// IsTerminal reports whether Finish/Skip/Fail has been recorded.
func (s *StageTracker) IsTerminal() bool {
	return s.hasRecordedDuration
}

// StageTrackerData is a read-only snapshot of a StageTracker.
type StageTrackerData struct {
	Keystrokes    []Keystroke
	IsFinished    bool
	ElapsedTime   time.Duration
	Streaks       []int
	CurrentStreak int
	TargetText    string
	ChallengePath string
	WasSkipped    bool
	WasFailed     bool
}

func (s *StageTracker) GetData() StageTrackerData {
	var elapsed time.Duration
	switch {
	case s.hasRecordedDuration:
		elapsed = s.recordedDuration
	case s.hasStart:
		paused := s.totalPausedDuration
		if s.isPaused {
			paused += s.now().Sub(s.pausedAt)
		}
		elapsed = s.now().Sub(s.startTime) - paused
		if elapsed < 0 {
			elapsed = 0
		}
	}

	keystrokes := make([]Keystroke, len(s.keystrokes))
	copy(keystrokes, s.keystrokes)
	streaks := make([]int, len(s.streaks))
	copy(streaks, s.streaks)

	return StageTrackerData{
		Keystrokes:    keystrokes,
		IsFinished:    s.hasRecordedDuration,
		ElapsedTime:   elapsed,
		Streaks:       streaks,
		CurrentStreak: s.currentStreak,
		TargetText:    s.targetText,
		ChallengePath: s.challengePath,
		WasSkipped:    s.wasSkipped,
		WasFailed:     s.wasFailed,
	}
}
