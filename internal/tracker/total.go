package tracker

import "sync"

// SessionResult is the snapshot appended to a TotalTracker on session
// completion.
type SessionResult struct {
	Stages            []StageResult
	SessionScore      float64
	SessionSuccessful bool
	OverallCPM        float64
	OverallWPM        float64
	OverallAccuracy   float64
}

// TotalTracker is the process-lifetime, append-only record of every
// session played. Guarded by a mutex per spec §5 ("the total tracker is
// guarded by a mutex"); unlike the original's GLOBAL_TOTAL_TRACKER static,
// instances are constructed explicitly and held by a session-scoped
// container (spec §9 redesign note).
type TotalTracker struct {
	mu       sync.Mutex
	sessions []SessionResult
}

func NewTotalTracker() *TotalTracker {
	return &TotalTracker{}
}

func (t *TotalTracker) RecordSession(r SessionResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions = append(t.sessions, r)
}

func (t *TotalTracker) Sessions() []SessionResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]SessionResult, len(t.sessions))
	copy(out, t.sessions)
	return out
}
