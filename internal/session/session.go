// Package session implements the Session Manager (SPEC_FULL.md §4.14),
// replacing the original "GameData singleton" with an explicitly
// constructed, non-global Manager per spec §9's redesign note.
package session

import (
	"time"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
	"github.com/unhappychoice/gittype/internal/tracker"
)

// State is the session's coarse lifecycle state.
type State int

const (
	StateWaitingToStart State = iota
	StateInProgress
	StateComplete
	StateFailed
)

// Config holds the parameters a session is configured with, per
// SPEC_FULL.md §4.14.
type Config struct {
	MaxStages      int
	SessionTimeout time.Duration
	Difficulty     chunk.Difficulty
	MaxSkips       int
}

// Manager drives one typing session: it owns the current state, the
// StageRepository challenges are drawn from, and the session and total
// trackers (each stage's tracker is owned by that stage's typing core).
type Manager struct {
	cfg  Config
	repo *challenge.StageRepository

	state        State
	currentStage int
	startedAt    time.Time
	skipsUsed    int

	challenges []challenge.Challenge

	session *tracker.SessionTracker
	total   *tracker.TotalTracker
}

// New constructs a Manager from a configuration and a populated
// StageRepository. No package-level global state is created.
func New(cfg Config, repo *challenge.StageRepository) *Manager {
	return &Manager{
		cfg:     cfg,
		repo:    repo,
		state:   StateWaitingToStart,
		session: tracker.NewSessionTracker(),
		total:   tracker.NewTotalTracker(),
	}
}

// Start selects MaxStages challenges from the repository for cfg.Difficulty
// and transitions to InProgress.
func (m *Manager) Start(seed int64) {
	m.challenges = m.repo.SelectStages(m.cfg.Difficulty, m.cfg.MaxStages, seed)
	m.state = StateInProgress
	m.currentStage = 0
	m.startedAt = time.Now()
}

// CurrentChallenge returns the challenge for the active stage, or false if
// the session has no more stages.
func (m *Manager) CurrentChallenge() (challenge.Challenge, bool) {
	if m.currentStage < 0 || m.currentStage >= len(m.challenges) {
		return challenge.Challenge{}, false
	}
	return m.challenges[m.currentStage], true
}

// State returns the session's current lifecycle state.
func (m *Manager) State() State { return m.state }

// Advance records a finished stage's result and moves to the next stage, or
// to Complete/Failed when the session ends. Returns the resulting state.
func (m *Manager) Advance(result tracker.StageResult) State {
	m.session.RecordStage(result)

	if result.WasFailed {
		m.state = StateFailed
		return m.state
	}
	if result.WasSkipped {
		m.skipsUsed++
		if m.skipsUsed > m.cfg.MaxSkips {
			m.state = StateFailed
			return m.state
		}
	}

	m.currentStage++
	if m.currentStage >= len(m.challenges) || m.currentStage >= m.cfg.MaxStages {
		m.state = StateComplete
		return m.state
	}
	if m.cfg.SessionTimeout > 0 && time.Since(m.startedAt) > m.cfg.SessionTimeout {
		m.state = StateFailed
		return m.state
	}
	return m.state
}

// SessionTracker exposes the underlying append-only stage result log.
func (m *Manager) SessionTracker() *tracker.SessionTracker { return m.session }

// TotalTracker exposes the process-lifetime session log.
func (m *Manager) TotalTracker() *tracker.TotalTracker { return m.total }

// Reset returns the Manager to its waiting-to-start state, discarding the
// current stage selection but keeping prior session/total tracker history.
func (m *Manager) Reset() {
	m.state = StateWaitingToStart
	m.currentStage = 0
	m.skipsUsed = 0
	m.challenges = nil
}
