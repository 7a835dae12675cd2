// Package history implements the SQLite session-history store (spec §6),
// grounded on the teacher's internal/vectordb/db.go WAL+schema_version
// migration pattern, adapted to gittype's six-table schema.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	gittypeerrors "github.com/unhappychoice/gittype/internal/errors"
)

// Store wraps the SQLite session-history database.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens or creates the history database at path, enabling WAL mode and
// foreign keys, then runs any pending migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "create history dir", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "open history db", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "enable WAL mode", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "enable foreign keys", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.conn.Close() }

func (s *Store) Conn() *sql.DB { return s.conn }

func (s *Store) migrate() error {
	if _, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.DatabaseError, "create schema_version table", err)
	}

	var current int
	if err := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.DatabaseError, "read schema version", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV001InitialSchema},
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := s.conn.Exec(m.sql); err != nil {
			return gittypeerrors.Wrap(gittypeerrors.DatabaseError, fmt.Sprintf("apply migration v%03d", m.version), err)
		}
		if _, err := s.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return gittypeerrors.Wrap(gittypeerrors.DatabaseError, fmt.Sprintf("record migration v%03d", m.version), err)
		}
	}
	return nil
}

// migrationV001InitialSchema is gittype's six-table schema per spec §6,
// grounded additionally on original_source's v001_initial_schema.rs for
// column lists and indices.
const migrationV001InitialSchema = `
CREATE TABLE IF NOT EXISTS repositories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_name TEXT NOT NULL,
    repository_name TEXT NOT NULL,
    remote_url TEXT NOT NULL,
    UNIQUE(user_name, repository_name)
);

CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    repository_id INTEGER NOT NULL REFERENCES repositories(id) ON DELETE CASCADE,
    started_at TIMESTAMP NOT NULL,
    completed_at TIMESTAMP,
    branch TEXT,
    commit_hash TEXT,
    is_dirty INTEGER NOT NULL DEFAULT 0,
    game_mode TEXT NOT NULL,
    difficulty_level TEXT NOT NULL,
    max_stages INTEGER NOT NULL,
    time_limit_seconds INTEGER
);

CREATE INDEX IF NOT EXISTS idx_sessions_repo_date ON sessions(repository_id, started_at);

CREATE TABLE IF NOT EXISTS session_results (
    session_id INTEGER PRIMARY KEY REFERENCES sessions(id) ON DELETE CASCADE,
    repository_id INTEGER NOT NULL REFERENCES repositories(id) ON DELETE CASCADE,
    keystrokes INTEGER NOT NULL,
    mistakes INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    wpm REAL NOT NULL,
    cpm REAL NOT NULL,
    accuracy REAL NOT NULL,
    stages_completed INTEGER NOT NULL,
    stages_attempted INTEGER NOT NULL,
    stages_skipped INTEGER NOT NULL,
    score REAL NOT NULL,
    rank_name TEXT NOT NULL,
    tier_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    total INTEGER NOT NULL,
    game_mode TEXT NOT NULL,
    difficulty_level TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS challenges (
    id TEXT PRIMARY KEY,
    file_path TEXT NOT NULL,
    start_line INTEGER NOT NULL,
    end_line INTEGER NOT NULL,
    language TEXT NOT NULL,
    code_content TEXT NOT NULL,
    comment_ranges TEXT NOT NULL DEFAULT '[]',
    difficulty_level TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_challenges_language ON challenges(language);

CREATE TABLE IF NOT EXISTS stages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    challenge_id TEXT NOT NULL REFERENCES challenges(id),
    stage_number INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS stage_results (
    stage_id INTEGER PRIMARY KEY REFERENCES stages(id) ON DELETE CASCADE,
    keystrokes INTEGER NOT NULL,
    mistakes INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    wpm REAL NOT NULL,
    cpm REAL NOT NULL,
    accuracy REAL NOT NULL,
    score REAL NOT NULL,
    language TEXT NOT NULL,
    difficulty_level TEXT NOT NULL,
    was_skipped INTEGER NOT NULL DEFAULT 0,
    was_failed INTEGER NOT NULL DEFAULT 0
);
`

// EncodeCommentRanges serializes ranges as the spec's `[[s,e],...]` JSON
// array form.
func EncodeCommentRanges(ranges [][2]int) (string, error) {
	if ranges == nil {
		ranges = [][2]int{}
	}
	b, err := json.Marshal(ranges)
	if err != nil {
		return "", gittypeerrors.Wrap(gittypeerrors.DatabaseError, "encode comment ranges", err)
	}
	return string(b), nil
}

// DecodeCommentRanges parses the `[[s,e],...]` JSON array form back to pairs.
func DecodeCommentRanges(raw string) ([][2]int, error) {
	var ranges [][2]int
	if raw == "" {
		return ranges, nil
	}
	if err := json.Unmarshal([]byte(raw), &ranges); err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "decode comment ranges", err)
	}
	return ranges, nil
}

// UpsertRepository inserts or returns the existing repository row id for
// (userName, repositoryName).
func (s *Store) UpsertRepository(userName, repositoryName, remoteURL string) (int64, error) {
	_, err := s.conn.Exec(`
		INSERT INTO repositories (user_name, repository_name, remote_url)
		VALUES (?, ?, ?)
		ON CONFLICT(user_name, repository_name) DO UPDATE SET remote_url = excluded.remote_url
	`, userName, repositoryName, remoteURL)
	if err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "upsert repository", err)
	}
	var existing int64
	err = s.conn.QueryRow(`SELECT id FROM repositories WHERE user_name = ? AND repository_name = ?`, userName, repositoryName).Scan(&existing)
	if err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "lookup repository id", err)
	}
	return existing, nil
}

// RepositorySummary is one row of the repositories table.
type RepositorySummary struct {
	ID             int64
	UserName       string
	RepositoryName string
	RemoteURL      string
}

// ListRepositories returns every known repository, most recently
// inserted first.
func (s *Store) ListRepositories() ([]RepositorySummary, error) {
	rows, err := s.conn.Query(`SELECT id, user_name, repository_name, remote_url FROM repositories ORDER BY id DESC`)
	if err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "list repositories", err)
	}
	defer rows.Close()

	var out []RepositorySummary
	for rows.Next() {
		var r RepositorySummary
		if err := rows.Scan(&r.ID, &r.UserName, &r.RepositoryName, &r.RemoteURL); err != nil {
			return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "scan repository row", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "iterate repositories", err)
	}
	return out, nil
}

// SessionRecord is everything RecordSession needs to persist one completed
// session and its stages (spec §6's sessions/session_results/stages/
// stage_results tables).
type SessionRecord struct {
	RepositoryID     int64
	StartedAt        time.Time
	CompletedAt      time.Time
	Branch           string
	CommitHash       string
	IsDirty          bool
	GameMode         string
	DifficultyLevel  string
	MaxStages        int
	TimeLimitSeconds int

	Keystrokes      int
	Mistakes        int
	Duration        time.Duration
	WPM             float64
	CPM             float64
	Accuracy        float64
	StagesCompleted int
	StagesAttempted int
	StagesSkipped   int
	Score           float64
	RankName        string
	TierName        string
	Position        int
	Total           int

	Stages []StageRecord
}

// StageRecord is one played stage within a SessionRecord.
type StageRecord struct {
	ChallengeID     string
	StageNumber     int
	Keystrokes      int
	Mistakes        int
	Duration        time.Duration
	WPM             float64
	CPM             float64
	Accuracy        float64
	Score           float64
	Language        string
	DifficultyLevel string
	WasSkipped      bool
	WasFailed       bool
}

// RecordSession writes a completed session, its aggregate session_results
// row, and every stage/stage_results row, all inside one transaction.
func (s *Store) RecordSession(r SessionRecord) (int64, error) {
	tx, err := s.conn.Begin()
	if err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "begin session transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO sessions (repository_id, started_at, completed_at, branch, commit_hash, is_dirty, game_mode, difficulty_level, max_stages, time_limit_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.RepositoryID, r.StartedAt, r.CompletedAt, r.Branch, r.CommitHash, boolToInt(r.IsDirty), r.GameMode, r.DifficultyLevel, r.MaxStages, nullableSeconds(r.TimeLimitSeconds))
	if err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "insert session", err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "read session id", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO session_results (session_id, repository_id, keystrokes, mistakes, duration_ms, wpm, cpm, accuracy, stages_completed, stages_attempted, stages_skipped, score, rank_name, tier_name, position, total, game_mode, difficulty_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, r.RepositoryID, r.Keystrokes, r.Mistakes, r.Duration.Milliseconds(), r.WPM, r.CPM, r.Accuracy, r.StagesCompleted, r.StagesAttempted, r.StagesSkipped, r.Score, r.RankName, r.TierName, r.Position, r.Total, r.GameMode, r.DifficultyLevel); err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "insert session_results", err)
	}

	for _, st := range r.Stages {
		stageRes, err := tx.Exec(`
			INSERT INTO stages (session_id, challenge_id, stage_number) VALUES (?, ?, ?)
		`, sessionID, st.ChallengeID, st.StageNumber)
		if err != nil {
			return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "insert stage", err)
		}
		stageID, err := stageRes.LastInsertId()
		if err != nil {
			return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "read stage id", err)
		}
		if _, err := tx.Exec(`
			INSERT INTO stage_results (stage_id, keystrokes, mistakes, duration_ms, wpm, cpm, accuracy, score, language, difficulty_level, was_skipped, was_failed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, stageID, st.Keystrokes, st.Mistakes, st.Duration.Milliseconds(), st.WPM, st.CPM, st.Accuracy, st.Score, st.Language, st.DifficultyLevel, boolToInt(st.WasSkipped), boolToInt(st.WasFailed)); err != nil {
			return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "insert stage_results", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "commit session transaction", err)
	}
	return sessionID, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableSeconds(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}

// EnsureChallenge writes a challenges row only if the id hasn't been seen
// before, per SPEC_FULL.md §4.16 (the on-disk cache is the source of truth;
// this table exists for historical session replay, not duplication).
func (s *Store) EnsureChallenge(id, filePath string, startLine, endLine int, language, codeContent, commentRangesJSON, difficultyLevel string) error {
	_, err := s.conn.Exec(`
		INSERT INTO challenges (id, file_path, start_line, end_line, language, code_content, comment_ranges, difficulty_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, filePath, startLine, endLine, language, codeContent, commentRangesJSON, difficultyLevel)
	if err != nil {
		return gittypeerrors.Wrap(gittypeerrors.DatabaseError, "ensure challenge row", err)
	}
	return nil
}

// SessionSummary is one row of the `history` CLI command's listing:
// a played session joined against its repository and aggregate result.
type SessionSummary struct {
	SessionID       int64
	UserName        string
	RepositoryName  string
	StartedAt       time.Time
	DifficultyLevel string
	WPM             float64
	CPM             float64
	Accuracy        float64
	Score           float64
	RankName        string
	StagesCompleted int
	StagesAttempted int
}

// RecentSessions returns the most recently started sessions, most recent
// first, joined against their repository and session_results row.
func (s *Store) RecentSessions(limit int) ([]SessionSummary, error) {
	rows, err := s.conn.Query(`
		SELECT sessions.id, repositories.user_name, repositories.repository_name, sessions.started_at,
		       sessions.difficulty_level, session_results.wpm, session_results.cpm, session_results.accuracy,
		       session_results.score, session_results.rank_name, session_results.stages_completed, session_results.stages_attempted
		FROM sessions
		JOIN repositories ON repositories.id = sessions.repository_id
		JOIN session_results ON session_results.session_id = sessions.id
		ORDER BY sessions.started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "list recent sessions", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var r SessionSummary
		if err := rows.Scan(&r.SessionID, &r.UserName, &r.RepositoryName, &r.StartedAt, &r.DifficultyLevel,
			&r.WPM, &r.CPM, &r.Accuracy, &r.Score, &r.RankName, &r.StagesCompleted, &r.StagesAttempted); err != nil {
			return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "scan session row", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "iterate sessions", err)
	}
	return out, nil
}

// TotalsSummary is the all-time aggregate the `stats` command
// prints, computed directly from session_results so it survives restarts
// (unlike the in-process tracker.TotalTracker).
type TotalsSummary struct {
	SessionsPlayed  int
	BestWPM         float64
	WorstWPM        float64
	AverageAccuracy float64
	TotalScore      float64
}

// AggregateTotals computes TotalsSummary across every recorded session.
func (s *Store) AggregateTotals() (TotalsSummary, error) {
	var out TotalsSummary
	var bestWPM, worstWPM, avgAccuracy, totalScore sql.NullFloat64
	var count int
	err := s.conn.QueryRow(`
		SELECT COUNT(*), MAX(wpm), MIN(wpm), AVG(accuracy), SUM(score)
		FROM session_results
	`).Scan(&count, &bestWPM, &worstWPM, &avgAccuracy, &totalScore)
	if err != nil {
		return out, gittypeerrors.Wrap(gittypeerrors.DatabaseError, "aggregate session totals", err)
	}
	out.SessionsPlayed = count
	out.BestWPM = bestWPM.Float64
	out.WorstWPM = worstWPM.Float64
	out.AverageAccuracy = avgAccuracy.Float64
	out.TotalScore = totalScore.Float64
	return out, nil
}
