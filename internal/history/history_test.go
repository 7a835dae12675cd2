package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRunsMigrationsAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var version int
	require.NoError(t, s2.Conn().QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestUpsertRepositoryIsIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	id1, err := s.UpsertRepository("acme", "widgets", "https://github.com/acme/widgets.git")
	require.NoError(t, err)

	id2, err := s.UpsertRepository("acme", "widgets", "https://github.com/acme/widgets.git")
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
}

func TestListRepositoriesReturnsMostRecentFirst(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.UpsertRepository("acme", "widgets", "https://github.com/acme/widgets.git")
	require.NoError(t, err)
	_, err = s.UpsertRepository("acme", "gadgets", "https://github.com/acme/gadgets.git")
	require.NoError(t, err)

	repos, err := s.ListRepositories()
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "gadgets", repos[0].RepositoryName)
	assert.Equal(t, "widgets", repos[1].RepositoryName)
}

func TestEncodeDecodeCommentRangesRoundTrip(t *testing.T) {
	ranges := [][2]int{{3, 7}, {20, 25}}
	encoded, err := EncodeCommentRanges(ranges)
	require.NoError(t, err)

	decoded, err := DecodeCommentRanges(encoded)
	require.NoError(t, err)
	assert.Equal(t, ranges, decoded)
}

func TestRecordSessionPersistsSessionAndStages(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	repoID, err := s.UpsertRepository("acme", "widgets", "https://github.com/acme/widgets.git")
	require.NoError(t, err)
	require.NoError(t, s.EnsureChallenge("abc", "main.go", 1, 10, "go", "func main() {}", "[]", "Easy"))

	sessionID, err := s.RecordSession(SessionRecord{
		RepositoryID:    repoID,
		StartedAt:       time.Now().Add(-time.Minute),
		CompletedAt:     time.Now(),
		GameMode:        "normal",
		DifficultyLevel: "Easy",
		MaxStages:       1,
		Keystrokes:      40,
		Mistakes:        2,
		Duration:        30 * time.Second,
		WPM:             60,
		CPM:             300,
		Accuracy:        95,
		StagesCompleted: 1,
		StagesAttempted: 1,
		Score:           500,
		RankName:        "Hello World",
		TierName:        "Beginner",
		Position:        1,
		Total:           63,
		Stages: []StageRecord{
			{ChallengeID: "abc", StageNumber: 0, Keystrokes: 40, Mistakes: 2, Duration: 30 * time.Second, WPM: 60, CPM: 300, Accuracy: 95, Score: 500, Language: "go", DifficultyLevel: "Easy"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, sessionID)

	var stageCount int
	require.NoError(t, s.Conn().QueryRow("SELECT COUNT(*) FROM stages WHERE session_id = ?", sessionID).Scan(&stageCount))
	assert.Equal(t, 1, stageCount)

	var resultCount int
	require.NoError(t, s.Conn().QueryRow("SELECT COUNT(*) FROM session_results WHERE session_id = ?", sessionID).Scan(&resultCount))
	assert.Equal(t, 1, resultCount)
}

func TestRecentSessionsAndAggregateTotals(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	repoID, err := s.UpsertRepository("acme", "widgets", "https://github.com/acme/widgets.git")
	require.NoError(t, err)
	require.NoError(t, s.EnsureChallenge("abc", "main.go", 1, 10, "go", "func main() {}", "[]", "Easy"))

	_, err = s.RecordSession(SessionRecord{
		RepositoryID:    repoID,
		StartedAt:       time.Now(),
		CompletedAt:     time.Now(),
		GameMode:        "normal",
		DifficultyLevel: "Easy",
		MaxStages:       1,
		WPM:             60,
		CPM:             300,
		Accuracy:        90,
		Score:           500,
		RankName:        "Hello World",
		TierName:        "Beginner",
		Stages: []StageRecord{
			{ChallengeID: "abc", StageNumber: 0, Keystrokes: 10, WPM: 60, CPM: 300, Accuracy: 90, Score: 500, Language: "go", DifficultyLevel: "Easy"},
		},
	})
	require.NoError(t, err)

	sessions, err := s.RecentSessions(10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "widgets", sessions[0].RepositoryName)

	totals, err := s.AggregateTotals()
	require.NoError(t, err)
	assert.Equal(t, 1, totals.SessionsPlayed)
	assert.Equal(t, 60.0, totals.BestWPM)
}

func TestEnsureChallengeSkipsDuplicateID(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.EnsureChallenge("abc", "main.go", 1, 10, "go", "func main() {}", "[]", "Easy"))
	require.NoError(t, s.EnsureChallenge("abc", "main.go", 1, 10, "go", "func main() {}", "[]", "Easy"))

	var count int
	require.NoError(t, s.Conn().QueryRow("SELECT COUNT(*) FROM challenges WHERE id = ?", "abc").Scan(&count))
	assert.Equal(t, 1, count)
}
