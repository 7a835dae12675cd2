package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
)

func sampleChallenges() []challenge.Challenge {
	return []challenge.Challenge{
		{ID: "a", SourceFilePath: "main.go", CodeContent: "func main() {}", StartLine: 1, EndLine: 1, Language: "go", DifficultyLevel: chunk.Easy},
	}
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	s := New(t.TempDir())
	key := Key("github.com/acme/widgets", "deadbeef")

	require.NoError(t, s.Write(key, sampleChallenges()))

	got, hit, err := s.Read(key, false)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, sampleChallenges(), got)
}

func TestReadMissingKeyIsMissNotError(t *testing.T) {
	s := New(t.TempDir())
	got, hit, err := s.Read(Key("x", "y"), false)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestReadSkippedWhenTreeIsDirty(t *testing.T) {
	s := New(t.TempDir())
	key := Key("github.com/acme/widgets", "deadbeef")
	require.NoError(t, s.Write(key, sampleChallenges()))

	got, hit, err := s.Read(key, true)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestKeyIsStableForSameRemoteAndCommit(t *testing.T) {
	k1 := Key("github.com/acme/widgets", "deadbeef")
	k2 := Key("github.com/acme/widgets", "deadbeef")
	k3 := Key("github.com/acme/widgets", "other")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestClearRemovesAllEntries(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Write(Key("a", "1"), sampleChallenges()))
	require.NoError(t, s.Write(Key("b", "2"), sampleChallenges()))

	require.NoError(t, s.Clear())

	_, hit, err := s.Read(Key("a", "1"), false)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestClearOnMissingDirIsNoop(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, s.Clear())
}

func TestStatCountsEntriesAndBytes(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Write(Key("a", "1"), sampleChallenges()))
	require.NoError(t, s.Write(Key("b", "2"), sampleChallenges()))

	entries, totalBytes, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, 2, entries)
	assert.Greater(t, totalBytes, int64(0))
}

func TestStatOnMissingDirIsZero(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"))
	entries, totalBytes, err := s.Stat()
	require.NoError(t, err)
	assert.Equal(t, 0, entries)
	assert.Equal(t, int64(0), totalBytes)
}
