// Package cache implements the challenge cache (SPEC_FULL.md §4.15): a
// gzip-compressed, gob-serialized blob of extracted challenges keyed by
// repository identity, letting repeat plays of the same commit skip
// re-walking and re-parsing. Deliberately stdlib-only (encoding/gob,
// compress/gzip): no example in the retrieved pack serializes a private,
// single-process cache blob like this — the pack's JSON persistence
// (internal/model/index.go) targets human-diffable index files, a
// different concern.
package cache

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/unhappychoice/gittype/internal/challenge"
	gittypeerrors "github.com/unhappychoice/gittype/internal/errors"
)

// Store persists challenge sets under a base directory, one file per cache
// key.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir (e.g. "<app-data>/challenge_cache").
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Key computes the content-addressed cache key for a repository, per spec
// TESTABLE PROPERTY 8: sha256(normalized_remote_url + "@" + commitHash).
func Key(normalizedRemoteURL, commitHash string) string {
	sum := sha256.Sum256([]byte(normalizedRemoteURL + "@" + commitHash))
	return hex.EncodeToString(sum[:])
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.baseDir, key+".bin")
}

// Write persists challenges under key, overwriting any prior entry.
func (s *Store) Write(key string, challenges []challenge.Challenge) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "create cache dir", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(challenges); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "encode challenge cache", err)
	}
	if err := gz.Close(); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "flush challenge cache", err)
	}

	if err := os.WriteFile(s.pathFor(key), buf.Bytes(), 0o644); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "write challenge cache", err)
	}
	return nil
}

// Read loads the challenge set for key. isDirty must be the caller's
// gitrepo.IsDirty result for the working tree being played: per spec
// TESTABLE PROPERTY 8, a dirty tree disables cache reads entirely (the read
// is skipped, not merely refused with an error), so this returns (nil,
// false, nil) rather than attempting the lookup at all.
func (s *Store) Read(key string, isDirty bool) ([]challenge.Challenge, bool, error) {
	if isDirty {
		return nil, false, nil
	}

	raw, err := os.ReadFile(s.pathFor(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, gittypeerrors.Wrap(gittypeerrors.IoError, "read challenge cache", err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, false, gittypeerrors.Wrap(gittypeerrors.IoError, "open challenge cache", err)
	}
	defer gz.Close()

	var challenges []challenge.Challenge
	if err := gob.NewDecoder(gz).Decode(&challenges); err != nil {
		return nil, false, gittypeerrors.Wrap(gittypeerrors.IoError, "decode challenge cache", err)
	}
	return challenges, true, nil
}

// Stat reports how many entries the cache holds and their total size on
// disk, for surfacing in a "clear the cache?" confirmation prompt.
func (s *Store) Stat() (entries int, totalBytes int64, err error) {
	dirEntries, readErr := os.ReadDir(s.baseDir)
	if os.IsNotExist(readErr) {
		return 0, 0, nil
	}
	if readErr != nil {
		return 0, 0, gittypeerrors.Wrap(gittypeerrors.IoError, "list cache dir", readErr)
	}
	for _, e := range dirEntries {
		info, infoErr := e.Info()
		if infoErr != nil {
			continue
		}
		entries++
		totalBytes += info.Size()
	}
	return entries, totalBytes, nil
}

// Clear removes every cached entry under the store's base directory.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "list cache dir", err)
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(s.baseDir, e.Name())); err != nil {
			return gittypeerrors.Wrap(gittypeerrors.IoError, "remove cache entry "+e.Name(), err)
		}
	}
	return nil
}
