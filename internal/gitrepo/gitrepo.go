// Package gitrepo is the Git collaborator (spec §4.13): local repository
// introspection via a thin os/exec wrapper grounded on the teacher's
// internal/git/git.go, remote spec parsing via whilp/git-urls, and cloning
// via go-git/v5, following jinford-dev-rag's internal/infra/git/client.go.
package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	giturls "github.com/whilp/git-urls"

	gittypeerrors "github.com/unhappychoice/gittype/internal/errors"
)

// IsRepo reports whether path is inside a git working tree.
func IsRepo(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// Head returns the short commit hash of HEAD.
func Head(path string) (string, error) {
	out, err := runGit(path, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", gittypeerrors.Wrap(gittypeerrors.IoError, "resolve HEAD", err)
	}
	return out, nil
}

// Branch returns the current branch name.
func Branch(path string) (string, error) {
	out, err := runGit(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", gittypeerrors.Wrap(gittypeerrors.IoError, "resolve branch", err)
	}
	return out, nil
}

// IsDirty reports whether the working tree has uncommitted changes.
func IsDirty(path string) bool {
	out, err := runGit(path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return out != ""
}

// RemoteURL returns the origin remote's URL.
func RemoteURL(path string) (string, error) {
	out, err := runGit(path, "remote", "get-url", "origin")
	if err != nil {
		return "", gittypeerrors.Wrap(gittypeerrors.IoError, "resolve remote url", err)
	}
	return out, nil
}

// LastCommitTime returns the committer time of HEAD.
func LastCommitTime(path string) (time.Time, error) {
	out, err := runGit(path, "log", "-1", "--format=%cI")
	if err != nil {
		return time.Time{}, gittypeerrors.Wrap(gittypeerrors.IoError, "resolve last commit time", err)
	}
	return time.Parse(time.RFC3339, out)
}

func runGit(path string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", path}, args...)
	out, err := exec.Command("git", fullArgs...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoteSpec is a parsed repository reference, one of the four forms spec
// §6 documents: "owner/name" (GitHub shorthand), "https://...", "git@host:...",
// "ssh://git@host/...".
type RemoteSpec struct {
	Normalized string // normalized clone URL
	Host       string
	Owner      string
	Name       string
}

// ParseRemoteSpec parses any of the spec's four accepted remote forms.
func ParseRemoteSpec(spec string) (*RemoteSpec, error) {
	if spec == "" {
		return nil, gittypeerrors.New(gittypeerrors.InvalidRepositoryFormat, "empty repository spec")
	}

	resolved := spec
	if isShorthand(spec) {
		resolved = "https://github.com/" + spec + ".git"
	}

	u, err := giturls.Parse(resolved)
	if err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.InvalidRepositoryFormat, "parse repository spec "+spec, err)
	}

	host := u.Hostname()
	if host == "" {
		host = u.Host
	}
	path := strings.TrimPrefix(u.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, gittypeerrors.New(gittypeerrors.InvalidRepositoryFormat, "repository spec missing owner/name: "+spec)
	}

	return &RemoteSpec{
		Normalized: resolved,
		Host:       host,
		Owner:      parts[0],
		Name:       parts[1],
	}, nil
}

func isShorthand(spec string) bool {
	if strings.Contains(spec, "://") || strings.Contains(spec, "@") {
		return false
	}
	parts := strings.Split(spec, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// Clone clones url into destDir using go-git, reporting progress via ctx
// cancellation only (no progress writer; the pipeline owns its own
// ProgressReporter per spec §4.12).
func Clone(ctx context.Context, url, destDir string) error {
	_, err := git.PlainCloneContext(ctx, destDir, false, &git.CloneOptions{
		URL: url,
	})
	if err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, fmt.Sprintf("clone %s", url), err)
	}
	return nil
}
