// Package doctor implements gittype's environment diagnostics, grounded on
// the teacher's internal/doctor "check and repair" shape (a Check list, a
// Result the caller renders or repairs from) generalized from workspace
// project.json reconciliation to gittype's own prerequisites: a usable git
// binary, a writable app-data directory, and an openable history database.
package doctor

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/unhappychoice/gittype/internal/config"
	"github.com/unhappychoice/gittype/internal/history"
)

// Status is one check's outcome.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	default:
		return "ERROR"
	}
}

// Check is one diagnostic result.
type Check struct {
	Name    string
	Status  Status
	Message string
}

// Report is the full diagnostic run, in the fixed order the checks ran.
type Report struct {
	Checks []Check
}

// Healthy reports whether every check passed without StatusError.
func (r Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status == StatusError {
			return false
		}
	}
	return true
}

// Run executes every diagnostic check against cfg and returns a Report.
func Run(cfg *config.Config) Report {
	var report Report
	report.Checks = append(report.Checks, checkGitBinary())
	report.Checks = append(report.Checks, checkAppDataDir(cfg))
	report.Checks = append(report.Checks, checkHistoryDB(cfg))
	return report
}

func checkGitBinary() Check {
	path, err := exec.LookPath("git")
	if err != nil {
		return Check{Name: "git binary", Status: StatusError, Message: "git not found on PATH; cloning and local repo introspection will fail"}
	}
	return Check{Name: "git binary", Status: StatusOK, Message: path}
}

func checkAppDataDir(cfg *config.Config) Check {
	dir := config.AppDataDir()
	if err := ensureWritable(dir); err != nil {
		return Check{Name: "app data directory", Status: StatusError, Message: dir + ": " + err.Error()}
	}
	return Check{Name: "app data directory", Status: StatusOK, Message: dir}
}

func ensureWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

func checkHistoryDB(cfg *config.Config) Check {
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return Check{Name: "history database", Status: StatusError, Message: err.Error()}
	}
	defer store.Close()
	return Check{Name: "history database", Status: StatusOK, Message: cfg.HistoryDBPath()}
}
