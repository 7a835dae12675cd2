package doctor

import (
	"path/filepath"
	"testing"

	"github.com/unhappychoice/gittype/internal/config"
)

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", dir)
	cfg := config.DefaultConfig()
	return cfg
}

func TestRunReportsAllThreeChecks(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	report := Run(cfg)

	if len(report.Checks) != 3 {
		t.Fatalf("len(Checks) = %d, want 3", len(report.Checks))
	}
}

func TestEnsureWritableCreatesDirAndCleansProbe(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if err := ensureWritable(dir); err != nil {
		t.Fatalf("ensureWritable error: %v", err)
	}
	if created, err := filepath.Glob(dir); err != nil || len(created) != 1 {
		t.Fatalf("dir %s not created (matches %v, err %v)", dir, created, err)
	}
	probes, err := filepath.Glob(filepath.Join(dir, ".doctor-probe"))
	if err != nil {
		t.Fatalf("glob error: %v", err)
	}
	if len(probes) != 0 {
		t.Fatalf("probe file left behind: %v", probes)
	}
}

func TestHealthyFalseWhenAnyCheckErrors(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "a", Status: StatusOK},
		{Name: "b", Status: StatusError},
	}}
	if report.Healthy() {
		t.Fatal("expected Healthy() to be false with an error check present")
	}
}
