package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Schema != CurrentConfigSchema {
		t.Errorf("Schema = %d, want %d", cfg.Schema, CurrentConfigSchema)
	}
	if cfg.Difficulty != "Normal" {
		t.Errorf("Difficulty = %q, want %q", cfg.Difficulty, "Normal")
	}
	if cfg.MaxStages != 3 {
		t.Errorf("MaxStages = %d, want 3", cfg.MaxStages)
	}
}

func TestAppDataDirHonorsXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	expected := filepath.Join("/tmp/xdg-data", "gittype")
	if got := AppDataDir(); got != expected {
		t.Errorf("AppDataDir() = %q, want %q", got, expected)
	}
}

func TestAppDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".local", "share", "gittype")
	if got := AppDataDir(); got != expected {
		t.Errorf("AppDataDir() = %q, want %q", got, expected)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configJSON := `{"schema": 1, "languages": ["go", "rust"], "difficulty": "Hard", "max_stages": 5}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Difficulty != "Hard" {
		t.Errorf("Difficulty = %q, want %q", cfg.Difficulty, "Hard")
	}
	if cfg.MaxStages != 5 {
		t.Errorf("MaxStages = %d, want 5", cfg.MaxStages)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("len(Languages) = %d, want 2", len(cfg.Languages))
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	if err != nil {
		t.Fatalf("Load should not error for missing file: %v", err)
	}
	if cfg.Difficulty != "Normal" {
		t.Errorf("Difficulty = %q, want default %q", cfg.Difficulty, "Normal")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.MaxSkips = 7

	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.MaxSkips != 7 {
		t.Errorf("MaxSkips = %d, want 7", loaded.MaxSkips)
	}
}

func TestLoadThemeReturnsDefaultWhenPathEmpty(t *testing.T) {
	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}
	if theme != DefaultTheme() {
		t.Errorf("theme = %+v, want default %+v", theme, DefaultTheme())
	}
}

func TestLoadThemeOverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	yamlContent := "correct_color: \"#123456\"\n"
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}
	if theme.CorrectColor != "#123456" {
		t.Errorf("CorrectColor = %q, want %q", theme.CorrectColor, "#123456")
	}
	if theme.MistakeColor != DefaultTheme().MistakeColor {
		t.Errorf("MistakeColor = %q, want unchanged default %q", theme.MistakeColor, DefaultTheme().MistakeColor)
	}
}
