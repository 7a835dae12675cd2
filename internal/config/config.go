// Package config implements gittype's app configuration (SPEC_FULL.md
// §4.17), grounded on the teacher's internal/config/config.go
// Load/DefaultConfig/schema-version pattern, with an XDG-aware app-data path
// and a YAML-loaded theme override.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	gittypeerrors "github.com/unhappychoice/gittype/internal/errors"
)

// CurrentConfigSchema is bumped whenever the on-disk JSON shape changes.
const CurrentConfigSchema = 1

// Config is the persisted user configuration.
type Config struct {
	Schema             int      `json:"schema"`
	Languages          []string `json:"languages,omitempty"`
	Difficulty         string   `json:"difficulty,omitempty"`
	MaxStages          int      `json:"max_stages,omitempty"`
	MaxSkips           int      `json:"max_skips,omitempty"`
	SessionTimeoutSecs int      `json:"session_timeout_secs,omitempty"`
	ThemePath          string   `json:"theme_path,omitempty"`
}

// DefaultConfig returns gittype's baked-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Schema:     CurrentConfigSchema,
		Difficulty: "Normal",
		MaxStages:  3,
		MaxSkips:   3,
	}
}

// AppDataDir returns the platform app-data directory gittype stores its
// config, history database, and challenge cache under, honoring
// XDG_DATA_HOME when set.
func AppDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "gittype")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "gittype")
}

// DefaultConfigPath returns the default config.json location.
func DefaultConfigPath() string {
	return filepath.Join(AppDataDir(), "config.json")
}

// Load reads configPath (falling back to DefaultConfigPath when empty),
// returning DefaultConfig when no file exists.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.IoError, "read config", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, gittypeerrors.Wrap(gittypeerrors.ValidationError, "parse config", err)
	}
	return cfg, nil
}

// Save writes cfg to configPath (falling back to DefaultConfigPath when
// empty), creating parent directories as needed.
func Save(configPath string, cfg *Config) error {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return gittypeerrors.Wrap(gittypeerrors.IoError, "create config dir", err)
		}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "encode config", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return gittypeerrors.Wrap(gittypeerrors.IoError, "write config", err)
	}
	return nil
}

// HistoryDBPath returns the path to the session-history SQLite database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}

// ChallengeCacheDir returns the path to the challenge cache directory.
func (c *Config) ChallengeCacheDir() string {
	return filepath.Join(AppDataDir(), "challenge_cache")
}

// Theme is a user-overridable color palette loaded from YAML, extending
// §4.17's theme override (gopkg.in/yaml.v3 is already in the dependency
// graph transitively via the teacher and directly via kraklabs-cie).
type Theme struct {
	CorrectColor string `yaml:"correct_color"`
	MistakeColor string `yaml:"mistake_color"`
	PendingColor string `yaml:"pending_color"`
	CommentColor string `yaml:"comment_color"`
	CursorColor  string `yaml:"cursor_color"`
}

// DefaultTheme mirrors gittype's built-in palette.
func DefaultTheme() Theme {
	return Theme{
		CorrectColor: "#00ff00",
		MistakeColor: "#ff0000",
		PendingColor: "#808080",
		CommentColor: "#505050",
		CursorColor:  "#ffffff",
	}
}

// LoadTheme reads a YAML theme override, returning DefaultTheme when path
// is empty or does not exist.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return theme, nil
	}
	if err != nil {
		return theme, gittypeerrors.Wrap(gittypeerrors.IoError, "read theme", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return theme, gittypeerrors.Wrap(gittypeerrors.ValidationError, "parse theme", err)
	}
	return theme, nil
}
