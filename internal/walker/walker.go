// Package walker implements the file walker (spec §4.2): it enumerates
// candidate source files under a root, honoring include/exclude patterns,
// .gitignore, and a max-file-size cap, grounded on the teacher's
// internal/fs (filepath.WalkDir + BuiltinExcludes) generalized with
// sabhiram/go-gitignore for real gitignore semantics.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/unhappychoice/gittype/internal/language"
)

// DefaultExcludePatterns covers common build/dependency/cache directories
// and language-specific artifacts, grounded on the teacher's
// fs.BuiltinExcludes list.
var DefaultExcludePatterns = []string{
	"target/", "node_modules/", "dist/", "build/", "out/", "bin/", "obj/",
	".git/", ".cache/", "__pycache__/", ".pytest_cache/", ".mypy_cache/",
	".venv/", "venv/", ".idea/", ".vscode/", "vendor/", "coverage/",
	".next/", ".nuxt/", ".turbo/", "_build/", "deps/",
}

// DefaultMaxFileSizeBytes is the default per-file size cap (1 MiB).
const DefaultMaxFileSizeBytes = 1 << 20

// ExtractionOptions configures one walk.
type ExtractionOptions struct {
	IncludePatterns  []string
	ExcludePatterns  []string
	Languages        []string // empty means no language filter
	MaxFileSizeBytes int64
}

// DefaultExtractionOptions returns the spec's documented defaults.
func DefaultExtractionOptions() ExtractionOptions {
	return ExtractionOptions{
		IncludePatterns:  nil,
		ExcludePatterns:  append([]string{}, DefaultExcludePatterns...),
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
	}
}

// Entry is one file the walker yielded, paired with its resolved language.
type Entry struct {
	Path     string
	Size     int64
	Language language.Language
}

// Warning is a non-fatal skip reason surfaced to the caller, e.g. a file
// exceeding MaxFileSizeBytes.
type Warning struct {
	Path   string
	Reason string
}

// Walk enumerates every file under root matching opts, sorted by size
// descending (spec §4.2: "improve progress-bar smoothness"). Oversized
// files are skipped and reported as warnings rather than aborting the walk;
// files with unresolvable extensions are dropped without a warning.
func Walk(root string, opts ExtractionOptions) ([]Entry, []Warning, error) {
	if opts.MaxFileSizeBytes <= 0 {
		opts.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}

	ignoreMatcher := loadGitignore(root)
	langFilter := buildLanguageFilter(opts.Languages)

	var entries []Entry
	var warnings []Warning

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			rel = p
		}

		if d.IsDir() {
			if rel != "." && (shouldExcludeDir(d.Name(), opts.ExcludePatterns) || ignoreMatcher.MatchesPath(rel)) {
				return filepath.SkipDir
			}
			return nil
		}

		if ignoreMatcher.MatchesPath(rel) {
			return nil
		}
		if !matchesInclude(rel, opts.IncludePatterns) || matchesExclude(rel, opts.ExcludePatterns) {
			return nil
		}

		lang, ok := language.FromExtension(filepath.Ext(p))
		if !ok || (langFilter != nil && !langFilter[lang.Name]) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if info.Size() > opts.MaxFileSizeBytes {
			warnings = append(warnings, Warning{Path: p, Reason: "exceeds max_file_size_bytes"})
			return nil
		}

		entries = append(entries, Entry{Path: p, Size: info.Size(), Language: lang})
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})

	return entries, warnings, nil
}

func loadGitignore(root string) *gitignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return gitignore.CompileIgnoreLines()
	}
	ignore, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return gitignore.CompileIgnoreLines()
	}
	return ignore
}

func buildLanguageFilter(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	filter := make(map[string]bool, len(names))
	for _, n := range names {
		filter[n] = true
	}
	return filter
}

func shouldExcludeDir(name string, patterns []string) bool {
	for _, p := range patterns {
		trimmed := trimTrailingSlash(p)
		if name == trimmed {
			return true
		}
	}
	return false
}

func matchesInclude(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(p, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

func matchesExclude(rel string, patterns []string) bool {
	for _, p := range patterns {
		trimmed := trimTrailingSlash(p)
		if ok, _ := filepath.Match(trimmed, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(trimmed, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

func trimTrailingSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		return s[:len(s)-1]
	}
	return s
}
