// Package language enumerates the source languages gittype knows how to
// turn into typing challenges, grounded on the teacher's extensionToLanguage
// map (internal/chunker/chunker.go) and the language registry it was
// distilled from.
package language

import "strings"

// Language is the static metadata every supported language supplies. It
// intentionally carries no grammar handle itself; the sourceparser package
// binds a Language to a tree-sitter grammar and query set.
type Language struct {
	Name        string
	Aliases     []string
	Extensions  []string
	DisplayName string
	Color       string // lipgloss/ANSI hex color for TUI rendering
	// HasGrammar reports whether this module ships a real tree-sitter
	// binding for the language. Languages without one still register
	// here (name, aliases, extensions, color) but have no entry in the
	// sourceparser registry, so extraction fails with UnsupportedLanguage.
	HasGrammar bool
}

var registry = []Language{
	{Name: "rust", Aliases: []string{"rs"}, Extensions: []string{".rs"}, DisplayName: "Rust", Color: "#dea584", HasGrammar: true},
	{Name: "typescript", Aliases: []string{"ts"}, Extensions: []string{".ts", ".tsx"}, DisplayName: "TypeScript", Color: "#3178c6", HasGrammar: true},
	{Name: "javascript", Aliases: []string{"js"}, Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, DisplayName: "JavaScript", Color: "#f1e05a", HasGrammar: true},
	{Name: "python", Aliases: []string{"py"}, Extensions: []string{".py"}, DisplayName: "Python", Color: "#3572A5", HasGrammar: true},
	{Name: "ruby", Aliases: []string{"rb"}, Extensions: []string{".rb"}, DisplayName: "Ruby", Color: "#701516", HasGrammar: true},
	{Name: "go", Aliases: []string{"golang"}, Extensions: []string{".go"}, DisplayName: "Go", Color: "#00ADD8", HasGrammar: true},
	{Name: "swift", Aliases: nil, Extensions: []string{".swift"}, DisplayName: "Swift", Color: "#F05138", HasGrammar: false},
	{Name: "kotlin", Aliases: []string{"kt"}, Extensions: []string{".kt", ".kts"}, DisplayName: "Kotlin", Color: "#A97BFF", HasGrammar: false},
	{Name: "java", Aliases: nil, Extensions: []string{".java"}, DisplayName: "Java", Color: "#b07219", HasGrammar: true},
	{Name: "php", Aliases: nil, Extensions: []string{".php"}, DisplayName: "PHP", Color: "#4F5D95", HasGrammar: true},
	{Name: "csharp", Aliases: []string{"cs", "c#"}, Extensions: []string{".cs"}, DisplayName: "C#", Color: "#178600", HasGrammar: true},
	{Name: "c", Aliases: nil, Extensions: []string{".c", ".h"}, DisplayName: "C", Color: "#555555", HasGrammar: true},
	{Name: "cpp", Aliases: []string{"c++"}, Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}, DisplayName: "C++", Color: "#f34b7d", HasGrammar: true},
	{Name: "haskell", Aliases: []string{"hs"}, Extensions: []string{".hs"}, DisplayName: "Haskell", Color: "#5e5086", HasGrammar: false},
	{Name: "dart", Aliases: nil, Extensions: []string{".dart"}, DisplayName: "Dart", Color: "#00B4AB", HasGrammar: false},
	{Name: "scala", Aliases: nil, Extensions: []string{".scala"}, DisplayName: "Scala", Color: "#c22d40", HasGrammar: true},
	{Name: "zig", Aliases: nil, Extensions: []string{".zig"}, DisplayName: "Zig", Color: "#ec915c", HasGrammar: false},
	{Name: "clojure", Aliases: []string{"clj"}, Extensions: []string{".clj", ".cljs", ".cljc"}, DisplayName: "Clojure", Color: "#db5855", HasGrammar: false},
	{Name: "elixir", Aliases: []string{"ex", "exs"}, Extensions: []string{".ex", ".exs"}, DisplayName: "Elixir", Color: "#6e4a7e", HasGrammar: false},
	{Name: "erlang", Aliases: []string{"erl"}, Extensions: []string{".erl", ".hrl"}, DisplayName: "Erlang", Color: "#B83998", HasGrammar: false},
	{Name: "bash", Aliases: []string{"sh", "shell"}, Extensions: []string{".sh", ".bash"}, DisplayName: "Shell", Color: "#89e051", HasGrammar: true},
}

// All returns every registered language, in registration order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// ByName resolves a canonical name or alias (case-insensitive) to a Language.
func ByName(name string) (Language, bool) {
	lower := strings.ToLower(name)
	for _, l := range registry {
		if l.Name == lower {
			return l, true
		}
		for _, a := range l.Aliases {
			if a == lower {
				return l, true
			}
		}
	}
	return Language{}, false
}

// FromExtension resolves a file extension (including the leading dot) to a
// Language. Matching is case-insensitive.
func FromExtension(ext string) (Language, bool) {
	lower := strings.ToLower(ext)
	for _, l := range registry {
		for _, e := range l.Extensions {
			if e == lower {
				return l, true
			}
		}
	}
	return Language{}, false
}

// ValidateNames reports any requested names/aliases that don't resolve to a
// registered language, for CLI --langs validation.
func ValidateNames(names []string) (valid []string, unknown []string) {
	for _, n := range names {
		if l, ok := ByName(n); ok {
			valid = append(valid, l.Name)
		} else {
			unknown = append(unknown, n)
		}
	}
	return valid, unknown
}
