package sourceparser

// builtinExtractors returns every language for which this module carries a
// real tree-sitter grammar binding, matching language.Language.HasGrammar.
func builtinExtractors() map[string]LanguageExtractor {
	return map[string]LanguageExtractor{
		"go":         goExtractor{},
		"python":     pythonExtractor{},
		"javascript": javascriptExtractor{},
		"typescript": typescriptExtractor{},
		"rust":       rustExtractor{},
		"ruby":       rubyExtractor{},
		"java":       javaExtractor{},
		"c":          cExtractor{},
		"cpp":        cppExtractor{},
		"csharp":     csharpExtractor{},
		"bash":       bashExtractor{},
		"php":        phpExtractor{},
		"scala":      scalaExtractor{},
	}
}
