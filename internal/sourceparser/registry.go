// Package sourceparser binds each language.Language to a tree-sitter
// grammar and a set of queries that resolve chunk.Kind values from parse
// tree captures. Query execution is grounded on the retrieved pack's
// other_examples repomap extractor (the only place in the corpus that
// drives smacker/go-tree-sitter's Query/QueryCursor API); the parser
// registry shape (one map entry per language, lazily constructed) is
// grounded on the teacher's internal/chunker/treesitter.go, generalized
// from node-type-map walking to named-capture queries per the spec.
package sourceparser

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/unhappychoice/gittype/internal/chunk"
	gterrors "github.com/unhappychoice/gittype/internal/errors"
)

// LanguageExtractor is the capability set a language-specific implementation
// provides. Polymorphism stays at this interface; the registry maps a
// language name string to an implementation, never switching on concrete
// types downstream.
type LanguageExtractor interface {
	TreeSitterLanguage() *sitter.Language
	QueryPatterns() string
	CommentQuery() string
	MiddleImplementationQuery() string
	CaptureNameToChunkKind(captureName string) (chunk.Kind, bool)
	MiddleCaptureNameToChunkKind(captureName string) (chunk.Kind, bool)
	ExtractName(node *sitter.Node, source []byte, captureName string) string
}

// Registry caches grammar-bound extractors and hands out parsers from a
// per-language pool, approximating the original's thread-local parser cache
// in a goroutine-scheduled runtime: a parser is checked out for the
// duration of one file's parse and returned afterward, so no two
// goroutines can mutate the same *sitter.Parser concurrently, while
// grammar objects (read-only) are shared freely.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]LanguageExtractor
	parserPool map[string]*sync.Pool
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, built once with every
// statically known language extractor.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for name, ext := range builtinExtractors() {
			defaultReg.Register(name, ext)
		}
	})
	return defaultReg
}

func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]LanguageExtractor),
		parserPool: make(map[string]*sync.Pool),
	}
}

func (r *Registry) Register(name string, ext LanguageExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[name] = ext
	lang := name
	r.parserPool[name] = &sync.Pool{
		New: func() interface{} {
			p := sitter.NewParser()
			p.SetLanguage(ext.TreeSitterLanguage())
			_ = lang
			return p
		},
	}
}

// Get resolves a language name to its extractor, or UnsupportedLanguage.
func (r *Registry) Get(name string) (LanguageExtractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ext, ok := r.extractors[name]
	if !ok {
		return nil, gterrors.New(gterrors.UnsupportedLanguage, name)
	}
	return ext, nil
}

// CheckoutParser borrows a parser for the given language from its pool.
// Callers must call ReturnParser when done.
func (r *Registry) CheckoutParser(name string) (*sitter.Parser, error) {
	r.mu.RLock()
	pool, ok := r.parserPool[name]
	r.mu.RUnlock()
	if !ok {
		return nil, gterrors.New(gterrors.UnsupportedLanguage, name)
	}
	p, _ := pool.Get().(*sitter.Parser)
	return p, nil
}

func (r *Registry) ReturnParser(name string, p *sitter.Parser) {
	r.mu.RLock()
	pool, ok := r.parserPool[name]
	r.mu.RUnlock()
	if ok && p != nil {
		pool.Put(p)
	}
}

// QueryCapture is one named capture produced by running a query against a
// parsed tree.
type QueryCapture struct {
	Node *sitter.Node
	Name string
}

// RunQuery compiles pattern against lang and executes it over root,
// applying predicate filters (#eq?, #match?) and returning every capture in
// match order. A pattern that fails to compile yields no captures rather
// than an error.
func RunQuery(pattern string, lang *sitter.Language, root *sitter.Node, content []byte) []QueryCapture {
	q, err := sitter.NewQuery([]byte(pattern), lang)
	if err != nil {
		return nil
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var results []QueryCapture
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, content)
		for _, c := range m.Captures {
			name := q.CaptureNameForId(c.Index)
			results = append(results, QueryCapture{Node: c.Node, Name: name})
		}
	}
	return results
}
