// Package pipeline implements the Loading Pipeline Driver (SPEC_FULL.md
// §4.12): the fixed Cloning -> Scanning -> Extracting -> Generating ->
// Finalizing sequence that turns a repository spec into a populated
// StageRepository, reporting progress through a ProgressReporter.
// Grounded on the teacher's internal/search/indexer.go IndexCodebase
// channel-based phase reporting and worker-pool pattern, generalized from
// a single "chunking" phase to gittype's five named steps.
package pipeline

import (
	"context"
	"os"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/unhappychoice/gittype/internal/cache"
	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
	gterrors "github.com/unhappychoice/gittype/internal/errors"
	"github.com/unhappychoice/gittype/internal/extractor"
	"github.com/unhappychoice/gittype/internal/gitrepo"
	"github.com/unhappychoice/gittype/internal/history"
	"github.com/unhappychoice/gittype/internal/walker"
)

// Step identifies one stage of the loading pipeline, in fixed order.
type Step int

const (
	StepCloning Step = iota
	StepScanning
	StepExtracting
	StepGenerating
	StepFinalizing
)

func (s Step) String() string {
	switch s {
	case StepCloning:
		return "Cloning"
	case StepScanning:
		return "Scanning"
	case StepExtracting:
		return "Extracting"
	case StepGenerating:
		return "Generating"
	case StepFinalizing:
		return "Finalizing"
	default:
		return "Unknown"
	}
}

// ProgressReporter receives loading-pipeline progress, per spec §4.12. A
// caller not interested in progress can use NoopReporter.
type ProgressReporter interface {
	SetStep(step Step)
	SetCurrentFile(path string)
	SetFileCounts(step Step, processed, total int, note string)
}

// NoopReporter discards every report.
type NoopReporter struct{}

func (NoopReporter) SetStep(Step)                         {}
func (NoopReporter) SetCurrentFile(string)                {}
func (NoopReporter) SetFileCounts(Step, int, int, string) {}

// Source describes what to load: either a local path already on disk, or a
// remote spec (shorthand/https/ssh) to clone into a temp directory first.
type Source struct {
	LocalPath  string
	RemoteSpec string
}

// Result is what a completed pipeline run hands back: the populated
// repository, the repository root actually scanned, and the repository's
// git identity (for history/cache keys).
type Result struct {
	Repo       *challenge.StageRepository
	RootPath   string
	RemoteURL  string
	CommitHash string
	Branch     string
	IsDirty    bool
	Challenges []challenge.Challenge
	Warnings   []walker.Warning
}

// Options configures one pipeline run.
type Options struct {
	Walker   walker.ExtractionOptions
	Workers  int
	Cache    *cache.Store
	History  *history.Store
	Progress ProgressReporter
	Logger   *zap.Logger
}

// DefaultOptions returns spec-documented defaults: walker defaults, a
// worker count capped to available CPUs, and a no-op progress reporter.
func DefaultOptions() Options {
	return Options{
		Walker:   walker.DefaultExtractionOptions(),
		Workers:  runtime.NumCPU(),
		Progress: NoopReporter{},
	}
}

// Run drives the five-step pipeline to completion. Cancelling ctx discards
// any partial result: Run returns a non-nil error and a zero Result.
func Run(ctx context.Context, src Source, opts Options) (Result, error) {
	if opts.Progress == nil {
		opts.Progress = NoopReporter{}
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	root, cleanup, err := resolveRoot(ctx, src, opts.Progress)
	if err != nil {
		return Result{}, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	var res Result
	res.RootPath = root
	res.IsDirty = gitrepo.IsRepo(root) && gitrepo.IsDirty(root)
	if gitrepo.IsRepo(root) {
		if url, err := gitrepo.RemoteURL(root); err == nil {
			res.RemoteURL = url
		}
		if head, err := gitrepo.Head(root); err == nil {
			res.CommitHash = head
		}
		if branch, err := gitrepo.Branch(root); err == nil {
			res.Branch = branch
		}
	}

	keyURL := res.RemoteURL
	if spec, err := gitrepo.ParseRemoteSpec(res.RemoteURL); err == nil {
		keyURL = spec.Host + "/" + spec.Owner + "/" + spec.Name
	}

	if opts.Cache != nil && res.RemoteURL != "" && res.CommitHash != "" {
		key := cache.Key(keyURL, res.CommitHash)
		if cached, hit, err := opts.Cache.Read(key, res.IsDirty); err == nil && hit {
			opts.Progress.SetStep(StepFinalizing)
			res.Challenges = cached
			res.Repo = challenge.NewStageRepository()
			res.Repo.BuildDifficultyIndices(cached)
			opts.Progress.SetFileCounts(StepFinalizing, 1, 1, "cache hit")
			return res, nil
		}
	}

	entries, warnings, err := scan(ctx, root, opts)
	if err != nil {
		return Result{}, err
	}
	res.Warnings = warnings
	if err := checkCancelled(ctx); err != nil {
		return Result{}, err
	}

	chunks, err := extract(ctx, entries, opts)
	if err != nil {
		return Result{}, err
	}
	if err := checkCancelled(ctx); err != nil {
		return Result{}, err
	}

	challenges := generate(chunks, opts)
	if err := checkCancelled(ctx); err != nil {
		return Result{}, err
	}

	res.Challenges = challenges
	res.Repo = finalize(challenges, opts)

	if opts.Cache != nil && res.RemoteURL != "" && res.CommitHash != "" && !res.IsDirty {
		_ = opts.Cache.Write(cache.Key(keyURL, res.CommitHash), challenges)
	}
	if opts.History != nil {
		persistChallenges(opts.History, challenges)
	}

	return res, nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return gterrors.Wrap(gterrors.IoError, "loading pipeline cancelled", ctx.Err())
	default:
		return nil
	}
}

// resolveRoot returns the directory the walker should scan, cloning a
// remote spec into a temp dir first when src.RemoteSpec is set. The
// returned cleanup removes that temp dir; it is nil for a local path.
func resolveRoot(ctx context.Context, src Source, progress ProgressReporter) (string, func(), error) {
	if src.RemoteSpec == "" {
		return src.LocalPath, nil, nil
	}

	progress.SetStep(StepCloning)
	remote, err := gitrepo.ParseRemoteSpec(src.RemoteSpec)
	if err != nil {
		return "", nil, err
	}

	dir, err := os.MkdirTemp("", "gittype-clone-*")
	if err != nil {
		return "", nil, gterrors.Wrap(gterrors.IoError, "create clone dir", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	progress.SetCurrentFile(remote.Normalized)
	if err := gitrepo.Clone(ctx, remote.Normalized, dir); err != nil {
		cleanup()
		return "", nil, err
	}
	progress.SetFileCounts(StepCloning, 1, 1, remote.Normalized)
	return dir, cleanup, nil
}

func scan(ctx context.Context, root string, opts Options) ([]walker.Entry, []walker.Warning, error) {
	opts.Progress.SetStep(StepScanning)
	entries, warnings, err := walker.Walk(root, opts.Walker)
	if err != nil {
		return nil, nil, err
	}
	for i, e := range entries {
		if err := checkCancelled(ctx); err != nil {
			return nil, nil, err
		}
		opts.Progress.SetCurrentFile(e.Path)
		opts.Progress.SetFileCounts(StepScanning, i+1, len(entries), "")
	}
	opts.Progress.SetFileCounts(StepScanning, len(entries), len(entries), "")
	return entries, warnings, nil
}

type extractResult struct {
	path   string
	chunks []chunk.Chunk
	err    error
}

// extract runs the per-file parse/query extraction across a worker pool,
// grounded on indexer.go's fileChan/resultChan/sync.WaitGroup shape.
func extract(ctx context.Context, entries []walker.Entry, opts Options) ([]chunk.Chunk, error) {
	opts.Progress.SetStep(StepExtracting)
	ex := extractor.New(nil)

	type job struct {
		path, lang string
	}
	jobs := make(chan job, len(entries))
	results := make(chan extractResult, len(entries))

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				content, err := os.ReadFile(j.path)
				if err != nil {
					results <- extractResult{path: j.path, err: gterrors.Wrap(gterrors.IoError, j.path, err)}
					continue
				}
				chunks, err := ex.ExtractFile(ctx, j.path, j.lang, content)
				results <- extractResult{path: j.path, chunks: chunks, err: err}
			}
		}()
	}

	for _, e := range entries {
		jobs <- job{path: e.Path, lang: e.Language.Name}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []chunk.Chunk
	processed := 0
	for r := range results {
		processed++
		opts.Progress.SetCurrentFile(r.path)
		if r.err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("file extraction failed", zap.String("path", r.path), zap.Error(r.err))
			}
			opts.Progress.SetFileCounts(StepExtracting, processed, len(entries), r.err.Error())
			continue
		}
		all = append(all, r.chunks...)
		opts.Progress.SetFileCounts(StepExtracting, processed, len(entries), "")
	}
	opts.Progress.SetFileCounts(StepExtracting, len(entries), len(entries), "")
	return all, nil
}

func generate(chunks []chunk.Chunk, opts Options) []challenge.Challenge {
	opts.Progress.SetStep(StepGenerating)
	challenges := challenge.Generate(chunks)
	warnOversizedZenChallenges(challenges, opts.Logger)
	opts.Progress.SetFileCounts(StepGenerating, len(challenges), len(challenges), "")
	return challenges
}

// warnOversizedZenChallenges logs a warning for every Zen challenge beyond
// chunk.ZenCharacterCeiling: Zen is whole-file-only and spec forbids
// splitting it, so oversized files are kept as-is with a logged warning
// rather than silently truncated.
func warnOversizedZenChallenges(challenges []challenge.Challenge, logger *zap.Logger) {
	if logger == nil {
		return
	}
	for _, c := range challenges {
		if c.DifficultyLevel == chunk.Zen && len(c.CodeContent) > chunk.ZenCharacterCeiling {
			logger.Warn("zen challenge exceeds character ceiling",
				zap.String("path", c.SourceFilePath),
				zap.Int("chars", len(c.CodeContent)),
				zap.Int("ceiling", chunk.ZenCharacterCeiling),
			)
		}
	}
}

func finalize(challenges []challenge.Challenge, opts Options) *challenge.StageRepository {
	opts.Progress.SetStep(StepFinalizing)
	repo := challenge.NewStageRepository()
	repo.BuildDifficultyIndices(challenges)
	opts.Progress.SetFileCounts(StepFinalizing, len(challenges), len(challenges), "")
	return repo
}

func persistChallenges(store *history.Store, challenges []challenge.Challenge) {
	for _, c := range challenges {
		ranges := make([][2]int, len(c.CommentRanges))
		for i, r := range c.CommentRanges {
			ranges[i] = [2]int{r.Start, r.End}
		}
		encoded, err := history.EncodeCommentRanges(ranges)
		if err != nil {
			continue
		}
		_ = store.EnsureChallenge(c.ID, c.SourceFilePath, c.StartLine, c.EndLine, c.Language, c.CodeContent, encoded, c.DifficultyLevel.String())
	}
}
