package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/unhappychoice/gittype/internal/cache"
	"github.com/unhappychoice/gittype/internal/challenge"
	"github.com/unhappychoice/gittype/internal/chunk"
	"github.com/unhappychoice/gittype/internal/config"
	"github.com/unhappychoice/gittype/internal/gitrepo"
	"github.com/unhappychoice/gittype/internal/history"
	"github.com/unhappychoice/gittype/internal/pipeline"
	"github.com/unhappychoice/gittype/internal/scoring"
	"github.com/unhappychoice/gittype/internal/session"
	"github.com/unhappychoice/gittype/internal/tracker"
	"github.com/unhappychoice/gittype/internal/tui"
	"github.com/unhappychoice/gittype/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [path-or-url]",
	Short: "Load a repository and start a typing session",
	Long: `Loads a local path or clones a remote repository, extracts code
chunks, and drives an interactive typing session over the generated
challenges. With no argument, opens a picker over previously played
repositories, or plays the current directory when none is recorded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := loadedCfg

	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	src, err := resolvePlaySource(args, store)
	if err != nil {
		return err
	}

	progressCfg := ui.NewProgressConfig(quiet, noColor)
	opts := pipeline.DefaultOptions()
	opts.Cache = cache.New(cfg.ChallengeCacheDir())
	opts.History = store
	opts.Progress = newCLIProgressReporter(progressCfg)
	opts.Logger = logger

	result, err := pipeline.Run(context.Background(), src, opts)
	if err != nil {
		return err
	}

	difficulty, err := chunk.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	sessionCfg := session.Config{
		MaxStages:      cfg.MaxStages,
		MaxSkips:       cfg.MaxSkips,
		Difficulty:     difficulty,
		SessionTimeout: time.Duration(cfg.SessionTimeoutSecs) * time.Second,
	}

	theme, err := config.LoadTheme(cfg.ThemePath)
	if err != nil {
		return err
	}

	mgr := session.New(sessionCfg, result.Repo)
	mgr.Start(time.Now().UnixNano())

	startedAt := time.Now()
	var played []challenge.Challenge

playLoop:
	for {
		c, ok := mgr.CurrentChallenge()
		if !ok {
			break
		}

		stageResult, err := tui.RunStage(c, theme)
		if err != nil {
			return err
		}
		if stageResult.Quit {
			break playLoop
		}

		tr := toTrackerStageResult(c, stageResult)
		played = append(played, c)

		switch mgr.Advance(tr) {
		case session.StateComplete, session.StateFailed:
			break playLoop
		}
	}

	stageResults := mgr.SessionTracker().StageResults()
	if len(stageResults) == 0 {
		ui.Info("no stages played")
		return nil
	}

	sessionScore := scoring.CalculateSession(stageResults)
	printSessionSummary(sessionScore, stageResults)

	if err := persistSession(store, result, played, stageResults, sessionScore, startedAt, difficulty); err != nil {
		ui.Warning(fmt.Sprintf("failed to record session history: %v", err))
	}

	return nil
}

// resolvePlaySource turns the command's positional argument (or, absent
// one, an interactive repository picker) into a pipeline.Source.
func resolvePlaySource(args []string, store *history.Store) (pipeline.Source, error) {
	if len(args) == 1 {
		spec := args[0]
		if info, err := os.Stat(spec); err == nil && info.IsDir() {
			return pipeline.Source{LocalPath: spec}, nil
		}
		return pipeline.Source{RemoteSpec: spec}, nil
	}

	repos, err := store.ListRepositories()
	if err != nil {
		return pipeline.Source{}, err
	}
	if len(repos) == 0 {
		return pipeline.Source{LocalPath: "."}, nil
	}

	picked, err := tui.RunRepoSelect(repos)
	if err != nil {
		return pipeline.Source{}, err
	}
	if picked.Abort {
		return pipeline.Source{}, fmt.Errorf("no repository selected")
	}
	return pipeline.Source{RemoteSpec: picked.Selected.RemoteURL}, nil
}

// toTrackerStageResult converts the TUI's scoring.StageScore plus the
// typing core's raw tracker snapshot into the SessionTracker's append-only
// record shape.
func toTrackerStageResult(c challenge.Challenge, sr tui.StageResult) tracker.StageResult {
	rank := sr.Score.Rank
	return tracker.StageResult{
		CPM:             sr.Score.CPM,
		WPM:             sr.Score.WPM,
		Accuracy:        sr.Score.Accuracy,
		Keystrokes:      sr.Keystrokes,
		Mistakes:        sr.Score.Mistakes,
		CompletionTime:  sr.CompletionTime,
		ChallengeScore:  sr.Score.Score,
		RankName:        rank.Name,
		TierName:        rank.Tier.String(),
		TierPosition:    rank.TierPosition,
		TierTotal:       rank.TierTotal,
		OverallPosition: rank.OverallPosition(),
		OverallTotal:    rank.OverallTotal,
		WasSkipped:      sr.Skipped,
		WasFailed:       sr.Failed,
		ChallengePath:   c.SourceFilePath,
	}
}

func printSessionSummary(s scoring.SessionScore, stages []tracker.StageResult) {
	ui.Header("Session Summary")
	fmt.Printf("%s %d\n", ui.Label("stages played:"), len(stages))
	fmt.Printf("%s %.1f\n", ui.Label("cpm:"), s.OverallCPM)
	fmt.Printf("%s %.1f\n", ui.Label("wpm:"), s.OverallWPM)
	fmt.Printf("%s %.1f%%\n", ui.Label("accuracy:"), s.OverallAccuracy)
	fmt.Printf("%s %.0f\n", ui.Label("score:"), s.SessionScore)
	if s.SessionSuccessful {
		ui.Success("session complete")
	} else {
		ui.Warning("session ended early")
	}
}

// persistSession records the completed session under its repository,
// upserting the repository row first so a local path gets a stable
// identity across replays.
func persistSession(store *history.Store, result pipeline.Result, played []challenge.Challenge, stages []tracker.StageResult, sessionScore scoring.SessionScore, startedAt time.Time, difficulty chunk.Difficulty) error {
	userName, repoName := repositoryIdentity(result)

	repoID, err := store.UpsertRepository(userName, repoName, result.RemoteURL)
	if err != nil {
		return err
	}

	rec := history.SessionRecord{
		RepositoryID:    repoID,
		StartedAt:       startedAt,
		CompletedAt:     time.Now(),
		Branch:          result.Branch,
		CommitHash:      result.CommitHash,
		IsDirty:         result.IsDirty,
		GameMode:        "normal",
		DifficultyLevel: difficulty.String(),
		MaxStages:       len(stages),
		StagesCompleted: countCompleted(stages),
		StagesAttempted: len(stages),
		StagesSkipped:   countSkipped(stages),
		Score:           sessionScore.SessionScore,
		RankName:        rankNameFor(sessionScore),
		TierName:        tierNameFor(sessionScore),
		WPM:             sessionScore.OverallWPM,
		CPM:             sessionScore.OverallCPM,
		Accuracy:        sessionScore.OverallAccuracy,
	}
	for i, st := range stages {
		rec.Keystrokes += st.Keystrokes
		rec.Mistakes += st.Mistakes
		rec.Duration += st.CompletionTime

		lang := ""
		if i < len(played) {
			lang = played[i].Language
		}
		stageRec := history.StageRecord{
			StageNumber:     i,
			Keystrokes:      st.Keystrokes,
			Mistakes:        st.Mistakes,
			Duration:        st.CompletionTime,
			WPM:             st.WPM,
			CPM:             st.CPM,
			Accuracy:        st.Accuracy,
			Score:           st.ChallengeScore,
			Language:        lang,
			DifficultyLevel: difficulty.String(),
			WasSkipped:      st.WasSkipped,
			WasFailed:       st.WasFailed,
		}
		if i < len(played) {
			stageRec.ChallengeID = played[i].ID
		}
		rec.Stages = append(rec.Stages, stageRec)
	}

	_, err = store.RecordSession(rec)
	return err
}

func countCompleted(stages []tracker.StageResult) int {
	n := 0
	for _, s := range stages {
		if !s.WasSkipped && !s.WasFailed {
			n++
		}
	}
	return n
}

func countSkipped(stages []tracker.StageResult) int {
	n := 0
	for _, s := range stages {
		if s.WasSkipped {
			n++
		}
	}
	return n
}

func rankNameFor(s scoring.SessionScore) string {
	return scoring.ForScore(s.SessionScore).Name
}

func tierNameFor(s scoring.SessionScore) string {
	return scoring.ForScore(s.SessionScore).Tier.String()
}

// repositoryIdentity derives the repositories.user_name/repository_name
// pair gittype's history schema keys on, falling back to the local
// directory name for a repository with no parseable remote.
func repositoryIdentity(result pipeline.Result) (userName, repoName string) {
	if result.RemoteURL != "" {
		if remote, err := gitrepo.ParseRemoteSpec(result.RemoteURL); err == nil {
			return remote.Owner, remote.Name
		}
	}
	return "local", filepath.Base(result.RootPath)
}
