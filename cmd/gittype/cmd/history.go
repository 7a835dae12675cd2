package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gittypehistory "github.com/unhappychoice/gittype/internal/history"
	"github.com/unhappychoice/gittype/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := gittypehistory.Open(loadedCfg.HistoryDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := store.RecentSessions(historyLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("no sessions recorded yet")
			return nil
		}

		ui.Header("Recent Sessions")
		for _, s := range sessions {
			fmt.Printf("%s  %s/%s  %s  wpm=%.1f acc=%.1f%% score=%.0f rank=%s\n",
				s.StartedAt.Format("2006-01-02 15:04"), s.UserName, s.RepositoryName, s.DifficultyLevel,
				s.WPM, s.Accuracy, s.Score, s.RankName)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of sessions to list")
}
