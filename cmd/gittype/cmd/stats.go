package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhappychoice/gittype/internal/history"
	"github.com/unhappychoice/gittype/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate typing stats across every recorded session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(loadedCfg.HistoryDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		totals, err := store.AggregateTotals()
		if err != nil {
			return err
		}
		if totals.SessionsPlayed == 0 {
			fmt.Println("no sessions recorded yet")
			return nil
		}

		ui.Header("Total Stats")
		fmt.Printf("%s %d\n", ui.Label("sessions played:"), totals.SessionsPlayed)
		fmt.Printf("%s %.1f\n", ui.Label("best wpm:"), totals.BestWPM)
		fmt.Printf("%s %.1f\n", ui.Label("worst wpm:"), totals.WorstWPM)
		fmt.Printf("%s %.1f%%\n", ui.Label("average accuracy:"), totals.AverageAccuracy)
		fmt.Printf("%s %.0f\n", ui.Label("total score:"), totals.TotalScore)
		return nil
	},
}
