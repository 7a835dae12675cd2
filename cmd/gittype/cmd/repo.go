package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhappychoice/gittype/internal/history"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage repositories gittype has played before",
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously played repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(loadedCfg.HistoryDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		repos, err := store.ListRepositories()
		if err != nil {
			return err
		}
		if len(repos) == 0 {
			fmt.Println("no repositories recorded yet")
			return nil
		}
		for _, r := range repos {
			fmt.Printf("%s/%s\t%s\n", r.UserName, r.RepositoryName, r.RemoteURL)
		}
		return nil
	},
}

var repoPlayCmd = &cobra.Command{
	Use:   "play <owner>/<name>",
	Short: "Replay a previously recorded repository by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(loadedCfg.HistoryDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		repos, err := store.ListRepositories()
		if err != nil {
			return err
		}
		for _, r := range repos {
			if r.UserName+"/"+r.RepositoryName == args[0] {
				return runPlay(cmd, []string{r.RemoteURL})
			}
		}
		return fmt.Errorf("no recorded repository matches %q", args[0])
	},
}

func init() {
	repoCmd.AddCommand(repoListCmd)
	repoCmd.AddCommand(repoPlayCmd)
}
