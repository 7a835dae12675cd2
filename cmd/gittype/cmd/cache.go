package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gittypecache "github.com/unhappychoice/gittype/internal/cache"
	"github.com/unhappychoice/gittype/internal/tui"
	"github.com/unhappychoice/gittype/internal/ui"
)

var cacheForce bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk challenge cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached challenge set",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := gittypecache.New(loadedCfg.ChallengeCacheDir())

		if !cacheForce {
			entries, totalBytes, err := store.Stat()
			if err != nil {
				return err
			}
			result, err := tui.RunCacheClearPrompt(tui.CacheClearPrompt{
				Dir:        loadedCfg.ChallengeCacheDir(),
				EntryCount: entries,
				TotalBytes: totalBytes,
			})
			if err != nil {
				return err
			}
			if !result.Confirmed {
				ui.Info("cache clear aborted")
				return nil
			}
		}

		if err := store.Clear(); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("cache cleared: %s", loadedCfg.ChallengeCacheDir()))
		return nil
	},
}

func init() {
	cacheClearCmd.Flags().BoolVarP(&cacheForce, "force", "f", false, "skip the confirmation prompt")
	cacheCmd.AddCommand(cacheClearCmd)
}
