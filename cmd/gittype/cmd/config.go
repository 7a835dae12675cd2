package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhappychoice/gittype/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit gittype's configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("difficulty: %s\n", loadedCfg.Difficulty)
		fmt.Printf("max_stages: %d\n", loadedCfg.MaxStages)
		fmt.Printf("max_skips: %d\n", loadedCfg.MaxSkips)
		fmt.Printf("session_timeout_secs: %d\n", loadedCfg.SessionTimeoutSecs)
		fmt.Printf("languages: %v\n", loadedCfg.Languages)
		fmt.Printf("theme_path: %s\n", loadedCfg.ThemePath)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
