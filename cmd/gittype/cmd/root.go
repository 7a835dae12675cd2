// Package cmd implements gittype's cobra command tree, grounded on the
// teacher's cmd/co/cmd tree shape (one file per subcommand, a shared
// rootCmd, persistent --config/--json flags) and on
// theRebelliousNerd-codenerd/cmd/nerd/main.go's PersistentPreRunE
// zap-logger-construction pattern.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unhappychoice/gittype/internal/config"
	"github.com/unhappychoice/gittype/internal/ui"
)

var (
	cfgFile   string
	jsonOut   bool
	verbose   bool
	noColor   bool
	quiet     bool
	logger    *zap.Logger
	loadedCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gittype",
	Short: "Practice typing by retyping real code from your own repositories",
	Long: `gittype turns a local or cloned git repository into typing practice:
it walks the tree, extracts function- and block-sized code chunks with
tree-sitter, and drives a typing session scored on speed and accuracy.

Running 'gittype' without a subcommand launches an interactive repository
picker followed by a typing session (the current directory is played when
no repository is recorded yet).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ui.InitColors(noColor)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		loadedCfg = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

// Execute runs the command tree; main.go's only caller.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(trendingCmd)
}

func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
