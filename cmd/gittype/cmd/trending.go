package cmd

import (
	"github.com/spf13/cobra"

	gittypeerrors "github.com/unhappychoice/gittype/internal/errors"
)

// trendingCmd stubs the original's GitHub-trending-repository browser,
// which needs a live network call this offline-first rewrite doesn't make
// (see SPEC_FULL.md Non-goals).
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Browse trending repositories (not available offline)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gittypeerrors.New(gittypeerrors.ValidationError, "trending is not available offline")
	},
}
