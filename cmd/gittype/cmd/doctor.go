package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unhappychoice/gittype/internal/doctor"
	"github.com/unhappychoice/gittype/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that gittype's environment is usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := doctor.Run(loadedCfg)

		for _, c := range report.Checks {
			line := fmt.Sprintf("%s: %s", c.Name, c.Message)
			switch c.Status {
			case doctor.StatusOK:
				ui.Success(line)
			case doctor.StatusWarning:
				ui.Warning(line)
			case doctor.StatusError:
				ui.Error(line)
			}
		}

		if !report.Healthy() {
			return fmt.Errorf("one or more doctor checks failed")
		}
		return nil
	},
}
