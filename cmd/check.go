package cmd

import (
	"github.com/huangsam/sdrfbench/core"
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd validates submission structure for CI gating.
var checkCmd = &cobra.Command{
	Use:   "check [data-path]",
	Short: "Validate the structure of a submission against the template.",
	Long: `Check that a submission is structurally compatible with the template.

Verifies:
- Column names and order match the template exactly
- Row count matches the template
- ID, PXD, Raw Data File and Usage cells are identical per row
- No scored cell is left empty (use "Not Applicable" instead)

The command exits non-zero when any check fails, making it suitable as a
CI/CD gate before scoring.

Examples:
  # Validate the default submission.csv
  sdrfbench check ./data

  # Validate a specific file with machine-readable output
  sdrfbench check ./data --submission run42.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Submission check failed", err)
		}
	},
}
