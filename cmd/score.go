package cmd

import (
	"github.com/huangsam/sdrfbench/core"
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a submission against the solution table.
var scoreCmd = &cobra.Command{
	Use:   "score [data-path]",
	Short: "Score a submission against the solution table.",
	Long: `Score an SDRF submission with the clustered set F1 metric.

For every dataset accession and scored column, the distinct annotation values
of solution and submission are clustered by string similarity; each cluster is
one entity. Precision and recall count clusters with members from both sides,
and the final score is the mean F1 over all scorable (group, column) pairs.

Pairs whose solution values reduce to "Not Applicable" are excluded from the
mean. Datasets that only appear in the submission are ignored.

Examples:
  # Score the default submission.csv in a data directory
  sdrfbench score ./data

  # Score a specific file with a stricter clustering threshold
  sdrfbench score ./data --submission run42.csv --threshold 0.9

  # Restrict scoring to selected columns and export the breakdown
  sdrfbench score ./data --columns "organism,instrument" --output csv --output-file pairs.csv

  # Track runs in SQLite for later export
  sdrfbench score ./data --runs-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot score submission", err)
		}
	},
}
