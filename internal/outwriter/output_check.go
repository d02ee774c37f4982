package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCheckResult outputs the structural check results, dispatching based on
// the output format configured.
func PrintCheckResult(result *schema.CheckResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForIssues(csvWriter, result)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckTable(result, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeCheckTable generates and writes the human-readable check summary.
func writeCheckTable(result *schema.CheckResult, cfg *contract.Config, writer io.Writer) error {
	if result.Passed() {
		_, err := fmt.Fprintf(writer, "Submission passed all structural checks (%d columns, %d rows)\n",
			result.Columns, result.Rows)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Kind", "Detail"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, issue := range result.Issues {
		data = append(data, []string{issue.Kind, issue.Detail})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Found %d structural issue(s) across %d columns and %d rows\n",
		len(result.Issues), result.Columns, result.Rows)
	return err
}

// writeCSVResultsForIssues writes the check issues in CSV format.
func writeCSVResultsForIssues(w *csv.Writer, result *schema.CheckResult) error {
	header := []string{"kind", "detail"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, issue := range result.Issues {
		if err := w.Write([]string{issue.Kind, issue.Detail}); err != nil {
			return err
		}
	}
	return nil
}
