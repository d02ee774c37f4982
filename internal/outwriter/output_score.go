package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/parquet"
	"github.com/huangsam/sdrfbench/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScoreReport outputs the scoring results, dispatching based on the output format configured.
func PrintScoreReport(report *schema.ScoreReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScoreJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScoreCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoreParquetResults(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// displayPairs returns the scored pairs in display order, weakest first.
// Excluded pairs are left out since they carry no weight in the mean.
func displayPairs(report *schema.ScoreReport) []schema.PairScore {
	pairs := make([]schema.PairScore, 0, len(report.Pairs))
	for _, p := range report.Pairs {
		if p.Excluded {
			continue
		}
		pairs = append(pairs, p)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].F1 < pairs[j].F1
	})
	return pairs
}

// writeScoreJSONResults handles opening the file and calling the JSON writer.
func writeScoreJSONResults(report *schema.ScoreReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeScoreCSVResults handles opening the file and calling the CSV writer.
func writeScoreCSVResults(report *schema.ScoreReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForPairs(csvWriter, report, fmtFloat)
	}, "Wrote CSV")
}

// writeScoreParquetResults writes the per-pair breakdown as a Parquet file.
func writeScoreParquetResults(report *schema.ScoreReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}

	pairs := make([]parquet.PairScore, 0, len(report.Pairs))
	for _, p := range report.Pairs {
		pairs = append(pairs, parquet.PairScore{
			Group:     p.Group,
			Column:    p.Column,
			Precision: p.Precision,
			Recall:    p.Recall,
			F1:        p.F1,
			Excluded:  p.Excluded,
		})
	}
	if err := parquet.WritePairScoresParquet(pairs, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d pair scores to: %s\n", len(pairs), cfg.OutputFile)
	return nil
}

// writeScoreTable generates and writes the human-readable table.
func writeScoreTable(report *schema.ScoreReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Group", "Column", "Precision", "Recall", "F1", "Label"}
	if cfg.Detail {
		headers = append(headers, "Solution", "Submission", "Clusters", "TP")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	pairs := displayPairs(report)
	shown := len(pairs)
	if cfg.ResultLimit > 0 && shown > cfg.ResultLimit {
		shown = cfg.ResultLimit
	}
	maxValueWidth := getMaxTableValueWidth(cfg)

	var data [][]string
	for i, p := range pairs[:shown] {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			p.Group,
			p.Column,
			fmtFloat(p.Precision),
			fmtFloat(p.Recall),
			fmtFloat(p.F1),
			getLabel(p.F1, cfg),
		}
		if cfg.Detail {
			row = append(
				row,
				contract.JoinValues(p.SolutionValues, maxValueWidth),
				contract.JoinValues(p.SubmissionValues, maxValueWidth),
				strconv.Itoa(p.Clusters),
				strconv.Itoa(p.TruePositives),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 5. Print the summary with the final score
	if _, err := fmt.Fprintf(writer, "Showing %d of %d scored pairs (%d excluded) across %d groups\n",
		shown, report.ScoredPairs, report.ExcludedPairs, report.Groups); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Final score: %s [%s] (threshold %.2f)\n",
		fmtFloat(report.Score), getLabel(report.Score, cfg), report.Threshold); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. Runs backend: %s\n", duration, cfg.RunsBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForPairs writes the per-pair breakdown in CSV format.
func writeCSVResultsForPairs(w *csv.Writer, report *schema.ScoreReport, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"group",
		"column",
		"precision",
		"recall",
		"f1",
		"label",
		"excluded",
		"solution_values",
		"submission_values",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range report.Pairs {
		rec := []string{
			p.Group,
			p.Column,
			fmtFloat(p.Precision),
			fmtFloat(p.Recall),
			fmtFloat(p.F1),
			contract.GetPlainLabel(p.F1),
			strconv.FormatBool(p.Excluded),
			strings.Join(p.SolutionValues, "|"),
			strings.Join(p.SubmissionValues, "|"),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// getLabel picks the colored or plain quality label per config.
func getLabel(f1 float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(f1)
	}
	return contract.GetPlainLabel(f1)
}
