package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/sdrfbench/internal/parquet"
	"github.com/huangsam/sdrfbench/schema"
)

// ExecuteRunsExport performs the actual export of scoring run data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get runs status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)

	// Retrieve all scoring runs
	runs, err := store.ExportRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scoring runs: %w", err)
	}

	// Retrieve the stored pair scores for every run
	var pairs []schema.RunPairRecord
	for _, run := range runs {
		runPairs, err := store.ExportPairs(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve pair scores for run %d: %w", run.RunID, err)
		}
		pairs = append(pairs, runPairs...)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetPairs := parquet.ConvertPairRecords(pairs)

	// Write scoring runs to Parquet
	runsFile := outputFile + ".scoring_runs.parquet"
	if err := parquet.WriteScoringRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write scoring runs: %w", err)
	}
	fmt.Printf("Exported %d scoring runs to: %s\n", len(parquetRuns), runsFile)

	// Write pair scores to Parquet
	pairsFile := outputFile + ".pair_scores.parquet"
	if err := parquet.WritePairScoresParquet(parquetPairs, pairsFile); err != nil {
		return fmt.Errorf("failed to write pair scores: %w", err)
	}
	fmt.Printf("Exported %d pair score records to: %s\n", len(parquetPairs), pairsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
