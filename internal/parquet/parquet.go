// Package parquet provides data structures and functions for exporting
// scoring run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/sdrfbench/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun represents a single benchmark scoring run with metadata.
// This struct maps to the sdrf_runs database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// Score is the final mean F1 for the run (nullable until completion)
	Score *float64 `parquet:"score,optional,snappy"`

	// ScoredPairs is the number of (group, column) pairs that entered the mean
	ScoredPairs int32 `parquet:"scored_pairs,snappy"`

	// ExcludedPairs is the number of pairs excluded from the mean
	ExcludedPairs int32 `parquet:"excluded_pairs,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// PairScore represents the scoring outcome for one (group, column) pair.
// This struct maps to the sdrf_pair_scores database table.
type PairScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Group is the dataset accession the pair belongs to
	Group string `parquet:"group_key,snappy"`

	// Column is the scored template column
	Column string `parquet:"column_name,snappy"`

	// Precision is the fraction of predicted entities that matched
	Precision float64 `parquet:"precision_score,snappy"`

	// Recall is the fraction of true entities that were recovered
	Recall float64 `parquet:"recall_score,snappy"`

	// F1 is the harmonic mean of precision and recall
	F1 float64 `parquet:"f1_score,snappy"`

	// Excluded marks pairs that carried no weight in the final mean
	Excluded bool `parquet:"excluded,snappy"`
}

// ConvertRunRecords converts run store records into Parquet rows.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	out := make([]ScoringRun, 0, len(records))
	for _, r := range records {
		params := r.ConfigParams
		run := ScoringRun{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Score:         r.Score,
			ScoredPairs:   int32(r.ScoredPairs),
			ExcludedPairs: int32(r.ExcludedPairs),
		}
		if params != "" {
			run.ConfigParams = &params
		}
		out = append(out, run)
	}
	return out
}

// ConvertPairRecords converts run store pair records into Parquet rows.
func ConvertPairRecords(records []schema.RunPairRecord) []PairScore {
	out := make([]PairScore, 0, len(records))
	for _, r := range records {
		out = append(out, PairScore{
			RunID:     r.RunID,
			Group:     r.Group,
			Column:    r.Column,
			Precision: r.Precision,
			Recall:    r.Recall,
			F1:        r.F1,
			Excluded:  r.Excluded,
		})
	}
	return out
}

// WriteScoringRunsParquet writes a slice of ScoringRun structs to a Parquet file.
func WriteScoringRunsParquet(data []ScoringRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WritePairScoresParquet writes a slice of PairScore structs to a Parquet file.
func WritePairScoresParquet(data []PairScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PairScore struct tags
	writer := parquet.NewGenericWriter[PairScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
