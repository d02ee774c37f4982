package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
)

// predictSummary is the JSON render model for a prediction run.
type predictSummary struct {
	OutputPath string `json:"output_path"`
	Rows       int    `json:"rows"`
	Columns    int    `json:"columns"`
	Groups     int    `json:"groups"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	DurationMs int64  `json:"duration_ms"`
}

// PrintPredictSummary reports where the generated submission was written and
// what went into it.
func PrintPredictSummary(table *schema.Table, outPath string, cfg *contract.Config, duration time.Duration) error {
	groups, _ := table.GroupBy(cfg.GroupKey)
	summary := predictSummary{
		OutputPath: outPath,
		Rows:       len(table.Rows),
		Columns:    len(table.Columns),
		Groups:     len(groups),
		Provider:   string(cfg.Provider),
		Model:      cfg.Model,
		DurationMs: duration.Milliseconds(),
	}

	// The output file already holds the submission table, so the summary
	// always goes to stdout
	if cfg.Output == schema.JSONOut {
		return writeJSON(os.Stdout, summary)
	}

	fmt.Printf("Wrote submission with %d rows across %d groups to: %s\n",
		summary.Rows, summary.Groups, summary.OutputPath)
	if cfg.Provider == schema.NoneProvider {
		fmt.Println("Provider: none (placeholder predictions)")
	} else {
		fmt.Printf("Provider: %s (%s). Cache backend: %s\n", cfg.Provider, cfg.Model, cfg.CacheBackend)
	}
	fmt.Printf("Prediction completed in %v with %d workers\n", duration, cfg.Workers)
	return nil
}
