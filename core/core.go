// Package core has core logic for scoring, checking and submission building.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/extract"
	"github.com/huangsam/sdrfbench/internal/llm"
	"github.com/huangsam/sdrfbench/internal/outwriter"
	"github.com/huangsam/sdrfbench/internal/pubtext"
	"github.com/huangsam/sdrfbench/internal/tabfile"
	"github.com/huangsam/sdrfbench/schema"
)

// ExecutorFunc defines the function signature for executing different benchmark modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteScore scores a submission against the solution table and prints the
// report. It serves as the main entry point for the 'score' mode.
func ExecuteScore(ctx context.Context, cfg *contract.Config, manager contract.CacheManager) error {
	start := time.Now()

	solution, err := tabfile.Load(cfg.SolutionPath)
	if err != nil {
		return fmt.Errorf("loading solution: %w", err)
	}
	submission, err := tabfile.Load(cfg.SubmissionPath)
	if err != nil {
		return fmt.Errorf("loading submission: %w", err)
	}

	report, err := ScoreTables(solution, submission, ScoreOptions{
		GroupKey:  cfg.GroupKey,
		Columns:   cfg.Columns,
		Threshold: cfg.Threshold,
	})
	if err != nil {
		return err
	}

	recordRun(manager, start, cfg, report)
	duration := time.Since(start)
	return outwriter.PrintScoreReport(report, cfg, duration)
}

// recordRun persists the run outcome when a run store is configured.
// Tracking failures degrade to warnings so scoring output is never lost.
func recordRun(manager contract.CacheManager, start time.Time, cfg *contract.Config, report *schema.ScoreReport) {
	if manager == nil {
		return
	}
	store := manager.GetRunStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, map[string]any{
		"group_key": report.GroupKey,
		"threshold": report.Threshold,
		"solution":  cfg.SolutionPath,
		"columns":   len(report.Columns),
	})
	if err != nil {
		contract.LogWarn("beginning run tracking", err)
		return
	}
	for _, pair := range report.Pairs {
		if err := store.RecordPair(runID, pair); err != nil {
			contract.LogWarn("recording pair score", err)
		}
	}
	if err := store.EndRun(runID, time.Now(), report.Score, report.ScoredPairs, report.ExcludedPairs); err != nil {
		contract.LogWarn("ending run tracking", err)
	}
}

// ExecutePredict builds a submission table from the template and the
// publication text, then writes it as CSV. It serves as the main entry point
// for the 'predict' mode.
func ExecutePredict(ctx context.Context, cfg *contract.Config, manager contract.CacheManager) error {
	start := time.Now()

	template, err := tabfile.Load(cfg.TemplatePath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	docs := pubtext.NewStore(cfg.PubTextDir)

	extractor, err := buildExtractor(ctx, cfg, manager)
	if err != nil {
		return err
	}

	submission, err := BuildSubmission(ctx, template, docs, extractor, cfg.Workers)
	if err != nil {
		return err
	}

	outPath := cfg.OutputFile
	if outPath == "" {
		outPath = cfg.SubmissionPath
	}
	if err := tabfile.Write(outPath, submission); err != nil {
		return fmt.Errorf("writing submission: %w", err)
	}
	duration := time.Since(start)
	return outwriter.PrintPredictSummary(submission, outPath, cfg, duration)
}

// buildExtractor assembles the group extractor for the configured provider.
// The "none" provider yields sentinel-only submissions, which is useful for
// dry runs and template validation.
func buildExtractor(ctx context.Context, cfg *contract.Config, manager contract.CacheManager) (contract.GroupExtractor, error) {
	if cfg.Provider == schema.NoneProvider {
		return extract.NewPlaceholder(), nil
	}

	promptTemplate, err := os.ReadFile(cfg.PromptPath)
	if err != nil {
		return nil, fmt.Errorf("loading prompt: %w", err)
	}
	client, err := llm.NewClient(ctx, llm.Config{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	var cache contract.CacheStore
	if manager != nil {
		cache = manager.GetCacheStore()
	}
	return extract.NewExtractor(client, cache, string(promptTemplate), string(cfg.Provider), cfg.Model), nil
}

// ExecuteCheck validates a submission against the template structurally.
// It serves as the main entry point for the 'check' mode.
func ExecuteCheck(ctx context.Context, cfg *contract.Config) error {
	template, err := tabfile.Load(cfg.TemplatePath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	submission, err := tabfile.Load(cfg.SubmissionPath)
	if err != nil {
		return fmt.Errorf("loading submission: %w", err)
	}

	result := CheckSubmission(template, submission)
	if err := outwriter.PrintCheckResult(result, cfg); err != nil {
		return err
	}
	if !result.Passed() {
		return fmt.Errorf("submission failed %d structural check(s)", len(result.Issues))
	}
	return nil
}
