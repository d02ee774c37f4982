// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/sdrfbench/schema"
)

// DocumentStore provides the publication text for a dataset accession.
// This allows the prediction pipeline to be tested without fixture files.
type DocumentStore interface {
	// Load returns the parsed publication document for the given accession.
	Load(pxd string) (*schema.Document, error)

	// List returns the accessions the store has documents for, sorted.
	List() ([]string, error)
}

// GroupExtractor produces predicted annotations for one dataset accession.
// Implementations may call an LLM, consult a cache, or emit placeholders.
type GroupExtractor interface {
	// ExtractGroup maps each raw data file of the accession to predicted
	// column values, given the manuscript text.
	ExtractGroup(ctx context.Context, pxd, manuscript string, rawFiles []string, columns []string) (schema.Extraction, error)
}

// CacheManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetCacheStore() CacheStore
	GetRunStore() RunStore
}

// CacheStore defines the interface for extraction response caching.
type CacheStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunStore defines the interface for tracking scoring runs and storing
// per-pair results.
type RunStore interface {
	// BeginRun creates a new scoring run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data
	EndRun(runID int64, endTime time.Time, score float64, scoredPairs, excludedPairs int) error

	// RecordPair stores the outcome of one (group, column) pair
	RecordPair(runID int64, pair schema.PairScore) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunsStatus, error)

	// ExportRuns returns all tracked runs, newest first
	ExportRuns() ([]schema.RunRecord, error)

	// ExportPairs returns all stored pair scores for a run
	ExportPairs(runID int64) ([]schema.RunPairRecord, error)

	// Close closes the underlying database handle
	Close() error
}
