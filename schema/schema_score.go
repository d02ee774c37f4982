package schema

import "time"

// PairScore is the scoring outcome for one (group, column) pair.
// Excluded pairs are kept for diagnostics but contribute nothing to the mean.
type PairScore struct {
	Group            string   `json:"group"`
	Column           string   `json:"column"`
	SolutionValues   []string `json:"solution_values"`
	SubmissionValues []string `json:"submission_values"`
	Clusters         int      `json:"clusters"`
	TruePositives    int      `json:"true_positives"`
	Precision        float64  `json:"precision"`
	Recall           float64  `json:"recall"`
	F1               float64  `json:"f1"`
	Excluded         bool     `json:"excluded"`
}

// ScoreReport is the full output of a scoring run: the final mean F1 plus
// the per-pair breakdown it was averaged from.
type ScoreReport struct {
	GroupKey      string      `json:"group_key"`
	Threshold     float64     `json:"threshold"`
	Columns       []string    `json:"columns"`
	Groups        int         `json:"groups"`
	ScoredPairs   int         `json:"scored_pairs"`
	ExcludedPairs int         `json:"excluded_pairs"`
	Score         float64     `json:"score"`
	Pairs         []PairScore `json:"pairs"`
}

// CheckIssue is one structural mismatch between a submission and the template.
type CheckIssue struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// CheckResult is the outcome of validating a submission against the template.
type CheckResult struct {
	Columns int          `json:"columns"`
	Rows    int          `json:"rows"`
	Issues  []CheckIssue `json:"issues"`
}

// Passed reports whether the submission is structurally valid.
func (r *CheckResult) Passed() bool {
	return len(r.Issues) == 0
}

// CacheStatus summarizes the extraction cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunsStatus summarizes the scoring-run store.
type RunsStatus struct {
	Backend   string    `json:"backend"`
	Connected bool      `json:"connected"`
	TotalRuns int       `json:"total_runs"`
	LastRun   time.Time `json:"last_run"`
	LastScore float64   `json:"last_score"`
}

// RunRecord is one tracked scoring run, as exported from the run store.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Score         *float64   `json:"score"`
	ScoredPairs   int        `json:"scored_pairs"`
	ExcludedPairs int        `json:"excluded_pairs"`
	ConfigParams  string     `json:"config_params"`
}

// RunPairRecord is one stored per-pair score, as exported from the run store.
type RunPairRecord struct {
	RunID     int64   `json:"run_id"`
	Group     string  `json:"group"`
	Column    string  `json:"column"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Excluded  bool    `json:"excluded"`
}
