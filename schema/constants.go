package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Provider represents the LLM provider used for extraction.
	Provider string

	// DatabaseBackend represents the database backend for caching and run tracking.
	DatabaseBackend string
)

// NotApplicable is the sentinel cell value for "no prediction / no truth".
// Pairs whose solution set reduces to this sentinel are excluded from scoring.
const NotApplicable = "Not Applicable"

// DefaultGroupKey is the column that partitions rows into datasets.
const DefaultGroupKey = "PXD"

// RawFileColumn identifies the raw data file a row describes.
const RawFileColumn = "Raw Data File"

// DefaultThreshold is the inclusive similarity threshold for clustering.
const DefaultThreshold = 0.80

// ReservedColumns are template columns that identify rows rather than carry
// scored metadata values.
var ReservedColumns = []string{"ID", "PXD", "Raw Data File", "Usage"}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All extraction providers supported.
const (
	NoneProvider   Provider = "none" // placeholder extraction, default
	OpenAIProvider Provider = "openai"
	ClaudeProvider Provider = "claude"
	GeminiProvider Provider = "gemini"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidProviders lists all valid extraction providers.
var ValidProviders = map[Provider]struct{}{
	NoneProvider:   {},
	OpenAIProvider: {},
	ClaudeProvider: {},
	GeminiProvider: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ScoredColumns filters reserved identity columns out of a template header,
// leaving the metadata columns that participate in scoring.
func ScoredColumns(columns []string) []string {
	reserved := make(map[string]struct{}, len(ReservedColumns))
	for _, r := range ReservedColumns {
		reserved[r] = struct{}{}
	}

	scored := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := reserved[c]; ok {
			continue
		}
		scored = append(scored, c)
	}
	return scored
}
