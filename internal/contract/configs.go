package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/huangsam/sdrfbench/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 4
	MaxManuscriptChars = 120000
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Per-provider default models.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultClaudeModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Config holds the runtime configuration for a benchmark invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath       string // Root directory holding template, solution and publication text
	TemplatePath   string
	SolutionPath   string
	SubmissionPath string
	PubTextDir     string
	PromptPath     string

	OutputFile string
	Output     schema.OutputMode

	GroupKey  string
	Columns   []string
	Threshold float64

	Precision   int
	ResultLimit int
	Workers     int
	Detail      bool
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	Provider schema.Provider
	Model    string
	APIKey   string
	BaseURL  string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Template       string  `mapstructure:"template"`
	Solution       string  `mapstructure:"solution"`
	Submission     string  `mapstructure:"submission"`
	PubText        string  `mapstructure:"pubtext"`
	Prompt         string  `mapstructure:"prompt"`
	OutputFile     string  `mapstructure:"output-file"`
	Output         string  `mapstructure:"output"`
	GroupKey       string  `mapstructure:"group-key"`
	ColumnsStr     string  `mapstructure:"columns"`
	Threshold      float64 `mapstructure:"threshold"`
	Precision      int     `mapstructure:"precision"`
	Limit          int     `mapstructure:"limit"`
	Workers        int     `mapstructure:"workers"`
	Detail         bool    `mapstructure:"detail"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
	RunsBackend    string  `mapstructure:"runs-backend"`
	RunsDBConnect  string  `mapstructure:"runs-db-connect"`

	// --- Fields from predictCmd.Flags() ---
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base-url"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Columns != nil {
		clone.Columns = make([]string, len(c.Columns))
		copy(clone.Columns, c.Columns)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processPaths(cfg, input); err != nil {
		return err
	}
	if err := processProvider(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. Scoring knobs ---
	cfg.GroupKey = strings.TrimSpace(input.GroupKey)
	if cfg.GroupKey == "" {
		cfg.GroupKey = schema.DefaultGroupKey
	}
	if input.Threshold < 0 || input.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0,1] (received %g)", input.Threshold)
	}
	cfg.Threshold = input.Threshold
	if cfg.Threshold == 0 {
		cfg.Threshold = schema.DefaultThreshold
	}

	cfg.Columns = nil
	if input.ColumnsStr != "" {
		for p := range strings.SplitSeq(input.ColumnsStr, ",") {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Columns = append(cfg.Columns, trimmedP)
			}
		}
	}

	return nil
}

// processPaths resolves the data directory and the file paths within it.
// Explicit per-file flags win over the data-directory defaults.
func processPaths(cfg *Config, input *ConfigRawInput) error {
	dataPath := input.DataPathStr
	if dataPath == "" {
		dataPath = "."
	}
	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return fmt.Errorf("cannot resolve data path '%s': %w", dataPath, err)
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return fmt.Errorf("data path '%s' is not a directory", absPath)
	}
	cfg.DataPath = absPath

	resolve := func(explicit, defaultName string) string {
		if explicit != "" {
			return explicit
		}
		return filepath.Join(absPath, defaultName)
	}
	cfg.TemplatePath = resolve(input.Template, "SampleSubmission.csv")
	cfg.SolutionPath = resolve(input.Solution, "Solution.csv")
	cfg.SubmissionPath = resolve(input.Submission, "submission.csv")
	cfg.PubTextDir = resolve(input.PubText, "PubText")
	cfg.PromptPath = resolve(input.Prompt, "BaselinePrompt.txt")
	return nil
}

// processProvider validates the extraction provider and resolves its model
// and API key. Keys come from the environment, never from flags.
func processProvider(cfg *Config, input *ConfigRawInput) error {
	cfg.Provider = schema.Provider(strings.ToLower(input.Provider))
	if cfg.Provider == "" {
		cfg.Provider = schema.NoneProvider
	}
	if _, ok := schema.ValidProviders[cfg.Provider]; !ok {
		return fmt.Errorf("invalid provider '%s'. must be none, openai, claude, gemini", input.Provider)
	}
	cfg.Model = input.Model
	cfg.BaseURL = input.BaseURL

	switch cfg.Provider {
	case schema.NoneProvider:
		return nil
	case schema.OpenAIProvider:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}
	case schema.ClaudeProvider:
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Model == "" {
			cfg.Model = DefaultClaudeModel
		}
	case schema.GeminiProvider:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.Model == "" {
			cfg.Model = DefaultGeminiModel
		}
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("provider '%s' requires an API key in the environment", cfg.Provider)
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and run-store backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Runs Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect
	if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
		return err
	}

	// Validate that cache and runs use different databases
	if cfg.CacheBackend == cfg.RunsBackend && cfg.CacheBackend != schema.NoneBackend {
		// For SQLite, resolve to actual file paths to catch default path conflicts
		if cfg.CacheBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			runsDBPath := cfg.RunsDBConnect
			if runsDBPath == "" {
				runsDBPath = GetRunsDBFilePath()
			}
			if cacheDBPath == runsDBPath {
				return fmt.Errorf("cache and run storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}
