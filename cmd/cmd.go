// Package cmd defines the command-line interface for sdrfbench.
package cmd

import (
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("template", "", "Path to the sample submission template CSV (defaults to <data-path>/SampleSubmission.csv)")
	rootCmd.PersistentFlags().String("solution", "", "Path to the solution CSV (defaults to <data-path>/Solution.csv)")
	rootCmd.PersistentFlags().String("submission", "", "Path to the submission CSV (defaults to <data-path>/submission.csv)")
	rootCmd.PersistentFlags().String("pubtext", "", "Directory with <PXD>_PubText.json documents (defaults to <data-path>/PubText)")
	rootCmd.PersistentFlags().String("prompt", "", "Path to the prompt template (defaults to <data-path>/BaselinePrompt.txt)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("group-key", schema.DefaultGroupKey, "Column that partitions rows into datasets")
	rootCmd.PersistentFlags().String("columns", "", "Comma-separated list of columns to score (defaults to all non-reserved template columns)")
	rootCmd.PersistentFlags().Float64("threshold", schema.DefaultThreshold, "Similarity threshold for value clustering, in (0, 1]")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of pair results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent extraction workers")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-pair value sets and cluster counts")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Extraction cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of predictCmd to Viper
	predictCmd.Flags().String("provider", string(schema.NoneProvider), "Extraction provider: none or openai or claude or gemini")
	predictCmd.Flags().String("model", "", "Model name override for the selected provider")
	predictCmd.Flags().String("base-url", "", "Custom base URL for OpenAI-compatible servers")
	if err := viper.BindPFlags(predictCmd.Flags()); err != nil {
		contract.LogFatal("Error binding predict flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
