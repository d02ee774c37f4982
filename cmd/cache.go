package cmd

import (
	"fmt"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/iocache"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no run tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by benchmark commands. This avoids data directory
// validation and provider processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the extraction response cache",
	Long: `Manage the cache of raw LLM extraction responses.

sdrfbench caches every provider response keyed by provider, model, prompt and
dataset accession, so rescoring or refilling a submission never repeats a paid
API call.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached responses

Examples:
  # Check cache status
  sdrfbench cache status

  # Clear cache after changing the prompt template
  sdrfbench cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached extraction responses",
	Long: `Delete all cached LLM responses from the configured backend.

Use this when:
- The prompt template changed in a way the cache key does not capture
- Cached replies may be stale or corrupted
- Measuring cold-run extraction cost

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  sdrfbench cache clear

  # Clear MySQL cache (set connection string via env variable)
  SDRFBENCH_CACHE_BACKEND=mysql SDRFBENCH_CACHE_DB_CONNECT="..." sdrfbench cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the extraction response cache.

Displays:
- Backend type and connection status
- Total number of cached responses
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  sdrfbench cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetCacheStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
