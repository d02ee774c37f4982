package iocache

import (
	"testing"
	"time"

	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{
			name:      "valid simple name",
			tableName: "extraction_cache",
			wantErr:   false,
		},
		{
			name:      "valid name with numbers",
			tableName: "cache_v2",
			wantErr:   false,
		},
		{
			name:      "valid name starting with underscore",
			tableName: "_cache",
			wantErr:   false,
		},
		{
			name:      "valid mixed case",
			tableName: "ExtractionCache_123",
			wantErr:   false,
		},
		{
			name:      "empty name",
			tableName: "",
			wantErr:   true,
		},
		{
			name:      "starts with number",
			tableName: "1cache",
			wantErr:   true,
		},
		{
			name:      "contains dash",
			tableName: "extraction-cache",
			wantErr:   true,
		},
		{
			name:      "contains space",
			tableName: "extraction cache",
			wantErr:   true,
		},
		{
			name:      "sql injection attempt",
			tableName: "cache; DROP TABLE sdrf_runs; --",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		want    string
	}{
		{
			name:    "mysql uses backticks",
			backend: schema.MySQLBackend,
			want:    "`extraction_cache`",
		},
		{
			name:    "sqlite uses double quotes",
			backend: schema.SQLiteBackend,
			want:    `"extraction_cache"`,
		},
		{
			name:    "postgres uses double quotes",
			backend: schema.PostgreSQLBackend,
			want:    `"extraction_cache"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quoteTableName("extraction_cache", tt.backend)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		backend schema.DatabaseBackend
		want    string
	}{
		{
			name:    "single sqlite placeholder",
			n:       1,
			backend: schema.SQLiteBackend,
			want:    "?",
		},
		{
			name:    "multiple mysql placeholders",
			n:       3,
			backend: schema.MySQLBackend,
			want:    "?, ?, ?",
		},
		{
			name:    "numbered postgres placeholders",
			n:       3,
			backend: schema.PostgreSQLBackend,
			want:    "$1, $2, $3",
		},
		{
			name:    "zero placeholders",
			n:       0,
			backend: schema.SQLiteBackend,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeholders(tt.n, tt.backend)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 2, 10, 9, 30, 0, 123456789, time.UTC)

	sqliteVal := formatTime(ts, schema.SQLiteBackend)
	str, ok := sqliteVal.(string)
	assert.True(t, ok, "SQLite times should be stored as text")
	parsed, err := time.Parse(time.RFC3339Nano, str)
	assert.NoError(t, err)
	assert.True(t, ts.Equal(parsed), "Round trip should preserve the instant")

	mysqlVal := formatTime(ts, schema.MySQLBackend)
	assert.Equal(t, ts, mysqlVal, "MySQL times should stay native")

	pgVal := formatTime(ts, schema.PostgreSQLBackend)
	assert.Equal(t, ts, pgVal, "PostgreSQL times should stay native")
}
