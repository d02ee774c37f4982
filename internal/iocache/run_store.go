package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
)

// Table names for run tracking.
const (
	runsTable       = "sdrf_runs"
	pairScoresTable = "sdrf_pair_scores"
)

// RunStoreImpl implements the RunStore interface.
type RunStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.RunStore = &RunStoreImpl{} // Compile-time check

// NewRunStore creates a new RunStore with the specified backend.
func NewRunStore(backend schema.DatabaseBackend, connStr string) (contract.RunStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled tracking
		return &RunStoreImpl{backend: backend}, nil
	}

	db, err := openBackendDB(backend, connStr, contract.GetRunsDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createRunTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create run tables: %w", err)
	}

	return &RunStoreImpl{db: db, backend: backend}, nil
}

// createRunTables creates the run tracking tables.
func createRunTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{pairScoresTable, getCreatePairScoresQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for sdrf_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				score DOUBLE,
				scored_pairs INT,
				excluded_pairs INT,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				score DOUBLE PRECISION,
				scored_pairs INT,
				excluded_pairs INT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TEXT NOT NULL,
				end_time TEXT,
				score REAL,
				scored_pairs INTEGER,
				excluded_pairs INTEGER,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreatePairScoresQuery returns the CREATE TABLE query for sdrf_pair_scores.
// The metric columns carry a _score suffix because "precision" is reserved
// in MySQL.
func getCreatePairScoresQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(pairScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				group_key VARCHAR(100) NOT NULL,
				column_name VARCHAR(255) NOT NULL,
				precision_score DOUBLE NOT NULL,
				recall_score DOUBLE NOT NULL,
				f1_score DOUBLE NOT NULL,
				excluded BOOLEAN NOT NULL,
				PRIMARY KEY (run_id, group_key, column_name)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				group_key TEXT NOT NULL,
				column_name TEXT NOT NULL,
				precision_score DOUBLE PRECISION NOT NULL,
				recall_score DOUBLE PRECISION NOT NULL,
				f1_score DOUBLE PRECISION NOT NULL,
				excluded BOOLEAN NOT NULL,
				PRIMARY KEY (run_id, group_key, column_name)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				group_key TEXT NOT NULL,
				column_name TEXT NOT NULL,
				precision_score REAL NOT NULL,
				recall_score REAL NOT NULL,
				f1_score REAL NOT NULL,
				excluded INTEGER NOT NULL,
				PRIMARY KEY (run_id, group_key, column_name)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new scoring run and returns its unique ID.
func (rs *RunStoreImpl) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)

	var runID int64
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES ($1, $2) RETURNING run_id`, quotedTableName)
		err = rs.db.QueryRow(query, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES (?, ?)`, quotedTableName)
		var result sql.Result
		result, err = rs.db.Exec(query, formatTime(startTime, rs.backend), string(configJSON))
		if err != nil {
			return 0, fmt.Errorf("failed to insert scoring run: %w", err)
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert scoring run: %w", err)
	}
	return runID, nil
}

// EndRun updates the scoring run with completion data.
func (rs *RunStoreImpl) EndRun(runID int64, endTime time.Time, score float64, scoredPairs, excludedPairs int) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)

	var query string
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`UPDATE %s SET end_time = $1, score = $2, scored_pairs = $3, excluded_pairs = $4 WHERE run_id = $5`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`UPDATE %s SET end_time = ?, score = ?, scored_pairs = ?, excluded_pairs = ? WHERE run_id = ?`, quotedTableName)
	}

	if _, err := rs.db.Exec(query, formatTime(endTime, rs.backend), score, scoredPairs, excludedPairs, runID); err != nil {
		return fmt.Errorf("failed to update scoring run: %w", err)
	}
	return nil
}

// RecordPair stores the outcome of one (group, column) pair.
func (rs *RunStoreImpl) RecordPair(runID int64, pair schema.PairScore) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(pairScoresTable, rs.backend)
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, group_key, column_name, precision_score, recall_score, f1_score, excluded)
		VALUES (%s)
	`, quotedTableName, placeholders(7, rs.backend))

	if _, err := rs.db.Exec(query, runID, pair.Group, pair.Column, pair.Precision, pair.Recall, pair.F1, pair.Excluded); err != nil {
		return fmt.Errorf("failed to insert pair score: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (rs *RunStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the run store.
func (rs *RunStoreImpl) GetStatus() (schema.RunsStatus, error) {
	status := schema.RunsStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := rs.db.QueryRow(countQuery).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	lastQuery := fmt.Sprintf("SELECT start_time, COALESCE(score, 0) FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName)
	row := rs.db.QueryRow(lastQuery)

	switch rs.backend {
	case schema.SQLiteBackend:
		var lastRunStr string
		if err := row.Scan(&lastRunStr, &status.LastScore); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		lastRun, err := time.Parse(time.RFC3339Nano, lastRunStr)
		if err != nil {
			return status, fmt.Errorf("failed to parse last run time: %w", err)
		}
		status.LastRun = lastRun
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&status.LastRun, &status.LastScore); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
	}

	return status, nil
}

// ExportRuns retrieves all scoring runs from the store, newest first.
func (rs *RunStoreImpl) ExportRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)
	query := fmt.Sprintf(`SELECT run_id, start_time, end_time, score, COALESCE(scored_pairs, 0), COALESCE(excluded_pairs, 0), config_params
		FROM %s ORDER BY run_id DESC`, quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query scoring runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord
	for rows.Next() {
		var record schema.RunRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.Score, &record.ScoredPairs, &record.ExcludedPairs, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan scoring run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.Score, &record.ScoredPairs, &record.ExcludedPairs, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan scoring run: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scoring runs: %w", err)
	}
	return results, nil
}

// ExportPairs retrieves all stored pair scores for a run.
func (rs *RunStoreImpl) ExportPairs(runID int64) ([]schema.RunPairRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(pairScoresTable, rs.backend)
	query := fmt.Sprintf(`SELECT run_id, group_key, column_name, precision_score, recall_score, f1_score, excluded
		FROM %s WHERE run_id = %s ORDER BY group_key, column_name`, quotedTableName, placeholders(1, rs.backend))

	rows, err := rs.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pair scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunPairRecord
	for rows.Next() {
		var record schema.RunPairRecord
		if err := rows.Scan(&record.RunID, &record.Group, &record.Column, &record.Precision, &record.Recall, &record.F1, &record.Excluded); err != nil {
			return nil, fmt.Errorf("failed to scan pair score: %w", err)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pair scores: %w", err)
	}
	return results, nil
}
