//go:build basic

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPredictCheckScoreRoundTrip exercises the full benchmark loop with the
// placeholder provider and no persistence.
func TestPredictCheckScoreRoundTrip(t *testing.T) {
	dataDir := makeDataDir(t)

	t.Setenv("SDRFBENCH_CACHE_BACKEND", "none")
	t.Setenv("SDRFBENCH_RUNS_BACKEND", "")

	// Generate a sentinel-only submission next to the data
	generated := filepath.Join(dataDir, "generated.csv")
	err := runSdrfbenchCommand(t, "predict", dataDir, "--provider", "none", "--output-file", generated)
	require.NoError(t, err)

	data, err := os.ReadFile(generated)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Not Applicable")

	// The generated submission must satisfy the structural checks
	err = runSdrfbenchCommand(t, "check", dataDir, "--submission", generated)
	require.NoError(t, err)

	// Scoring the curated submission prints a final score
	binaryPath := getSdrfbenchBinary()
	cmd := exec.Command(binaryPath, "score", dataDir, "--color", "no")
	cmd.Dir = "../"
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())
	assert.Contains(t, stdout.String(), "Final score:")
}

// TestCheckRejectsMalformedSubmission verifies the CI-gate exit code.
func TestCheckRejectsMalformedSubmission(t *testing.T) {
	dataDir := makeDataDir(t)

	t.Setenv("SDRFBENCH_CACHE_BACKEND", "none")

	// Drop a row so the structural check fails
	bad := filepath.Join(dataDir, "bad.csv")
	writeFile(t, bad, "ID,PXD,Raw Data File,Usage,organism,instrument\n"+
		"1,PXD001819,run01.raw,Public,homo sapiens,Q Exactive\n")

	err := runSdrfbenchCommand(t, "check", dataDir, "--submission", bad)
	assert.Error(t, err, "check should exit non-zero for a malformed submission")
}

// TestScoreWithSQLiteRunTracking scores with the run store enabled and
// exports the tracked data to Parquet.
func TestScoreWithSQLiteRunTracking(t *testing.T) {
	dataDir := makeDataDir(t)
	runsDB := filepath.Join(t.TempDir(), "runs.db")

	t.Setenv("SDRFBENCH_CACHE_BACKEND", "none")
	t.Setenv("SDRFBENCH_RUNS_BACKEND", "sqlite")
	t.Setenv("SDRFBENCH_RUNS_DB_CONNECT", runsDB)

	err := runSdrfbenchCommand(t, "score", dataDir)
	require.NoError(t, err)

	err = runSdrfbenchCommand(t, "runs", "status")
	require.NoError(t, err)

	exportPrefix := filepath.Join(t.TempDir(), "export")
	err = runSdrfbenchCommand(t, "runs", "export", "--output-file", exportPrefix)
	require.NoError(t, err)

	_, err = os.Stat(exportPrefix + ".scoring_runs.parquet")
	assert.NoError(t, err)
	_, err = os.Stat(exportPrefix + ".pair_scores.parquet")
	assert.NoError(t, err)
}
