package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.ScoreReport {
	return &schema.ScoreReport{
		GroupKey:      "PXD",
		Threshold:     0.8,
		Columns:       []string{"organism", "instrument"},
		Groups:        2,
		ScoredPairs:   2,
		ExcludedPairs: 1,
		Score:         0.75,
		Pairs: []schema.PairScore{
			{
				Group:            "PXD001819",
				Column:           "organism",
				SolutionValues:   []string{"homo sapiens"},
				SubmissionValues: []string{"Homo sapiens"},
				Clusters:         1,
				TruePositives:    1,
				Precision:        1,
				Recall:           1,
				F1:               1,
			},
			{
				Group:            "PXD001819",
				Column:           "instrument",
				SolutionValues:   []string{"LTQ Orbitrap", "Q Exactive"},
				SubmissionValues: []string{"Q Exactive"},
				Clusters:         2,
				TruePositives:    1,
				Precision:        1,
				Recall:           0.5,
				F1:               0.5,
			},
			{
				Group:    "PXD004684",
				Column:   "organism",
				Excluded: true,
			},
		},
	}
}

func scoreConfig() *contract.Config {
	return &contract.Config{
		Output:      schema.TextOut,
		Precision:   4,
		ResultLimit: 25,
		Width:       120,
		UseColors:   false,
		RunsBackend: schema.NoneBackend,
	}
}

func TestDisplayPairs(t *testing.T) {
	pairs := displayPairs(sampleReport())
	require.Len(t, pairs, 2, "Excluded pairs should be dropped")

	// Weakest pair first
	assert.Equal(t, "instrument", pairs[0].Column)
	assert.Equal(t, "organism", pairs[1].Column)
}

func TestWriteScoreTable(t *testing.T) {
	cfg := scoreConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeScoreTable(sampleReport(), cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PXD001819")
	assert.Contains(t, out, "instrument")
	assert.Contains(t, out, "0.7500", "Final score should be printed")
	assert.Contains(t, out, "Showing 2 of 2 scored pairs (1 excluded) across 2 groups")
	assert.NotContains(t, out, "PXD004684", "Excluded pairs should not be listed")
}

func TestWriteScoreTableDetail(t *testing.T) {
	cfg := scoreConfig()
	cfg.Detail = true
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeScoreTable(sampleReport(), cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LTQ Orbitrap")
	assert.Contains(t, out, "Q Exactive")
}

func TestWriteScoreTableLimit(t *testing.T) {
	cfg := scoreConfig()
	cfg.ResultLimit = 1
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeScoreTable(sampleReport(), cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Showing 1 of 2 scored pairs")
	assert.Contains(t, out, "instrument", "Weakest pair should survive the limit")
}

func TestWriteCSVResultsForPairs(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForPairs(w, sampleReport(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 pairs

	// Check header
	assert.Contains(t, lines[0], "group")
	assert.Contains(t, lines[0], "f1")
	assert.Contains(t, lines[0], "excluded")

	// Check data rows keep report order and the excluded flag
	assert.Contains(t, lines[1], "organism")
	assert.Contains(t, lines[2], "LTQ Orbitrap|Q Exactive")
	assert.Contains(t, lines[3], "true")
}

func TestPrintScoreReportJSON(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := scoreConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(tmpDir, "report.json")

	err := PrintScoreReport(sampleReport(), cfg, time.Second)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.ScoreReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.InDelta(t, 0.75, decoded.Score, 0.001)
	assert.Len(t, decoded.Pairs, 3)
}

func TestPrintScoreReportParquet(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := scoreConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(tmpDir, "pairs.parquet")

	err := PrintScoreReport(sampleReport(), cfg, time.Second)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestPrintScoreReportParquetRequiresFile(t *testing.T) {
	cfg := scoreConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = ""

	err := PrintScoreReport(sampleReport(), cfg, time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}
