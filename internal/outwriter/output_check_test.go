package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCheckTablePassed(t *testing.T) {
	result := &schema.CheckResult{Columns: 10, Rows: 50}
	cfg := &contract.Config{Output: schema.TextOut}

	var buf bytes.Buffer
	err := writeCheckTable(result, cfg, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "passed all structural checks")
	assert.Contains(t, buf.String(), "10 columns, 50 rows")
}

func TestWriteCheckTableFailed(t *testing.T) {
	result := &schema.CheckResult{
		Columns: 10,
		Rows:    50,
		Issues: []schema.CheckIssue{
			{Kind: "rows", Detail: "expected 50 rows, got 48"},
			{Kind: "identity", Detail: "row 3: PXD mismatch"},
		},
	}
	cfg := &contract.Config{Output: schema.TextOut}

	var buf bytes.Buffer
	err := writeCheckTable(result, cfg, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "expected 50 rows, got 48")
	assert.Contains(t, out, "identity")
	assert.Contains(t, out, "Found 2 structural issue(s)")
}

func TestWriteCSVResultsForIssues(t *testing.T) {
	result := &schema.CheckResult{
		Issues: []schema.CheckIssue{
			{Kind: "columns", Detail: "missing column: organism"},
		},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForIssues(w, result)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kind")
	assert.Contains(t, lines[1], "missing column: organism")
}
