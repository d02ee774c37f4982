package core

import (
	"testing"

	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateFixture() *schema.Table {
	columns := []string{"ID", "PXD", "Raw Data File", "Usage", "organism"}
	return makeTable(columns,
		[]string{"1", "PXD0001", "run01.raw", "Public", "Not Applicable"},
		[]string{"2", "PXD0001", "run02.raw", "Public", "Not Applicable"},
	)
}

func TestCheckSubmissionPasses(t *testing.T) {
	template := templateFixture()
	submission := makeTable(template.Columns,
		[]string{"1", "PXD0001", "run01.raw", "Public", "homo sapiens"},
		[]string{"2", "PXD0001", "run02.raw", "Public", "Not Applicable"},
	)

	result := CheckSubmission(template, submission)
	assert.True(t, result.Passed())
	assert.Equal(t, 5, result.Columns)
	assert.Equal(t, 2, result.Rows)
}

func TestCheckSubmissionColumnMismatch(t *testing.T) {
	template := templateFixture()
	submission := makeTable([]string{"ID", "PXD", "organism"},
		[]string{"1", "PXD0001", "homo sapiens"},
	)

	result := CheckSubmission(template, submission)
	require.False(t, result.Passed())
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "columns", result.Issues[0].Kind)
}

func TestCheckSubmissionColumnOrderMatters(t *testing.T) {
	template := templateFixture()
	reordered := []string{"PXD", "ID", "Raw Data File", "Usage", "organism"}
	submission := makeTable(reordered,
		[]string{"PXD0001", "1", "run01.raw", "Public", "homo sapiens"},
		[]string{"PXD0001", "2", "run02.raw", "Public", "homo sapiens"},
	)

	result := CheckSubmission(template, submission)
	require.False(t, result.Passed())
	assert.Equal(t, "columns", result.Issues[0].Kind)
}

func TestCheckSubmissionRowCountMismatch(t *testing.T) {
	template := templateFixture()
	submission := makeTable(template.Columns,
		[]string{"1", "PXD0001", "run01.raw", "Public", "homo sapiens"},
	)

	result := CheckSubmission(template, submission)
	require.False(t, result.Passed())
	assert.Equal(t, "rows", result.Issues[0].Kind)
}

func TestCheckSubmissionIdentityChanged(t *testing.T) {
	template := templateFixture()
	submission := makeTable(template.Columns,
		[]string{"1", "PXD0001", "run01.raw", "Public", "homo sapiens"},
		[]string{"2", "PXD0001", "renamed.raw", "Public", "homo sapiens"},
	)

	result := CheckSubmission(template, submission)
	require.False(t, result.Passed())
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "identity", result.Issues[0].Kind)
	assert.Contains(t, result.Issues[0].Detail, "Raw Data File")
}

func TestCheckSubmissionEmptyCell(t *testing.T) {
	template := templateFixture()
	submission := makeTable(template.Columns,
		[]string{"1", "PXD0001", "run01.raw", "Public", ""},
		[]string{"2", "PXD0001", "run02.raw", "Public", "homo sapiens"},
	)

	result := CheckSubmission(template, submission)
	require.False(t, result.Passed())
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "empty", result.Issues[0].Kind)
	assert.Contains(t, result.Issues[0].Detail, schema.NotApplicable)
}
