package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableHasColumn(t *testing.T) {
	table := &Table{Columns: []string{"ID", "PXD", "organism"}}
	assert.True(t, table.HasColumn("organism"))
	assert.False(t, table.HasColumn("Organism"))
	assert.False(t, table.HasColumn("instrument"))
}

func TestTableMissingColumns(t *testing.T) {
	table := &Table{Columns: []string{"ID", "PXD", "organism"}}

	tests := []struct {
		name     string
		required []string
		want     []string
	}{
		{"all present", []string{"PXD", "organism"}, nil},
		{"one missing", []string{"PXD", "instrument"}, []string{"instrument"}},
		{"all missing", []string{"a", "b"}, []string{"a", "b"}},
		{"empty required", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.MissingColumns(tc.required))
		})
	}
}

func TestTableGroupBy(t *testing.T) {
	table := &Table{
		Columns: []string{"PXD", "organism"},
		Rows: []Row{
			{"PXD": "PXD002", "organism": "mouse"},
			{"PXD": "PXD001", "organism": "human"},
			{"PXD": "", "organism": "orphan"},
			{"PXD": "PXD001", "organism": "human"},
		},
	}
	groups, keys := table.GroupBy("PXD")

	// Keys come back sorted, rows with an empty key are skipped.
	assert.Equal(t, []string{"PXD001", "PXD002"}, keys)
	assert.Len(t, groups["PXD001"], 2)
	assert.Len(t, groups["PXD002"], 1)
	assert.NotContains(t, groups, "")
}

func TestScoredColumns(t *testing.T) {
	columns := []string{"ID", "PXD", "Raw Data File", "Usage", "organism", "instrument"}
	assert.Equal(t, []string{"organism", "instrument"}, ScoredColumns(columns))

	// Reserved-only header yields no scorable columns.
	assert.Empty(t, ScoredColumns(ReservedColumns))
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Table: "submission", Missing: []string{"organism", "instrument"}}
	assert.EqualError(t, err, "submission table is missing required columns: organism, instrument")
}

func TestEmptyInputErrorMessage(t *testing.T) {
	err := &EmptyInputError{Reason: "no groups share the PXD key"}
	assert.EqualError(t, err, "score undefined: no groups share the PXD key")
}

func TestDocumentManuscriptText(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			"all sections",
			Document{Title: "A study", Abstract: "We did things.", Methods: "Trypsin digestion."},
			"A study\n\nWe did things.\n\nTrypsin digestion.",
		},
		{
			"missing methods",
			Document{Title: "A study", Abstract: "We did things."},
			"A study\n\nWe did things.",
		},
		{
			"whitespace only sections",
			Document{Title: "  ", Abstract: "\n", Methods: "Methods."},
			"Methods.",
		},
		{"empty document", Document{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.doc.ManuscriptText())
		})
	}
}

func TestUniqueOrdered(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, UniqueOrdered([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, UniqueOrdered(nil))
}

func TestCheckResultPassed(t *testing.T) {
	assert.True(t, (&CheckResult{}).Passed())
	assert.False(t, (&CheckResult{Issues: []CheckIssue{{Kind: "columns"}}}).Passed())
}
