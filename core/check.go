package core

import (
	"fmt"

	"github.com/huangsam/sdrfbench/schema"
)

// CheckSubmission validates a submission table against the competition
// template. The submission must reproduce the template's column order
// exactly and keep one row per template row, identified by the reserved
// identity columns. Cell values in scored columns are free, including the
// "Not Applicable" sentinel.
func CheckSubmission(template, submission *schema.Table) *schema.CheckResult {
	result := &schema.CheckResult{
		Columns: len(submission.Columns),
		Rows:    len(submission.Rows),
	}

	if !equalColumns(template.Columns, submission.Columns) {
		result.Issues = append(result.Issues, schema.CheckIssue{
			Kind: "columns",
			Detail: fmt.Sprintf("header mismatch: template has %d columns, submission has %d (order matters)",
				len(template.Columns), len(submission.Columns)),
		})
		// Row identity checks are meaningless once the header differs.
		return result
	}

	if len(submission.Rows) != len(template.Rows) {
		result.Issues = append(result.Issues, schema.CheckIssue{
			Kind: "rows",
			Detail: fmt.Sprintf("row count mismatch: template has %d rows, submission has %d",
				len(template.Rows), len(submission.Rows)),
		})
		return result
	}

	for i, tmplRow := range template.Rows {
		subRow := submission.Rows[i]
		for _, col := range schema.ReservedColumns {
			if !template.HasColumn(col) {
				continue
			}
			if tmplRow[col] != subRow[col] {
				result.Issues = append(result.Issues, schema.CheckIssue{
					Kind: "identity",
					Detail: fmt.Sprintf("row %d: column %q changed from %q to %q",
						i+1, col, tmplRow[col], subRow[col]),
				})
			}
		}
		for _, col := range schema.ScoredColumns(template.Columns) {
			if subRow[col] == "" {
				result.Issues = append(result.Issues, schema.CheckIssue{
					Kind:   "empty",
					Detail: fmt.Sprintf("row %d: column %q is empty, use %q for no prediction", i+1, col, schema.NotApplicable),
				})
			}
		}
	}
	return result
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
