package schema

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a table. Structural
// problems abort the whole run; there is no partial score.
type SchemaError struct {
	Table   string // "solution", "submission" or "template"
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table is missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

// EmptyInputError means there is nothing to average over: either the
// solution table has no groups, or every (group, column) pair is excluded.
// This is distinct from a score of 0, which requires at least one scorable pair.
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return "score undefined: " + e.Reason
}
