// Package schema has configs, models and shared types for all parts of sdrfbench.
package schema

import "sort"

// Row maps a column name to the cell value for one table row.
type Row map[string]string

// Table is an ordered CSV-backed table: a header and a sequence of rows.
// Cell values are raw strings; empty string and the "Not Applicable"
// sentinel both mean "no value" for scoring purposes.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table header contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required columns absent from the header.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, r := range required {
		if !t.HasColumn(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// GroupBy partitions rows by the value of the key column and returns the
// partition plus the sorted list of group keys. Rows with an empty key are
// skipped. Sorting the keys keeps every downstream iteration deterministic.
func (t *Table) GroupBy(key string) (map[string][]Row, []string) {
	groups := make(map[string][]Row)
	for _, row := range t.Rows {
		k := row[key]
		if k == "" {
			continue
		}
		groups[k] = append(groups[k], row)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return groups, keys
}

// Extraction holds predicted values per raw data file: raw file name ->
// column name -> ordered candidate values. It is the wire shape the
// extraction prompt asks the model to produce.
type Extraction map[string]map[string][]string

// Document is the publication text available for one dataset accession.
type Document struct {
	Title        string   `json:"TITLE"`
	Abstract     string   `json:"ABSTRACT"`
	Methods      string   `json:"METHODS"`
	RawDataFiles []string `json:"Raw Data Files"`
}
