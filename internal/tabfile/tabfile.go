// Package tabfile loads and writes the tables the benchmark exchanges:
// the template, the solution and submissions. Files are CSV by default;
// a .tsv extension switches to tab-separated (the usual SDRF format).
package tabfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/sdrfbench/schema"
)

// delimiterFor picks the field delimiter from the file extension.
func delimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// Load reads a CSV or TSV file into a table. The first record is the header;
// every following record becomes one row keyed by the header names.
func Load(path string) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.Comma = delimiterFor(path)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: no header record", path)
	}

	table := &schema.Table{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(schema.Row, len(table.Columns))
		for i, col := range table.Columns {
			row[col] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Write writes a table, header first, cells in header order. The delimiter
// follows the file extension like Load.
func Write(path string, table *schema.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	writer.Comma = delimiterFor(path)
	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
