package core

import (
	"context"
	"strings"
	"sync"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
)

// BuildSubmission fills a copy of the template table with predicted values.
//
// Template rows are grouped by accession and each group is handled by one
// extraction call, fanned out across a bounded worker pool. A group whose
// document cannot be loaded or whose extraction fails is filled with the
// "Not Applicable" sentinel so the submission stays structurally complete.
func BuildSubmission(ctx context.Context, template *schema.Table, docs contract.DocumentStore, extractor contract.GroupExtractor, workers int) (*schema.Table, error) {
	if missing := template.MissingColumns([]string{schema.DefaultGroupKey, schema.RawFileColumn}); len(missing) > 0 {
		return nil, &schema.SchemaError{Table: "template", Missing: missing}
	}
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}

	groups, pxds := template.GroupBy(schema.DefaultGroupKey)
	columns := schema.ScoredColumns(template.Columns)

	var (
		mu          sync.Mutex
		extractions = make(map[string]schema.Extraction, len(pxds))
	)

	jobs := make(chan string)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pxd := range jobs {
				ext := extractGroup(ctx, pxd, groups[pxd], docs, extractor, columns)
				mu.Lock()
				extractions[pxd] = ext
				mu.Unlock()
			}
		}()
	}
	for _, pxd := range pxds {
		jobs <- pxd
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &schema.Table{Columns: template.Columns}
	for _, row := range template.Rows {
		out.Rows = append(out.Rows, fillRow(row, columns, extractions[row[schema.DefaultGroupKey]]))
	}
	return out, nil
}

// extractGroup runs one extraction call for an accession, falling back to an
// empty extraction on failure so the caller can fill sentinels.
func extractGroup(ctx context.Context, pxd string, rows []schema.Row, docs contract.DocumentStore, extractor contract.GroupExtractor, columns []string) schema.Extraction {
	doc, err := docs.Load(pxd)
	if err != nil {
		contract.LogWarn("loading document for "+pxd, err)
		return nil
	}

	rawFiles := doc.RawDataFiles
	if len(rawFiles) == 0 {
		rawFiles = rawFilesFromRows(rows)
	}

	ext, err := extractor.ExtractGroup(ctx, pxd, doc.ManuscriptText(), rawFiles, columns)
	if err != nil {
		contract.LogWarn("extracting annotations for "+pxd, err)
		return nil
	}
	return ext
}

// rawFilesFromRows returns the distinct raw data file names listed in the
// template rows, in order of first appearance.
func rawFilesFromRows(rows []schema.Row) []string {
	var files []string
	for _, row := range rows {
		if f := strings.TrimSpace(row[schema.RawFileColumn]); f != "" {
			files = append(files, f)
		}
	}
	return schema.UniqueOrdered(files)
}

// fillRow copies reserved identity cells from the template row and fills
// each scored column with the first predicted value for the row's raw file,
// or the sentinel when nothing was predicted.
func fillRow(tmplRow schema.Row, columns []string, ext schema.Extraction) schema.Row {
	row := make(schema.Row, len(tmplRow))
	for k, v := range tmplRow {
		row[k] = v
	}

	byColumn := ext[tmplRow[schema.RawFileColumn]]
	for _, col := range columns {
		row[col] = firstValue(byColumn[col])
	}
	return row
}

func firstValue(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return schema.NotApplicable
}
