// Package extract turns publication text into predicted annotation values,
// one LLM call per dataset accession, with transparent response caching.
package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/internal/llm"
	"github.com/huangsam/sdrfbench/schema"
)

// Extractor asks a model to map raw data files to column values. The prompt
// template carries the column definitions and the required JSON output shape.
type Extractor struct {
	client         llm.Client
	cache          contract.CacheStore
	promptTemplate string
	provider       string
	model          string
}

// NewExtractor builds an extractor. The cache may be nil, in which case
// every call hits the model.
func NewExtractor(client llm.Client, cache contract.CacheStore, promptTemplate, provider, model string) *Extractor {
	return &Extractor{
		client:         client,
		cache:          cache,
		promptTemplate: promptTemplate,
		provider:       provider,
		model:          model,
	}
}

// ExtractGroup implements contract.GroupExtractor. A response that cannot be
// parsed yields an empty extraction rather than an error, so a malformed
// model reply degrades to sentinel cells instead of failing the run.
func (e *Extractor) ExtractGroup(ctx context.Context, pxd, manuscript string, rawFiles []string, columns []string) (schema.Extraction, error) {
	prompt := e.buildPrompt(manuscript, rawFiles, columns)
	key := e.cacheKey(pxd, prompt)

	if e.cache != nil {
		if data, err := e.cache.Get(key); err == nil && data != nil {
			if ext, ok := ParseResponse(string(data)); ok {
				return ext, nil
			}
		}
	}

	text, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		if err := e.cache.Set(key, []byte(text)); err != nil {
			contract.LogWarn("caching extraction response", err)
		}
	}

	ext, ok := ParseResponse(text)
	if !ok {
		return Placeholder{}.placeholderFor(rawFiles), nil
	}
	return ext, nil
}

// buildPrompt assembles the full prompt: template first, then the manuscript
// truncated to the configured bound, the raw file list and the target columns.
func (e *Extractor) buildPrompt(manuscript string, rawFiles, columns []string) string {
	if len(manuscript) > contract.MaxManuscriptChars {
		manuscript = manuscript[:contract.MaxManuscriptChars]
	}

	var b strings.Builder
	b.WriteString(e.promptTemplate)
	b.WriteString("\n\nMANUSCRIPT_TEXT:\n")
	b.WriteString(manuscript)
	b.WriteString("\n\nRAW_FILES:\n")
	b.WriteString(strings.Join(rawFiles, "\n"))
	if len(columns) > 0 {
		b.WriteString("\n\nSDRF_COLUMNS:\n")
		b.WriteString(strings.Join(columns, "\n"))
	}
	return b.String()
}

// cacheKey derives a stable key from everything that shapes the response.
func (e *Extractor) cacheKey(pxd, prompt string) string {
	h := sha256.New()
	h.Write([]byte(e.provider))
	h.Write([]byte{'|'})
	h.Write([]byte(e.model))
	h.Write([]byte{'|'})
	h.Write([]byte(pxd))
	h.Write([]byte{'|'})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

// Placeholder is a GroupExtractor that predicts nothing, leaving every cell
// to be filled with the "Not Applicable" sentinel.
type Placeholder struct{}

// NewPlaceholder returns the sentinel-only extractor.
func NewPlaceholder() Placeholder {
	return Placeholder{}
}

// ExtractGroup implements contract.GroupExtractor.
func (p Placeholder) ExtractGroup(_ context.Context, _, _ string, rawFiles []string, _ []string) (schema.Extraction, error) {
	return p.placeholderFor(rawFiles), nil
}

func (Placeholder) placeholderFor(rawFiles []string) schema.Extraction {
	ext := make(schema.Extraction, len(rawFiles))
	for _, raw := range rawFiles {
		ext[raw] = map[string][]string{}
	}
	return ext
}
