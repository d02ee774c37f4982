package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/sdrfbench/schema"
)

// CleanResponse strips markdown code fences and any prose around the JSON
// object a model wrapped its answer in.
func CleanResponse(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) > 1 {
			text = parts[1]
		}
		text = strings.TrimPrefix(text, "json")
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

// ParseResponse parses a model reply into an extraction. Scalar values are
// promoted to single-element lists, list values are stringified element-wise.
// The boolean is false when the reply holds no usable JSON object.
func ParseResponse(text string) (schema.Extraction, bool) {
	var raw map[string]map[string]any
	if err := json.Unmarshal([]byte(CleanResponse(text)), &raw); err != nil {
		return nil, false
	}

	ext := make(schema.Extraction, len(raw))
	for rawFile, byColumn := range raw {
		columns := make(map[string][]string, len(byColumn))
		for col, v := range byColumn {
			columns[col] = coerceValues(v)
		}
		ext[rawFile] = columns
	}
	return ext, true
}

// coerceValues normalizes one JSON value into a string list.
func coerceValues(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []any:
		values := make([]string, 0, len(val))
		for _, item := range val {
			switch s := item.(type) {
			case string:
				values = append(values, s)
			default:
				values = append(values, fmt.Sprint(s))
			}
		}
		return values
	default:
		return []string{fmt.Sprint(val)}
	}
}
