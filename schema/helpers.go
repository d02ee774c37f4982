package schema

import "strings"

// ManuscriptText assembles the in-scope publication text for extraction:
// title, abstract and methods, joined by blank lines. Sections that are
// absent simply drop out.
func (d *Document) ManuscriptText() string {
	var parts []string
	for _, s := range []string{d.Title, d.Abstract, d.Methods} {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// UniqueOrdered returns the values with exact duplicates removed,
// preserving first-appearance order.
func UniqueOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
