package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SimilarityFunc compares two annotation values and returns a similarity
// in [0,1], where 1 means the values should be treated as the same concept.
type SimilarityFunc func(a, b string) float64

// canonicalValue normalizes an annotation value before comparison:
// NFKC to fold compatibility forms, lowercase, and collapse internal
// whitespace runs to single spaces.
func canonicalValue(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// Similarity is the default annotation similarity: a normalized Levenshtein
// ratio over canonicalized values. Two empty canonical forms compare as 1.
func Similarity(a, b string) float64 {
	ca, cb := canonicalValue(a), canonicalValue(b)
	if ca == cb {
		return 1.0
	}
	ra, rb := []rune(ca), []rune(cb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes the edit distance between two rune slices with the
// classic two-row dynamic program.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
