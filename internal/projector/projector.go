// Package projector buckets flat token streams by source line and answers
// line-scoped queries over them. Line lookup goes through a precomputed
// newline index so bucketing stays O(n log n) on pathological inputs.
package projector

import (
	"sort"

	"github.com/shigou0206/editor-analyzer/internal/lineindex"
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Lines is an indexed view of tokens bucketed by zero-based line number.
type Lines struct {
	buckets [][]token.LineToken
}

// ByLine buckets tokens by the line containing their start offset. Within a
// bucket tokens are ordered by start; equal starts keep their input order.
// The bucket count is always count('\n')+1 regardless of where tokens fall.
func ByLine(tokens []token.LineToken, source string) Lines {
	ix := lineindex.New(source)
	buckets := make([][]token.LineToken, ix.LineCount())
	for _, t := range tokens {
		line := ix.LineFor(t.Start)
		if line < 0 || line >= len(buckets) {
			continue
		}
		t.Line = line
		buckets[line] = append(buckets[line], t)
	}
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Start < bucket[j].Start
		})
	}
	return Lines{buckets: buckets}
}

// LineCount returns the number of line buckets.
func (l Lines) LineCount() int {
	return len(l.buckets)
}

// ForLine returns the tokens on a single line. Out-of-range lines yield nil.
func (l Lines) ForLine(line int) []token.LineToken {
	if line < 0 || line >= len(l.buckets) {
		return nil
	}
	return l.buckets[line]
}

// InRange returns all tokens on lines in the inclusive range
// [startLine, endLine]. Out-of-range bounds are clipped, not errors.
func (l Lines) InRange(startLine, endLine int) []token.LineToken {
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(l.buckets) {
		endLine = len(l.buckets) - 1
	}
	var out []token.LineToken
	for i := startLine; i <= endLine; i++ {
		out = append(out, l.buckets[i]...)
	}
	return out
}

// WithSource returns every token with the given provenance, in line order.
func (l Lines) WithSource(src token.Provenance) []token.LineToken {
	var out []token.LineToken
	for _, bucket := range l.buckets {
		for _, t := range bucket {
			if t.Source == src {
				out = append(out, t)
			}
		}
	}
	return out
}

// All returns every token in line order.
func (l Lines) All() []token.LineToken {
	var out []token.LineToken
	for _, bucket := range l.buckets {
		out = append(out, bucket...)
	}
	return out
}
