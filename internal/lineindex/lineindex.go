// Package lineindex maps character offsets to line numbers. The newline
// offsets are collected in one pass at construction and every lookup is a
// binary search, so bucketing n tokens over a source costs O(n log n)
// instead of the O(n^2) a per-token prefix rescan would.
package lineindex

import (
	"sort"
)

// Index holds the start offset of every line in a source text. Offsets are
// rune offsets, consistent with token offsets.
type Index struct {
	// lineStarts[i] is the rune offset of the first character of line i.
	// lineStarts[0] is always 0, even for empty text.
	lineStarts []int
	length     int
}

// New builds an index for the source text. Lines are delimited by '\n'
// alone; a trailing newline starts one final empty line, matching the
// line count rule count('\n')+1.
func New(source string) *Index {
	starts := []int{0}
	pos := 0
	for _, r := range source {
		pos++
		if r == '\n' {
			starts = append(starts, pos)
		}
	}
	return &Index{lineStarts: starts, length: pos}
}

// LineCount returns the number of lines in the source.
func (ix *Index) LineCount() int {
	return len(ix.lineStarts)
}

// Len returns the source length in characters.
func (ix *Index) Len() int {
	return ix.length
}

// LineFor returns the zero-based line containing the given character offset,
// i.e. the number of newlines strictly before it. Offsets past the end of
// the text land on the last line.
func (ix *Index) LineFor(offset int) int {
	// First line start strictly greater than offset; the line is the one
	// before it.
	i := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	})
	return i - 1
}

// LineStart returns the character offset of the first character of line.
// Out-of-range lines are clipped to the valid range.
func (ix *Index) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(ix.lineStarts) {
		return ix.length
	}
	return ix.lineStarts[line]
}
