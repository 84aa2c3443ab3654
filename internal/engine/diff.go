package engine

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

// ChangedSpan computes the character span of new text affected by an edit
// from old to new. Callers re-rendering after an edit can limit work to the
// lines covering the span instead of the whole document. Returns ok=false
// when the texts are identical. A pure deletion yields an empty span at the
// deletion point.
func ChangedSpan(oldText, newText string) (token.Span, bool) {
	if oldText == newText {
		return token.Span{}, false
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	// Walk diffs tracking the rune position in the new text; the span runs
	// from the first change to the end of the last one.
	pos := 0
	start, end := -1, -1
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			pos += len([]rune(d.Text))
		case diffmatchpatch.DiffInsert:
			if start < 0 {
				start = pos
			}
			pos += len([]rune(d.Text))
			end = pos
		case diffmatchpatch.DiffDelete:
			if start < 0 {
				start = pos
			}
			if end < pos {
				end = pos
			}
		}
	}
	if start < 0 {
		return token.Span{}, false
	}
	return token.Span{Start: start, End: end}, true
}
