// Package merger reconciles token streams from different sources into one
// sequence: structural tokens win over basic word tokens they fully contain,
// and gaps are filled with whitespace so the result is total over the input.
package merger

import (
	"sort"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Merge combines structural tokens with basic word tokens. A basic token is
// suppressed when some structural token fully contains it; anything less
// than full containment keeps both, so partially overlapping ranges from the
// two sources may coexist in the output. The result is sorted by start.
func Merge(structural, basic []token.Token) []token.Token {
	merged := make([]token.Token, 0, len(structural)+len(basic))
	merged = append(merged, structural...)
	for _, b := range basic {
		if containedInAny(b, structural) {
			continue
		}
		merged = append(merged, b)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start < merged[j].Start
	})
	return merged
}

func containedInAny(t token.Token, structural []token.Token) bool {
	for _, s := range structural {
		if s.Start <= t.Start && s.End >= t.End {
			return true
		}
	}
	return false
}

// Fill makes a sorted token stream total over the source: every gap before
// the first token, between consecutive tokens, and after the last token
// becomes a whitespace token. Zero-length gaps produce nothing. Tokens must
// already be sorted by start and non-overlapping for the output to cover
// [0, len) exactly once.
func Fill(tokens []token.Token, source string) []token.Token {
	runes := []rune(source)
	filled := make([]token.Token, 0, len(tokens)*2+1)
	pos := 0
	for _, t := range tokens {
		if t.Start > pos {
			filled = append(filled, gap(runes, pos, t.Start))
		}
		filled = append(filled, t)
		if t.End > pos {
			pos = t.End
		}
	}
	if pos < len(runes) {
		filled = append(filled, gap(runes, pos, len(runes)))
	}
	return filled
}

func gap(runes []rune, start, end int) token.Token {
	return token.Token{
		Kind:  token.Whitespace,
		Start: start,
		End:   end,
		Text:  string(runes[start:end]),
	}
}
