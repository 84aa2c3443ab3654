package query

import (
	"sort"
	"unicode/utf8"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

// captureKinds maps capture names to token kinds. This table is the single
// seam where new language capture vocabularies are added.
var captureKinds = map[string]token.Kind{
	"function":              token.Identifier,
	"function.builtin":      token.Identifier,
	"function.method":       token.Identifier,
	"variable":              token.Identifier,
	"parameter":             token.Identifier,
	"field":                 token.Identifier,
	"type":                  token.Identifier,
	"constant":              token.Identifier,
	"property":              token.Identifier,
	"keyword":               token.Keyword,
	"keyword.function":      token.Keyword,
	"keyword.return":        token.Keyword,
	"operator":              token.Operator,
	"punctuation":           token.Punctuation,
	"punctuation.special":   token.Punctuation,
	"punctuation.bracket":   token.Punctuation,
	"punctuation.delimiter": token.Punctuation,
	"string":                token.String,
	"string.escape":         token.String,
	"number":                token.Number,
	"comment":               token.Comment,
}

// KindForCapture returns the token kind a capture name maps to. Names
// outside the table map to Unknown.
func KindForCapture(name string) token.Kind {
	if k, ok := captureKinds[name]; ok {
		return k
	}
	return token.Unknown
}

// Project converts capture matches into tokens addressed by character
// offset. Matches with malformed ranges (negative start, inverted range, or
// end past the source) are dropped; a misbehaving provider degrades output
// quality but never fails the call. The result is sorted by start offset.
// Overlapping captures are kept as-is; deduplication belongs to the merger.
func Project(matches []CaptureMatch, source string) []token.Token {
	tokens := make([]token.Token, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(source) {
			continue
		}
		// Convert each byte offset on its own. Converting end as
		// start+delta would compound an error in one bound into both.
		start := utf8.RuneCountInString(source[:m.Start])
		end := utf8.RuneCountInString(source[:m.End])
		tokens = append(tokens, token.Token{
			Kind:  KindForCapture(m.Capture),
			Start: start,
			End:   end,
			Text:  source[m.Start:m.End],
		})
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})
	return tokens
}

// ProjectLineTokens is Project with provenance and capture names preserved,
// for consumers that need the raw classification label.
func ProjectLineTokens(matches []CaptureMatch, source string, src token.Provenance) []token.LineToken {
	out := make([]token.LineToken, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(source) {
			continue
		}
		start := utf8.RuneCountInString(source[:m.Start])
		end := utf8.RuneCountInString(source[:m.End])
		out = append(out, token.LineToken{
			Token: token.Token{
				Kind:  KindForCapture(m.Capture),
				Start: start,
				End:   end,
				Text:  source[m.Start:m.End],
			},
			Source:  src,
			Capture: m.Capture,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
