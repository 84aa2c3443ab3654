package query

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shigou0206/editor-analyzer/internal/lineindex"
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// ExtractSymbols derives symbol records from locals-query matches. The
// capture vocabulary follows tree-sitter locals conventions:
// "definition.function", "definition.class", "definition.var" and
// "reference". Malformed ranges are dropped like everywhere else at this
// boundary. Symbol IDs are deterministic (name plus start offset) so
// repeated extraction over the same text yields equal records.
func ExtractSymbols(matches []CaptureMatch, source string) []token.Symbol {
	symbols := make([]token.Symbol, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(source) {
			continue
		}
		kind, ok := symbolKind(m.Capture)
		if !ok {
			continue
		}
		name := source[m.Start:m.End]
		span := token.Span{
			Start: utf8.RuneCountInString(source[:m.Start]),
			End:   utf8.RuneCountInString(source[:m.End]),
		}
		symbols = append(symbols, token.Symbol{
			ID:   fmt.Sprintf("%s@%d", name, span.Start),
			Name: name,
			Kind: kind,
			Span: span,
			Node: m.Node,
		})
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].Span.Start < symbols[j].Span.Start
	})
	return symbols
}

func symbolKind(capture string) (token.SymbolKind, bool) {
	switch capture {
	case "definition.function", "local.definition.function":
		return token.SymbolFunction, true
	case "definition.class", "local.definition.class":
		return token.SymbolClass, true
	case "definition.var", "local.definition.var":
		return token.SymbolVariable, true
	case "reference", "local.reference":
		return token.SymbolReference, true
	}
	return token.SymbolUnknown, false
}

// ExtractFolds derives foldable regions from folds-query matches. Every
// valid "fold" capture becomes a region; line numbers come from the shared
// line index.
func ExtractFolds(matches []CaptureMatch, source string) []token.Fold {
	ix := lineindex.New(source)
	folds := make([]token.Fold, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(source) {
			continue
		}
		span := token.Span{
			Start: utf8.RuneCountInString(source[:m.Start]),
			End:   utf8.RuneCountInString(source[:m.End]),
		}
		folds = append(folds, token.Fold{
			Span:      span,
			StartLine: ix.LineFor(span.Start),
			EndLine:   ix.LineFor(span.End),
		})
	}
	sort.SliceStable(folds, func(i, j int) bool {
		return folds[i].Span.Start < folds[j].Span.Start
	})
	return folds
}

// ExtractTags derives navigation tags from tags-query matches. Capture names
// follow the "name.definition.<type>" / "name.reference.<type>" convention;
// the trailing segment becomes the tag type.
func ExtractTags(matches []CaptureMatch, source string) []token.Tag {
	tags := make([]token.Tag, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End < m.Start || m.End > len(source) {
			continue
		}
		typ, ok := tagType(m.Capture)
		if !ok {
			continue
		}
		tags = append(tags, token.Tag{
			Name: source[m.Start:m.End],
			Type: typ,
			Span: token.Span{
				Start: utf8.RuneCountInString(source[:m.Start]),
				End:   utf8.RuneCountInString(source[:m.End]),
			},
		})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Span.Start < tags[j].Span.Start
	})
	return tags
}

func tagType(capture string) (string, bool) {
	rest, ok := strings.CutPrefix(capture, "name.definition.")
	if !ok {
		rest, ok = strings.CutPrefix(capture, "name.reference.")
	}
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}
