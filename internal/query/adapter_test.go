package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

func TestProject_MapsCapturesToKinds(t *testing.T) {
	source := "def foo"
	matches := []CaptureMatch{
		{Start: 0, End: 3, Capture: "keyword"},
		{Start: 4, End: 7, Capture: "function"},
	}

	tokens := Project(matches, source)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Token{Kind: token.Keyword, Start: 0, End: 3, Text: "def"}, tokens[0])
	assert.Equal(t, token.Token{Kind: token.Identifier, Start: 4, End: 7, Text: "foo"}, tokens[1])
}

func TestProject_DropsMalformedRanges(t *testing.T) {
	source := "abcdef"
	matches := []CaptureMatch{
		{Start: -1, End: 2, Capture: "keyword"},      // negative start
		{Start: 4, End: 2, Capture: "keyword"},       // inverted
		{Start: 0, End: len(source) + 1, Capture: "keyword"}, // past the end
		{Start: 0, End: 3, Capture: "string"},        // valid
	}

	tokens := Project(matches, source)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "abc", tokens[0].Text)
}

func TestProject_EmptyAndNilInput(t *testing.T) {
	assert.Empty(t, Project(nil, "text"))
	assert.Empty(t, Project([]CaptureMatch{}, ""))
}

func TestProject_SortsByStart(t *testing.T) {
	source := "a b c"
	matches := []CaptureMatch{
		{Start: 4, End: 5, Capture: "variable"},
		{Start: 0, End: 1, Capture: "variable"},
		{Start: 2, End: 3, Capture: "variable"},
	}

	tokens := Project(matches, source)
	require.Len(t, tokens, 3)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 2, tokens[1].Start)
	assert.Equal(t, 4, tokens[2].Start)
}

func TestProject_ConvertsByteOffsetsToCharOffsets(t *testing.T) {
	// é is two bytes; byte offsets past it shift by one relative to
	// character offsets.
	source := "é def"
	matches := []CaptureMatch{
		{Start: 3, End: 6, Capture: "keyword"},
	}

	tokens := Project(matches, source)
	require.Len(t, tokens, 1)
	assert.Equal(t, 2, tokens[0].Start)
	assert.Equal(t, 5, tokens[0].End)
	assert.Equal(t, "def", tokens[0].Text)
}

func TestProject_OverlappingCapturesAreKept(t *testing.T) {
	source := "abcdef"
	matches := []CaptureMatch{
		{Start: 0, End: 4, Capture: "string"},
		{Start: 2, End: 6, Capture: "comment"},
	}

	// Deduplication is the merger's job, not the adapter's.
	tokens := Project(matches, source)
	assert.Len(t, tokens, 2)
}

func TestKindForCapture(t *testing.T) {
	tests := []struct {
		capture string
		want    token.Kind
	}{
		{"function", token.Identifier},
		{"function.builtin", token.Identifier},
		{"function.method", token.Identifier},
		{"variable", token.Identifier},
		{"parameter", token.Identifier},
		{"field", token.Identifier},
		{"type", token.Identifier},
		{"keyword", token.Keyword},
		{"operator", token.Operator},
		{"punctuation", token.Punctuation},
		{"punctuation.special", token.Punctuation},
		{"string", token.String},
		{"number", token.Number},
		{"comment", token.Comment},
		{"something.novel", token.Unknown},
		{"", token.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.capture, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForCapture(tt.capture))
		})
	}
}

func TestProjectLineTokens_PreservesCaptureAndProvenance(t *testing.T) {
	source := "def foo"
	matches := []CaptureMatch{
		{Start: 4, End: 7, Capture: "function", Node: 7},
	}

	tokens := ProjectLineTokens(matches, source, token.SourceHighlight)
	require.Len(t, tokens, 1)
	assert.Equal(t, "function", tokens[0].Capture)
	assert.Equal(t, token.SourceHighlight, tokens[0].Source)
	assert.Equal(t, token.Identifier, tokens[0].Kind)
}
