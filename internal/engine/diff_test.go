package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

func TestChangedSpan_EqualTexts(t *testing.T) {
	_, ok := ChangedSpan("abc", "abc")
	assert.False(t, ok)

	_, ok = ChangedSpan("", "")
	assert.False(t, ok)
}

func TestChangedSpan_Insertion(t *testing.T) {
	span, ok := ChangedSpan("ac", "abc")
	require.True(t, ok)
	assert.Equal(t, token.Span{Start: 1, End: 2}, span)
}

func TestChangedSpan_Append(t *testing.T) {
	span, ok := ChangedSpan("ab", "abcd")
	require.True(t, ok)
	assert.Equal(t, token.Span{Start: 2, End: 4}, span)
}

func TestChangedSpan_DeletionIsEmptySpanAtPoint(t *testing.T) {
	span, ok := ChangedSpan("abc", "ac")
	require.True(t, ok)
	assert.True(t, span.IsEmpty())
	assert.Equal(t, 1, span.Start)
}

func TestChangedSpan_Replacement(t *testing.T) {
	span, ok := ChangedSpan("hello world", "hello there")
	require.True(t, ok)
	// The span covers the replaced region in the new text.
	assert.LessOrEqual(t, span.Start, 6)
	assert.Equal(t, len("hello there"), span.End)
}

func TestChangedSpan_WholeTextReplaced(t *testing.T) {
	span, ok := ChangedSpan("aaa", "bbbb")
	require.True(t, ok)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, 4, span.End)
}
