package lineindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIndex_LineCount(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{name: "empty text has one line", source: "", want: 1},
		{name: "no newline", source: "abc", want: 1},
		{name: "one newline", source: "a\nb", want: 2},
		{name: "trailing newline starts an empty line", source: "a\n", want: 2},
		{name: "three lines", source: "a\nbb\nccc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.source).LineCount())
		})
	}
}

func TestIndex_LineFor(t *testing.T) {
	ix := New("a\nbb\nccc")

	assert.Equal(t, 0, ix.LineFor(0)) // "a"
	assert.Equal(t, 0, ix.LineFor(1)) // "\n" belongs to line 0
	assert.Equal(t, 1, ix.LineFor(2)) // "b"
	assert.Equal(t, 1, ix.LineFor(3))
	assert.Equal(t, 2, ix.LineFor(5)) // "c"
	assert.Equal(t, 2, ix.LineFor(7))
	// Past the end lands on the last line.
	assert.Equal(t, 2, ix.LineFor(100))
}

func TestIndex_LineStart(t *testing.T) {
	ix := New("a\nbb\nccc")

	assert.Equal(t, 0, ix.LineStart(0))
	assert.Equal(t, 2, ix.LineStart(1))
	assert.Equal(t, 5, ix.LineStart(2))
	// Clipped, not errors.
	assert.Equal(t, 0, ix.LineStart(-1))
	assert.Equal(t, 8, ix.LineStart(10))
}

func TestIndex_MultibyteOffsets(t *testing.T) {
	// Offsets are rune offsets: the two-byte é counts as one character.
	ix := New("é\nx")
	assert.Equal(t, 2, ix.LineCount())
	assert.Equal(t, 0, ix.LineFor(0))
	assert.Equal(t, 1, ix.LineFor(2))
	assert.Equal(t, 2, ix.LineStart(1))
}

// LineFor agrees with counting newlines in the prefix, the definition the
// binary search optimizes.
func TestIndex_LineForMatchesPrefixCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		source := rapid.String().Draw(rt, "source")
		runes := []rune(source)
		offset := rapid.IntRange(0, len(runes)).Draw(rt, "offset")

		want := strings.Count(string(runes[:offset]), "\n")
		got := New(source).LineFor(offset)
		if got != want {
			rt.Fatalf("LineFor(%d) = %d, prefix newline count = %d", offset, got, want)
		}
	})
}
