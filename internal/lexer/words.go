package lexer

import (
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Words splits input into maximal non-whitespace runs. It is the plain
// fallback used as the basic-provenance layer under structural tokens; the
// merger suppresses a word wherever a structural token fully covers it.
// Word tokens carry kind Unknown because no classification happens here.
func Words(input string) []token.Token {
	runes := []rune(input)
	var words []token.Token
	i := 0
	for i < len(runes) {
		if isSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !isSpace(runes[i]) {
			i++
		}
		words = append(words, token.Token{
			Kind:  token.Unknown,
			Start: start,
			End:   i,
			Text:  string(runes[start:i]),
		})
	}
	return words
}
