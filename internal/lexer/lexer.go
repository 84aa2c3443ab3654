// Package lexer implements the fallback lexical scanner: a single-pass,
// character-class state machine that classifies every character of the input
// into exactly one token. It has no knowledge of the structural parse tree
// and is used when structural highlighting is unavailable.
package lexer

import (
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Scanner tokenizes source text one character at a time. Offsets are rune
// offsets so they line up with the query adapter's converted ranges.
type Scanner struct {
	input []rune
	pos   int
}

// NewScanner creates a scanner for the input string.
func NewScanner(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// Scan runs the scanner to completion and returns the full token sequence.
// The returned tokens are contiguous, non-overlapping, and cover the whole
// input: concatenating their Text fields reproduces the input exactly.
func Scan(input string) []token.Token {
	s := NewScanner(input)
	var tokens []token.Token
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or ok=false at end of input. Malformed input
// never fails: characters outside every class become unknown tokens of
// length 1, and unterminated strings run to end of input.
func (s *Scanner) Next() (token.Token, bool) {
	if s.pos >= len(s.input) {
		return token.Token{}, false
	}

	ch := s.input[s.pos]
	switch {
	case isSpace(ch):
		return s.scanRun(token.Whitespace, isSpace), true
	case ch == '#':
		return s.scanComment(), true
	case ch == '"' || ch == '\'':
		return s.scanString(ch), true
	case isDigit(ch):
		return s.scanRun(token.Number, isNumberChar), true
	case isIdentStart(ch):
		return s.scanIdentifier(), true
	case isOperator(ch):
		return s.single(token.Operator), true
	case isPunctuation(ch):
		return s.single(token.Punctuation), true
	default:
		return s.single(token.Unknown), true
	}
}

// scanRun consumes the maximal run of characters satisfying pred.
func (s *Scanner) scanRun(kind token.Kind, pred func(rune) bool) token.Token {
	start := s.pos
	for s.pos < len(s.input) && pred(s.input[s.pos]) {
		s.pos++
	}
	return s.emit(kind, start)
}

// scanComment consumes a # comment up to but excluding the trailing newline.
func (s *Scanner) scanComment() token.Token {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != '\n' {
		s.pos++
	}
	return s.emit(token.Comment, start)
}

// scanString consumes a quoted string. A backslash escapes the following
// character, so an escaped quote does not terminate the literal. An
// unterminated string consumes to end of input rather than erroring.
func (s *Scanner) scanString(quote rune) token.Token {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\\':
			s.pos++ // escape consumes the next character too
			if s.pos < len(s.input) {
				s.pos++
			}
		case quote:
			s.pos++
			return s.emit(token.String, start)
		default:
			s.pos++
		}
	}
	return s.emit(token.String, start)
}

func (s *Scanner) scanIdentifier() token.Token {
	start := s.pos
	for s.pos < len(s.input) && isIdentChar(s.input[s.pos]) {
		s.pos++
	}
	tok := s.emit(token.Identifier, start)
	if IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}

func (s *Scanner) single(kind token.Kind) token.Token {
	start := s.pos
	s.pos++
	return s.emit(kind, start)
}

func (s *Scanner) emit(kind token.Kind, start int) token.Token {
	return token.Token{
		Kind:  kind,
		Start: start,
		End:   s.pos,
		Text:  string(s.input[start:s.pos]),
	}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isNumberChar accepts digits and dots. A run like "1.2.3" therefore lexes
// as one number token; the scanner does not validate numeric syntax.
func isNumberChar(c rune) bool {
	return isDigit(c) || c == '.'
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isOperator(c rune) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '%', '^', '~':
		return true
	}
	return false
}

func isPunctuation(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', ',', '.', ';', ':':
		return true
	}
	return false
}
