// Package token defines the value types shared by the lexical scanner, the
// query-match adapter, and the line projector: classified source tokens,
// their line-bucketed form, and the symbol/fold/tag records derived from
// structural queries.
package token

// Kind classifies a token.
type Kind int

const (
	Unknown Kind = iota
	Keyword
	Identifier
	String
	Number
	Comment
	Punctuation
	Operator
	Whitespace
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	case Comment:
		return "comment"
	case Punctuation:
		return "punctuation"
	case Operator:
		return "operator"
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Token is a classified span of source text. Start and End are character
// (rune) offsets into the source, half-open: 0 <= Start <= End <= len.
// Text is the exact substring covered by [Start, End).
type Token struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// Len returns the number of characters the token covers.
func (t Token) Len() int {
	return t.End - t.Start
}

// Span is a half-open character-offset range.
type Span struct {
	Start int
	End   int
}

// Len returns the span length.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers nothing.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether other lies fully within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && s.End >= other.End
}
