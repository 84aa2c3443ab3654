package engine

import (
	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Outcome tags a highlight result with how it was produced, so callers can
// tell a fully structural result from a degraded lexical one without
// inspecting the tokens.
type Outcome int

const (
	// OutcomeEmpty means the input was empty and no tokens were produced.
	OutcomeEmpty Outcome = iota
	// OutcomeStructural means the structural provider supplied the tokens.
	OutcomeStructural
	// OutcomeLexical means the fallback scanner supplied the tokens.
	OutcomeLexical
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeStructural:
		return "structural"
	case OutcomeLexical:
		return "lexical"
	default:
		return "empty"
	}
}

// Result is a highlight token stream plus its provenance. Unless the input
// was empty, Tokens always covers the whole input.
type Result struct {
	Tokens  []token.Token
	Outcome Outcome
}
