package token

// Provenance records which subsystem produced a token. The projector exposes
// filtered views per provenance so a renderer can layer highlight tokens over
// basic word tokens.
type Provenance int

const (
	// SourceHighlight marks tokens produced by the highlights query.
	SourceHighlight Provenance = iota
	// SourceTag marks tokens produced by the tags query.
	SourceTag
	// SourceBasic marks tokens produced by the whitespace-word fallback.
	SourceBasic
)

// String returns the string representation of the provenance.
func (p Provenance) String() string {
	switch p {
	case SourceHighlight:
		return "highlight"
	case SourceTag:
		return "tag"
	default:
		return "basic"
	}
}

// LineToken is a Token annotated with its zero-based line index, its
// provenance, and the raw capture name it was projected from. Capture is
// empty for tokens that did not come from a structural query.
type LineToken struct {
	Token
	Line    int
	Source  Provenance
	Capture string
}

// NodeID is an opaque handle to a node in the structural parse tree. It is a
// back-reference for on-demand lookup through the provider that owns the
// tree, never an owning pointer. Zero means "no node".
type NodeID uint64

// SymbolKind classifies a symbol derived from the locals query.
type SymbolKind int

const (
	SymbolUnknown SymbolKind = iota
	SymbolFunction
	SymbolClass
	SymbolVariable
	SymbolReference
)

// String returns the string representation of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolClass:
		return "class"
	case SymbolVariable:
		return "variable"
	case SymbolReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Symbol is a named definition or reference derived from the locals query.
type Symbol struct {
	ID   string
	Name string
	Kind SymbolKind
	Span Span
	Node NodeID
}

// Fold is a foldable region derived from the folds query.
type Fold struct {
	Span      Span
	StartLine int
	EndLine   int
}

// Tag is a navigation entry derived from the tags query.
type Tag struct {
	Name string
	Type string
	Span Span
}
