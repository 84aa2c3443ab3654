// Package query defines the contract with the external structural parser and
// adapts its capture-based query results into the token model. The parser
// itself lives behind the Structural interface; this package never inspects
// or mutates the parse tree.
package query

import (
	"context"
	"errors"

	"github.com/shigou0206/editor-analyzer/internal/token"
)

// Category names one of the fixed query definitions the provider can load.
type Category string

const (
	Highlights Category = "highlights"
	Locals     Category = "locals"
	Folds      Category = "folds"
	Tags       Category = "tags"
)

// Categories lists every query category in a stable order.
func Categories() []Category {
	return []Category{Highlights, Locals, Folds, Tags}
}

// ErrQueryUnavailable is returned by Structural.Query when the named query
// definition does not exist for the provider's language. Callers treat it as
// "empty result", never as a fatal condition.
var ErrQueryUnavailable = errors.New("query definition unavailable")

// Tree is an opaque handle to a parse tree. Its lifetime and contents are
// owned entirely by the provider that produced it.
type Tree any

// CompiledQuery is an opaque handle to a compiled query definition, owned by
// the provider. The engine caches these for its own lifetime.
type CompiledQuery any

// CaptureMatch is a single named sub-match from a query execution. Start and
// End are byte offsets into the source, as the structural parser reports
// them; matches arrive in arbitrary order and may overlap. Node is an
// optional back-reference to the captured tree node, zero when the provider
// does not expose node identity.
type CaptureMatch struct {
	Start   int
	End     int
	Capture string
	Node    token.NodeID
}

// Structural is the contract with the external parsing component. Parse
// failures and missing query definitions degrade to empty results upstream;
// implementations should return errors rather than panic.
type Structural interface {
	// Parse produces a tree for the source text.
	Parse(ctx context.Context, source string) (Tree, error)

	// Query loads and compiles the named query definition. Returns
	// ErrQueryUnavailable when the definition does not exist.
	Query(c Category) (CompiledQuery, error)

	// Execute runs a compiled query over a tree and returns its capture
	// matches.
	Execute(ctx context.Context, t Tree, q CompiledQuery, source string) ([]CaptureMatch, error)
}
