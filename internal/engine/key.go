package engine

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// sourceKey builds a content-addressed cache key: the operation name plus
// the xxhash of the exact source text. Any mutation of the text, even
// whitespace-only, misses.
func sourceKey(op, source string) string {
	return fmt.Sprintf("%s:%016x", op, xxhash.Sum64String(source))
}
