package cmd

import "context"

// cmdContext is the context commands run under. CLI invocations are short
// lived, so there is no cancellation wiring beyond the background context.
func cmdContext() context.Context {
	return context.Background()
}
