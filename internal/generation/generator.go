package generation

import "context"

// TitleGenerator defines the interface for deriving a short task title
// from its description. It serves as the boundary between the application
// core and the external text-generation service, so callers can swap in
// test doubles.
type TitleGenerator interface {
	// GenerateTitle requests a title for the given description.
	// Implementations make exactly one attempt; transient failures are
	// returned as errors, never retried. The recovery policy (fallback
	// title substitution) belongs to the caller.
	GenerateTitle(ctx context.Context, description string) (string, error)
}
