// Package resolver maps analyte name segments that failed direct catalog
// lookup to canonical names. Strategies are tried in order: the synonym-aware
// catalog lookup first, then an optional AI fallback for free-form report
// spellings. With the AI strategy disabled the resolver stays fully offline
// and deterministic.
package resolver

import "context"

// Strategy defines one method for resolving a raw name segment to a
// canonical catalog analyte name.
type Strategy interface {
	// Resolve attempts to resolve the raw name. Returns the canonical name,
	// whether resolution succeeded, and any error encountered. A failed
	// resolution with no error means "try the next strategy".
	Resolve(ctx context.Context, rawName string) (string, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}
