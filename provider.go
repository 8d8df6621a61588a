package lager

import "github.com/0xalexb/lager/value"

// Provider supplies one layer of profile-scoped configuration to a merge
// engine.
//
// Data must be free of observable side effects and safe to call from
// multiple goroutines: every call allocates fresh output structures and the
// provider's own state is never mutated. Either a complete mapping or an
// error is returned, never partial data. The merge engine decides the order
// in which providers are evaluated; a single Data call is atomic from its
// point of view.
type Provider interface {
	// Metadata identifies the provider for error attribution.
	Metadata() Metadata

	// Data produces the provider's complete profile→dictionary mapping.
	Data() (map[Profile]*value.Dict, error)
}
