package lager

import (
	"fmt"
	"runtime"
)

// Metadata identifies a provider for diagnostics: a human-readable name and
// the source location where the provider was constructed. It is purely
// informational and never affects data production; merge engines use it to
// attribute errors to the layer that caused them.
type Metadata struct {
	Name   string
	Source string
}

// NewMetadata creates Metadata from a provider name and a source location,
// typically one captured with Caller.
func NewMetadata(name, source string) Metadata {
	return Metadata{Name: name, Source: source}
}

// String renders the metadata as "name (file:line)".
func (m Metadata) String() string {
	return fmt.Sprintf("%s (%s)", m.Name, m.Source)
}

// Caller returns the file:line of the call site skip frames above the
// caller of Caller itself, or "unknown" when the stack cannot be resolved.
// Provider constructors use it to record where a layer was declared.
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s:%d", file, line)
}
