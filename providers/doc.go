// Package providers contains concrete configuration providers: sources that
// emit a profile→dictionary mapping for a downstream merge engine.
//
// Three sources are included:
//   - Serialized: any serializable Go value, optionally nested under a
//     dot-delimited key path
//   - Env: environment variables selected by prefix
//   - YAML: a YAML document from bytes, a string, or a file
//
// Koanf adapts any lager.Provider to the provider contract of
// github.com/knadh/koanf/v2, so a koanf instance can serve as the merge
// engine downstream.
package providers
