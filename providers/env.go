package providers

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/0xalexb/lager"
	"github.com/0xalexb/lager/value"
)

// Env is a Provider that sources values from environment variables.
//
// Variables whose names start with Prefix (matched case-sensitively) are
// selected. The prefix is stripped, the remainder is lowercased, and each
// underscore becomes a dot, so with prefix "APP_" the variable
// APP_SERVER_PORT=8080 yields the nested key server.port with the string
// value "8080". The environment is read afresh on every Data call.
type Env struct {
	// Prefix selects variables and is stripped from the emitted keys.
	Prefix string
	// Profile is the profile the dictionary is emitted to. An empty
	// profile is treated as lager.Default.
	Profile lager.Profile
	// Map optionally rewrites a key after the prefix is stripped and
	// lowercased, before underscores become dots. Returning "" drops the
	// variable.
	Map func(key string) string
	// Logger receives the provider's debug logging, e.g. one built with
	// the logging package. A nil Logger means the process-default logger.
	Logger *slog.Logger

	meta lager.Metadata
}

// NewEnv constructs a provider for variables starting with prefix, emitted
// to the Default profile. The call site is recorded for diagnostics.
func NewEnv(prefix string) *Env {
	return &Env{
		Prefix:  prefix,
		Profile: lager.Default,
		meta: lager.NewMetadata(
			fmt.Sprintf("environment variables (prefix %q)", prefix),
			lager.Caller(1),
		),
	}
}

// WithProfile returns a copy of the provider bound to profile. The receiver
// is not modified.
func (e *Env) WithProfile(profile lager.Profile) *Env {
	out := *e
	out.Profile = profile

	return &out
}

// Metadata names the provider after its prefix and reports the constructor
// call site.
func (e *Env) Metadata() lager.Metadata {
	return e.meta
}

// Data scans the environment and emits every matching variable as a nested
// key. When two variables map to the same key, the later one in
// os.Environ order wins.
func (e *Env) Data() (map[lager.Profile]*value.Dict, error) {
	dict := value.NewDict()
	matched := 0

	for _, kv := range os.Environ() {
		name, val, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, e.Prefix) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(name, e.Prefix))
		if e.Map != nil {
			key = e.Map(key)
		}

		segments := splitKey(strings.ReplaceAll(key, "_", "."))
		if len(segments) == 0 {
			continue
		}

		setNested(dict, segments, value.String(val))

		matched++
	}

	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("environment scanned", "prefix", e.Prefix, "matched", matched)

	profile := e.Profile
	if profile == "" {
		profile = lager.Default
	}

	return profile.Collect(dict), nil
}

// splitKey splits a dot-delimited key into its non-empty segments.
func splitKey(key string) []string {
	segments := make([]string, 0, strings.Count(key, ".")+1)

	for _, seg := range strings.Split(key, ".") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return segments
}

// setNested stores v under the segment path, creating intermediate
// dictionaries as needed. A non-dictionary value in the way is replaced.
func setNested(dict *value.Dict, segments []string, v value.Value) {
	current := dict

	for _, seg := range segments[:len(segments)-1] {
		existing, ok := current.Get(seg)

		child, isDict := existing.(*value.Dict)
		if !ok || !isDict {
			child = value.NewDict()
			current.Set(seg, child)
		}

		current = child
	}

	current.Set(segments[len(segments)-1], v)
}
