package providers

import (
	"fmt"
	"strings"

	"github.com/0xalexb/lager"
	"github.com/0xalexb/lager/value"
)

// Serialized is a Provider that sources values from any serializable Go
// value.
//
// Without a key, the value must serialize to a dictionary, which becomes
// the whole dictionary of the bound profile. With a key such as "a.b.c",
// the value may serialize to anything: one nested dictionary is created per
// dot-delimited segment, the value mapping to the innermost one. Empty
// segments ("a..b", a leading or trailing dot) contribute no nesting level.
//
// The descriptor itself is immutable: Data serializes the held value afresh
// on every call and WithProfile/WithKey return copies, so a Serialized may
// be shared across goroutines.
type Serialized struct {
	// Value is the value to serialize as the provided data.
	Value any
	// Key is the dot-delimited path to nest the value under, or "" for
	// the root.
	Key string
	// Profile is the profile the dictionary is emitted to.
	Profile lager.Profile

	meta lager.Metadata
}

// From constructs an unkeyed provider that emits v to profile. The call
// site is recorded for diagnostics. No validation happens here: v is only
// serialized, and can only fail, when Data is called.
func From(v any, profile lager.Profile) *Serialized {
	return newSerialized(v, "", profile)
}

// Defaults emits v, which must serialize to a dictionary, to the Default
// profile. Equivalent to From(v, lager.Default).
func Defaults(v any) *Serialized {
	return newSerialized(v, "", lager.Default)
}

// Globals emits v, which must serialize to a dictionary, to the Global
// profile. Equivalent to From(v, lager.Global).
func Globals(v any) *Serialized {
	return newSerialized(v, "", lager.Global)
}

// Keyed emits v nested under the dot-delimited key to profile. Equivalent
// to From(v, profile).WithKey(key).
func Keyed(profile lager.Profile, key string, v any) *Serialized {
	return newSerialized(v, key, profile)
}

// newSerialized must be called directly by an exported constructor so the
// recorded call site is the constructor's caller.
func newSerialized(v any, key string, profile lager.Profile) *Serialized {
	return &Serialized{
		Value:   v,
		Key:     key,
		Profile: profile,
		meta:    lager.NewMetadata(fmt.Sprintf("%T", v), lager.Caller(2)),
	}
}

// WithProfile returns a copy of the provider bound to profile. The receiver
// is not modified.
func (s *Serialized) WithProfile(profile lager.Profile) *Serialized {
	out := *s
	out.Profile = profile

	return &out
}

// WithKey returns a copy of the provider with the key path replaced. The
// receiver is not modified.
func (s *Serialized) WithKey(key string) *Serialized {
	out := *s
	out.Key = key

	return &out
}

// Metadata names the provider after the dynamic type of the held value and
// reports the constructor call site.
func (s *Serialized) Metadata() lager.Metadata {
	return s.meta
}

// Data serializes the held value, expands the key path if one is set, and
// emits the resulting dictionary to the bound profile.
func (s *Serialized) Data() (map[lager.Profile]*value.Dict, error) {
	val, err := value.From(s.Value)
	if err != nil {
		return nil, err
	}

	if s.Key != "" {
		val = nest(strings.Split(s.Key, "."), val)
	}

	dict, ok := val.(*value.Dict)
	if !ok {
		return nil, &lager.TypeError{Actual: val.Kind(), Expected: value.KindMap}
	}

	return s.Profile.Collect(dict), nil
}

// nest wraps v in one single-entry dictionary per path segment, folding
// from the last segment to the first. Each step allocates a fresh
// dictionary, so duplicate segment names never collide.
func nest(segments []string, v value.Value) value.Value {
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}

		dict := value.NewDict()
		dict.Set(segments[i], v)
		v = dict
	}

	return v
}
