package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/lager"
	"github.com/0xalexb/lager/value"
)

// ErrEmptyData is returned when a YAML provider's source is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathIsDirectory is returned when the path given to YAMLFile points to
// a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// YAML is a Provider that sources a dictionary from a YAML document.
//
// In the plain shape the whole document is one dictionary emitted to the
// bound profile (Default unless changed with WithProfile). In the nested
// shape, selected with Nested, each top-level key of the document names a
// profile and its value is that profile's dictionary.
type YAML struct {
	fetch   func() ([]byte, error)
	profile lager.Profile
	nested  bool
	meta    lager.Metadata
}

// YAMLBytes constructs a provider reading the document from data.
func YAMLBytes(data []byte) *YAML {
	return &YAML{
		fetch:   func() ([]byte, error) { return data, nil },
		profile: lager.Default,
		meta:    lager.NewMetadata("YAML source", lager.Caller(1)),
	}
}

// YAMLString constructs a provider reading the document from s.
func YAMLString(s string) *YAML {
	return &YAML{
		fetch:   func() ([]byte, error) { return []byte(s), nil },
		profile: lager.Default,
		meta:    lager.NewMetadata("YAML source", lager.Caller(1)),
	}
}

// YAMLFile constructs a provider reading the document from the file at
// path. The file is read afresh on every Data call; a missing file or a
// directory is a Data error, not a construction error.
func YAMLFile(path string) *YAML {
	cleanPath := filepath.Clean(path)

	return &YAML{
		fetch:   func() ([]byte, error) { return readFile(cleanPath) },
		profile: lager.Default,
		meta: lager.NewMetadata(
			fmt.Sprintf("YAML file %q", cleanPath),
			lager.Caller(1),
		),
	}
}

func readFile(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return data, nil
}

// WithProfile returns a copy of the provider bound to profile. The receiver
// is not modified. The profile is ignored in the nested shape.
func (y *YAML) WithProfile(profile lager.Profile) *YAML {
	out := *y
	out.profile = profile

	return &out
}

// Nested returns a copy of the provider that reads each top-level key of
// the document as a profile name mapping to that profile's dictionary.
func (y *YAML) Nested() *YAML {
	out := *y
	out.nested = true

	return &out
}

// Metadata names the provider after its source and reports the constructor
// call site.
func (y *YAML) Metadata() lager.Metadata {
	return y.meta
}

// Data reads and parses the document and emits its dictionaries.
func (y *YAML) Data() (map[lager.Profile]*value.Dict, error) {
	data, err := y.fetch()
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	val, err := value.FromYAML(data)
	if err != nil {
		return nil, err
	}

	root, ok := val.(*value.Dict)
	if !ok {
		return nil, &lager.TypeError{Actual: val.Kind(), Expected: value.KindMap}
	}

	if !y.nested {
		return y.profile.Collect(root), nil
	}

	return nestedProfiles(root)
}

// nestedProfiles reads each top-level entry as one profile's dictionary.
func nestedProfiles(root *value.Dict) (map[lager.Profile]*value.Dict, error) {
	out := make(map[lager.Profile]*value.Dict, root.Len())

	var typeErr *lager.TypeError

	root.Range(func(key string, v value.Value) bool {
		dict, ok := v.(*value.Dict)
		if !ok {
			typeErr = &lager.TypeError{Actual: v.Kind(), Expected: value.KindMap}

			return false
		}

		out[lager.Profile(key)] = dict

		return true
	})

	if typeErr != nil {
		return nil, typeErr
	}

	return out, nil
}
