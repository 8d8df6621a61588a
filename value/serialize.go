package value

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
)

// From converts an arbitrary serializable Go value into a Value tree.
//
// The value is round-tripped through goccy/go-yaml, so anything the yaml
// package can marshal is supported: structs with yaml tags, maps, slices,
// scalars, and yaml.Marshaler implementations. Struct field order and map
// document order survive as dictionary key order. A v that already
// implements Value skips the yaml round trip; its containers are deep-copied
// so the result never aliases the input.
//
// Each call produces an independent tree and never mutates v. Marshal
// failures are wrapped with %w so the underlying cause stays inspectable.
func From(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return copyValue(val), nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serializing %T: %w", v, err)
	}

	val, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("reading serialized %T: %w", v, err)
	}

	return val, nil
}

// FromYAML parses a YAML document into a Value tree, preserving the
// document's key order.
func FromYAML(data []byte) (Value, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	return lift(raw), nil
}

// lift converts the generic tree the yaml decoder produces into a Value.
// Unsigned integers that fit in int64 normalize to Int so that equal
// numbers compare equal regardless of the Go type they started as.
//
//nolint:cyclop // one case per scalar type, trivially flat.
func lift(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return liftUint(uint64(t))
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case uint64:
		return liftUint(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []any:
		arr := make(Array, len(t))
		for i, item := range t {
			arr[i] = lift(item)
		}

		return arr
	case yaml.MapSlice:
		dict := NewDict()
		for _, item := range t {
			dict.Set(fmt.Sprint(item.Key), lift(item.Value))
		}

		return dict
	case map[string]any:
		return liftPlainMap(t)
	default:
		return String(fmt.Sprint(t))
	}
}

func liftUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(u)
	}

	return Uint(u)
}

// liftPlainMap handles maps the decoder left unordered. Keys are sorted so
// the resulting dictionary is deterministic.
func liftPlainMap(m map[string]any) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	dict := NewDict()
	for _, k := range keys {
		dict.Set(k, lift(m[k]))
	}

	return dict
}
