package value

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Dict is a dictionary of configuration values: a mapping from string keys
// to values that preserves insertion order. Keys are unique; setting an
// existing key replaces its value in place without changing its position.
type Dict struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: orderedmap.New[string, Value]()}
}

func (*Dict) Kind() Kind { return KindMap }

// Interface projects the dictionary onto a plain map[string]any. Key order
// is lost; use Range or Keys when order matters.
func (d *Dict) Interface() any {
	out := make(map[string]any, d.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value.Interface()
	}

	return out
}

// Set stores v under key, appending the key if it is new.
func (d *Dict) Set(key string, v Value) {
	d.entries.Set(key, v)
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (Value, bool) {
	return d.entries.Get(key)
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return d.entries.Len()
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (d *Dict) Range(fn func(key string, v Value) bool) {
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a deep copy: the same keys in the same order, with nested
// dictionaries and arrays copied recursively so the result can be extended
// or rewritten without touching the original. Scalars are immutable and
// shared.
func (d *Dict) Clone() *Dict {
	out := NewDict()
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, copyValue(pair.Value))
	}

	return out
}

// copyValue deep-copies container values; scalars pass through.
func copyValue(v Value) Value {
	switch t := v.(type) {
	case *Dict:
		return t.Clone()
	case Array:
		out := make(Array, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}

		return out
	default:
		return v
	}
}
