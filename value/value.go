package value

// Kind identifies the shape of a Value. Kind strings appear verbatim in
// type-mismatch diagnostics, so they are short lowercase nouns.
type Kind string

// The kinds a Value can take.
const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindInt    Kind = "integer"
	KindUint   Kind = "unsigned integer"
	KindFloat  Kind = "float"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindMap    Kind = "map"
)

// Value is a node in a structured configuration tree: a scalar, an Array,
// or a *Dict. Interface projects the node back onto plain Go types
// (nil, bool, int64, uint64, float64, string, []any, map[string]any),
// losing dictionary key order.
type Value interface {
	Kind() Kind
	Interface() any
}

// Null is the absent value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Interface() any { return nil }

// Bool is a boolean scalar.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (b Bool) Interface() any { return bool(b) }

// Int is a signed integer scalar. Every signed Go integer fits; values that
// exceed the int64 range arrive as Uint instead.
type Int int64

func (Int) Kind() Kind { return KindInt }

func (i Int) Interface() any { return int64(i) }

// Uint is an unsigned integer scalar above the int64 range. Smaller
// unsigned values normalize to Int during serialization so that equal
// numbers compare equal regardless of the source type.
type Uint uint64

func (Uint) Kind() Kind { return KindUint }

func (u Uint) Interface() any { return uint64(u) }

// Float is a floating-point scalar.
type Float float64

func (Float) Kind() Kind { return KindFloat }

func (f Float) Interface() any { return float64(f) }

// String is a text scalar.
type String string

func (String) Kind() Kind { return KindString }

func (s String) Interface() any { return string(s) }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }

func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}

	return out
}
