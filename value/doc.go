// Package value defines the structured value tree used for configuration
// data: scalars, arrays, and insertion-ordered dictionaries.
//
// Every node implements the Value interface and reports its Kind. Trees are
// produced either by serializing an arbitrary Go value with From, or by
// parsing a YAML document with FromYAML. Dictionaries preserve the order in
// which keys were inserted, so a configuration file's layout survives the
// round trip into a merge engine.
package value
