// Package style compiles style maps into atomic, deduplicated CSS rules.
//
// A style map holds CSS properties, nested pseudo-class and media-query
// blocks, and stateful values that can only be resolved at use time. The
// renderer separates the stateful parts, derives a content-addressed class
// name from the flat properties and registers every resulting rule in a
// Container.
package style

import "reflect"

// StyleMap maps a property or selector key to its value.
//
// Values are primitives (strings, numbers, bools), arrays (fallback values,
// never recursed into), functions (stateful values) or nested maps under
// pseudo-class and media-query keys.
type StyleMap map[string]any

// Props is the runtime context a stateful value is resolved against.
type Props map[string]any

// StatefulValue is a property value computed from runtime props.
type StatefulValue func(Props) any

// valueKind classifies a style map value.
type valueKind int

const (
	kindPrimitive valueKind = iota
	kindArray
	kindFunc
	kindMap
)

// kindOf reports how a value is treated by the renderer.
func kindOf(v any) valueKind {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return kindPrimitive
	case StyleMap, map[string]any:
		return kindMap
	case StatefulValue, func(Props) any:
		return kindFunc
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Func:
		return kindFunc
	case reflect.Slice, reflect.Array:
		return kindArray
	}
	return kindPrimitive
}

// asMap returns v as a StyleMap sharing the same underlying map.
func asMap(v any) (StyleMap, bool) {
	switch m := v.(type) {
	case StyleMap:
		return m, true
	case map[string]any:
		return StyleMap(m), true
	}
	return nil, false
}

// IsStatic reports whether v renders directly to a CSS declaration.
func IsStatic(v any) bool {
	k := kindOf(v)
	return k == kindPrimitive || k == kindArray
}

// IsWellFormed reports whether v is a primitive CSS value, an array, a
// function or a map. Anything else is passed through by the renderer and
// only surfaces once the stylesheet is serialized.
func IsWellFormed(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	switch kindOf(v) {
	case kindArray, kindFunc, kindMap:
		return true
	}
	return false
}

// Clone deep-copies nested maps. Arrays and functions are shared.
func Clone(styles StyleMap) StyleMap {
	if styles == nil {
		return nil
	}
	out := make(StyleMap, len(styles))
	for k, v := range styles {
		if m, ok := asMap(v); ok {
			out[k] = Clone(m)
			continue
		}
		out[k] = v
	}
	return out
}
