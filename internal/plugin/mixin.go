package plugin

import (
	"github.com/yacobolo/stylegen/internal/style"
)

// MixinFunc expands the value of a mixin key into style properties.
type MixinFunc func(value any) style.StyleMap

// Mixin replaces every occurrence of key, at any nesting level, with the
// properties fn returns. Properties written next to the mixin win over the
// ones it produces.
func Mixin(key string, fn MixinFunc) StyleTransform {
	var apply func(styles style.StyleMap)
	apply = func(styles style.StyleMap) {
		for property, value := range styles {
			if nested, ok := toMap(value); ok && property != key {
				apply(nested)
			}
		}

		value, ok := styles[key]
		if !ok {
			return
		}
		delete(styles, key)
		for property, v := range fn(value) {
			if _, exists := styles[property]; !exists {
				styles[property] = v
			}
		}
	}

	return func(styles style.StyleMap) style.StyleMap {
		if styles != nil {
			apply(styles)
		}
		return styles
	}
}

// Extend merges a style map value into the surrounding block:
//
//	{"extend": {"color": "red"}, "padding": 4}
//
// A list of maps is merged in order, later maps overriding earlier ones.
func Extend(value any) style.StyleMap {
	if m, ok := toMap(value); ok {
		return style.Clone(m)
	}
	if list, ok := value.([]any); ok {
		out := make(style.StyleMap)
		for _, item := range list {
			for k, v := range Extend(item) {
				out[k] = v
			}
		}
		return out
	}
	return nil
}

func toMap(v any) (style.StyleMap, bool) {
	switch m := v.(type) {
	case style.StyleMap:
		return m, true
	case map[string]any:
		return style.StyleMap(m), true
	}
	return nil, false
}
