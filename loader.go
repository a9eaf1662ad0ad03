package stylegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Component is one scope of a style document: a named group of selectors
// rendered under the same class-name scope.
type Component struct {
	Scope     string
	File      string
	Selectors []Selector
}

// Selector is a single style map of a component.
type Selector struct {
	Name   string
	Styles StyleMap
}

// LoadStyles decodes a style document. Documents are YAML (JSON is accepted
// as a subset) shaped as scope -> selector -> style map:
//
//	Btn:
//	  default:
//	    color: red
//	    ":hover":
//	      color: blue
//	    "@media (min-width: 600px)":
//	      padding: 8px
//
// Components and selectors are returned in sorted order.
func LoadStyles(data []byte, file string) ([]Component, error) {
	var doc map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}

	scopes := make([]string, 0, len(doc))
	for scope := range doc {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	components := make([]Component, 0, len(scopes))
	for _, scope := range scopes {
		selectors, ok := normalize(doc[scope]).(StyleMap)
		if !ok {
			return nil, fmt.Errorf("%s: scope %q: expected a mapping of selectors, got %T", file, scope, doc[scope])
		}

		component := Component{Scope: scope, File: file}
		for _, name := range sortedKeys(selectors) {
			styles, ok := selectors[name].(StyleMap)
			if !ok {
				return nil, fmt.Errorf("%s: %s.%s: expected a style mapping, got %T", file, scope, name, selectors[name])
			}
			component.Selectors = append(component.Selectors, Selector{Name: name, Styles: styles})
		}
		components = append(components, component)
	}

	return components, nil
}

// loadStyleFile reads and decodes a style document from disk.
func loadStyleFile(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadStyles(data, path)
}

// normalize converts decoded YAML values into style maps. Mapping keys that
// decode as non-strings (e.g. 100) are formatted back to text.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(StyleMap, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(StyleMap, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}

func sortedKeys(m StyleMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
