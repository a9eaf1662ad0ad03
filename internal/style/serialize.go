package style

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// CSS renders the container as stylesheet text.
func (c *Container) CSS() string {
	var b strings.Builder
	_ = c.WriteCSS(&b)
	return b.String()
}

// WriteCSS writes every rule to w. Unconditional rules come first in
// registration order, followed by one @media block per media condition.
func (c *Container) WriteCSS(w io.Writer) error {
	rules := c.Rules()
	grouped := make(map[string][]Rule)
	for _, rule := range rules {
		if rule.Media == "" {
			if _, err := io.WriteString(w, FormatRule(rule.Selector, rule.Properties)+"\n"); err != nil {
				return err
			}
			continue
		}
		grouped[rule.Media] = append(grouped[rule.Media], rule)
	}

	for _, media := range c.MediaQueries() {
		var b strings.Builder
		b.WriteString("@media " + media + "{")
		for _, rule := range grouped[media] {
			b.WriteString(FormatRule(rule.Selector, rule.Properties))
		}
		b.WriteString("}\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatRule renders a single rule body with sorted declarations.
func FormatRule(selector string, properties StyleMap) string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteByte('{')
	first := true
	for _, name := range names {
		for _, value := range declarationValues(properties[name]) {
			if !first {
				b.WriteByte(';')
			}
			first = false
			b.WriteString(Hyphenate(name))
			b.WriteByte(':')
			b.WriteString(value)
		}
	}
	b.WriteByte('}')
	return b.String()
}

// declarationValues expands fallback arrays into one value per declaration.
func declarationValues(v any) []string {
	if kindOf(v) == kindArray {
		rv := reflect.ValueOf(v)
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, FormatValue(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{FormatValue(v)}
}

// FormatValue renders a single property value.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

// Hyphenate converts a camelCase property name to its CSS form. Names
// starting with an upper-case letter are vendor prefixed: WebkitFlex
// becomes -webkit-flex. Names that already contain a dash are kept.
func Hyphenate(name string) string {
	if strings.Contains(name, "-") {
		return name
	}

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 || name != strings.ToUpper(name) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
