package style

import (
	"sort"
	"strings"
)

const mediaPrefix = "@media"

// IsPseudo reports whether key is a pseudo-class selector suffix (":hover").
func IsPseudo(key string) bool {
	return strings.HasPrefix(key, ":")
}

// IsMediaQuery reports whether key wraps its block in a media condition.
func IsMediaQuery(key string) bool {
	return strings.HasPrefix(key, mediaPrefix)
}

// mediaPredicate strips the @media marker from a media-query key.
func mediaPredicate(key string) string {
	return strings.TrimSpace(strings.TrimPrefix(key, mediaPrefix))
}

// pseudoPrecedence orders interactive states so later states win (LVHFA).
var pseudoPrecedence = map[string]int{
	":link":    1,
	":visited": 2,
	":hover":   3,
	":focus":   4,
	":active":  5,
}

// lessPseudo orders two style keys: unranked keys first in lexical order,
// then the ranked pseudo classes in LVHFA order.
func lessPseudo(left, right string) bool {
	l, r := pseudoPrecedence[left], pseudoPrecedence[right]
	if l != r {
		return l < r
	}
	return left < right
}

// SortPseudoClasses returns the keys of styles in rendering order.
func SortPseudoClasses(styles StyleMap) []string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return lessPseudo(keys[i], keys[j])
	})
	return keys
}
