package style

// ExtractDynamicStyles moves every dynamic value out of styles and returns
// them in a map of the same shape. styles is mutated in place.
//
// Functions and plain properties holding objects move as a whole.
// Pseudo-class and media-query blocks are searched recursively: a block
// that still has static content stays in styles and only its dynamic
// leaves are returned, a block with nothing static left is removed from
// styles and returned as extracted.
func ExtractDynamicStyles(styles StyleMap) StyleMap {
	dynamic := make(StyleMap)

	for property, value := range styles {
		switch kindOf(value) {
		case kindMap:
			nested, _ := asMap(value)
			if !IsPseudo(property) && !IsMediaQuery(property) {
				dynamic[property] = value
				delete(styles, property)
				continue
			}

			inner := ExtractDynamicStyles(nested)
			if len(inner) > 0 {
				dynamic[property] = inner
			}
			if len(nested) == 0 {
				delete(styles, property)
			}

		case kindFunc:
			dynamic[property] = value
			delete(styles, property)
		}
	}

	return dynamic
}

// SplitDynamicStyles partitions styles into its static and dynamic parts
// without touching the input.
func SplitDynamicStyles(styles StyleMap) (static, dynamic StyleMap) {
	static = Clone(styles)
	if static == nil {
		static = make(StyleMap)
	}
	dynamic = ExtractDynamicStyles(static)
	return static, dynamic
}

// splitBaseStyles removes the flat static properties from styles and
// returns them. What remains are pseudo-class and media-query blocks.
func splitBaseStyles(styles StyleMap) StyleMap {
	base := make(StyleMap)
	for property, value := range styles {
		if kindOf(value) == kindMap {
			continue
		}
		base[property] = value
		delete(styles, property)
	}
	return base
}
