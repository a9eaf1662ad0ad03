package style

// ResolveDynamic evaluates the stateful values of dynamic against props.
// Nested blocks are resolved recursively; any other value is copied.
func ResolveDynamic(dynamic StyleMap, props Props) StyleMap {
	out := make(StyleMap, len(dynamic))
	for property, value := range dynamic {
		switch fn := value.(type) {
		case StatefulValue:
			out[property] = fn(props)
			continue
		case func(Props) any:
			out[property] = fn(props)
			continue
		}

		if nested, ok := asMap(value); ok {
			out[property] = ResolveDynamic(nested, props)
			continue
		}
		out[property] = value
	}
	return out
}
