package plugin

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/style"
)

// FriendlyClassName makes class names valid CSS identifiers and prefixes
// them with prefix, if any. Characters outside [A-Za-z0-9_-] become "_" and
// a leading digit is escaped with "_".
func FriendlyClassName(prefix string) ClassNameTransform {
	return func(className string) string {
		var b strings.Builder
		b.Grow(len(prefix) + len(className) + 1)
		if prefix != "" {
			b.WriteString(sanitizeIdent(prefix))
			b.WriteByte('-')
		}
		name := sanitizeIdent(className)
		if b.Len() == 0 && name != "" && unicode.IsDigit(rune(name[0])) {
			b.WriteByte('_')
		}
		b.WriteString(name)
		return b.String()
	}
}

func sanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

// StyleLogger logs every style map passing through the pipeline at debug
// level and returns it unchanged.
func StyleLogger(log *zap.Logger) StyleTransform {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("style-logger")
	return func(styles style.StyleMap) style.StyleMap {
		if ce := log.Check(zap.DebugLevel, "Styles"); ce != nil {
			ce.Write(zap.Int("properties", len(styles)), zap.String("css", style.FormatRule("&", staticOnly(styles))))
		}
		return styles
	}
}

// staticOnly keeps the flat static properties of styles.
func staticOnly(styles style.StyleMap) style.StyleMap {
	out := make(style.StyleMap, len(styles))
	for k, v := range styles {
		if style.IsStatic(v) {
			out[k] = v
		}
	}
	return out
}
