package stylegen

import (
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/plugin"
)

// MixinFunc expands the value of a mixin key into styles.
type MixinFunc = plugin.MixinFunc

// Mixin replaces key, wherever it appears, with the styles fn returns.
// Properties written next to the key take precedence.
func Mixin(key string, fn MixinFunc) StyleTransform {
	return plugin.Mixin(key, fn)
}

// Extend merges a style map, or a list of style maps, into the
// surrounding styles. Use it as Mixin("extend", Extend).
func Extend(value any) StyleMap {
	return plugin.Extend(value)
}

// ExtractCSS parses CSS declaration text into styles. Use it as
// Mixin("css", ExtractCSS(log)).
func ExtractCSS(log *zap.Logger) MixinFunc {
	return plugin.ExtractCSS(log)
}

// FriendlyClassName makes generated class names valid CSS identifiers,
// optionally prefixed.
func FriendlyClassName(prefix string) ClassNameTransform {
	return plugin.FriendlyClassName(prefix)
}

// StyleLogger logs every style map at debug level.
func StyleLogger(log *zap.Logger) StyleTransform {
	return plugin.StyleLogger(log)
}
