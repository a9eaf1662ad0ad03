package style

import (
	"go.uber.org/zap"
)

// Renderer turns style maps into class names and registers the resulting
// rules in a Container.
type Renderer struct {
	container *Container
	log       *zap.Logger
}

// NewRenderer creates a renderer writing into container. A nil logger
// disables logging.
func NewRenderer(container *Container, log *zap.Logger) *Renderer {
	if container == nil {
		container = NewContainer()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{container: container, log: log.Named("renderer")}
}

// Container returns the container the renderer writes into.
func (r *Renderer) Container() *Container {
	return r.container
}

// Render is RenderStaticStyles on a private copy of styles.
func (r *Renderer) Render(styles StyleMap, scope, selector string) string {
	return r.RenderStaticStyles(Clone(styles), scope, selector)
}

// RenderStaticStyles registers the rules of styles scoped to scope and
// returns the generated class name. styles is consumed: dynamic values and
// flat properties are removed from it while rendering.
func (r *Renderer) RenderStaticStyles(styles StyleMap, scope, selector string) string {
	if styles == nil {
		styles = make(StyleMap)
	}

	dynamic := ExtractDynamicStyles(styles)
	base := splitBaseStyles(styles)
	className := ClassName(scope, selector, base)

	if len(base) > 0 {
		r.container.Add("."+className, base)
	}
	if len(dynamic) > 0 {
		r.container.AddDynamic(className, dynamic)
	}

	// Flat leftovers cannot exist at the top level: splitBaseStyles took them.
	r.RenderSpecialStyles(className, styles, "", "")

	r.log.Debug("Rendered styles",
		zap.String("class", className),
		zap.Int("base", len(base)),
		zap.Int("dynamic", len(dynamic)),
		zap.Int("special", len(styles)))

	return className
}

// RenderSpecialStyles registers the pseudo-class and media-query blocks of
// styles for selector and returns the flat properties found at this level.
//
// pseudo is the pseudo-class chain and media the compound media condition
// accumulated by the enclosing blocks. Nested rules are registered before
// the rule of the block containing them.
func (r *Renderer) RenderSpecialStyles(selector string, styles StyleMap, pseudo, media string) StyleMap {
	extension := make(StyleMap)

	for _, property := range SortPseudoClasses(styles) {
		value := styles[property]

		nested, ok := asMap(value)
		if !ok {
			extension[property] = value
			continue
		}

		switch {
		case IsPseudo(property):
			inner := r.RenderSpecialStyles(selector, nested, pseudo+property, media)
			r.container.Add("."+selector+pseudo+property, inner, media)

		case IsMediaQuery(property):
			newMedia := mediaPredicate(property)
			if media != "" {
				newMedia = media + " and " + newMedia
			}
			inner := r.RenderSpecialStyles(selector, nested, pseudo, newMedia)
			r.container.Add("."+selector+pseudo, inner, newMedia)

		default:
			r.log.Debug("Skipping nested block without selector meaning",
				zap.String("selector", selector),
				zap.String("key", property))
		}
	}

	return extension
}
