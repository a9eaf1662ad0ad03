// Package plugin runs the transforms applied around the renderer: style
// transforms rewrite a style map before it is rendered, class-name
// transforms rewrite the generated class name afterwards.
package plugin

import (
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/style"
)

// Plugin is either a StyleTransform or a ClassNameTransform.
type Plugin interface {
	plugin()
}

// StyleTransform rewrites a style map. It may mutate and return its input.
type StyleTransform func(style.StyleMap) style.StyleMap

// ClassNameTransform rewrites a generated class name.
type ClassNameTransform func(string) string

func (StyleTransform) plugin()     {}
func (ClassNameTransform) plugin() {}

// Pipeline applies plugins in registration order.
type Pipeline struct {
	styles     []StyleTransform
	classNames []ClassNameTransform
	log        *zap.Logger
}

// NewPipeline creates a pipeline running plugins.
func NewPipeline(log *zap.Logger, plugins ...Plugin) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pipeline{log: log.Named("plugins")}
	p.Use(plugins...)
	return p
}

// Use appends plugins to the pipeline. Nil plugins are skipped.
func (p *Pipeline) Use(plugins ...Plugin) {
	for _, pl := range plugins {
		switch t := pl.(type) {
		case StyleTransform:
			if t != nil {
				p.styles = append(p.styles, t)
			}
		case ClassNameTransform:
			if t != nil {
				p.classNames = append(p.classNames, t)
			}
		}
	}
}

// Len returns the number of registered plugins.
func (p *Pipeline) Len() int {
	return len(p.styles) + len(p.classNames)
}

// TransformStyles runs every style transform over styles.
func (p *Pipeline) TransformStyles(styles style.StyleMap) style.StyleMap {
	for i, transform := range p.styles {
		styles = transform(styles)
		if styles == nil {
			p.log.Debug("Style transform returned nil map", zap.Int("plugin", i))
			styles = make(style.StyleMap)
		}
	}
	return styles
}

// TransformClassName runs every class-name transform over className.
func (p *Pipeline) TransformClassName(className string) string {
	for _, transform := range p.classNames {
		className = transform(className)
	}
	return className
}
