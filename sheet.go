package stylegen

import (
	"sort"

	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/plugin"
	"github.com/yacobolo/stylegen/internal/style"
)

// Sheet renders style maps into class names through a plugin pipeline and
// collects the resulting rules in a Container.
type Sheet struct {
	container *style.Container
	pipeline  *plugin.Pipeline
	renderer  *style.Renderer
	log       *zap.Logger
}

// Option configures a Sheet.
type Option func(*sheetOptions)

type sheetOptions struct {
	container *style.Container
	plugins   []plugin.Plugin
	log       *zap.Logger
}

// WithContainer makes the sheet write into an existing container, so
// several sheets can share one stylesheet.
func WithContainer(c *Container) Option {
	return func(o *sheetOptions) {
		o.container = c
	}
}

// WithPlugins registers plugins in the given order.
func WithPlugins(plugins ...Plugin) Option {
	return func(o *sheetOptions) {
		o.plugins = append(o.plugins, plugins...)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *sheetOptions) {
		o.log = log
	}
}

// New creates a Sheet.
func New(opts ...Option) *Sheet {
	o := sheetOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.container == nil {
		o.container = style.NewContainer()
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	log := o.log.Named("sheet")
	return &Sheet{
		container: o.container,
		pipeline:  plugin.NewPipeline(log, o.plugins...),
		renderer:  style.NewRenderer(o.container, log),
		log:       log,
	}
}

// Use appends plugins to the sheet's pipeline.
func (s *Sheet) Use(plugins ...Plugin) {
	s.pipeline.Use(plugins...)
}

// Render registers styles under scope and returns the class name to apply.
// styles is not modified. Style plugins see a private copy; class-name
// plugins rewrite the scope so the emitted selectors match the returned
// name.
func (s *Sheet) Render(styles StyleMap, scope, selector string) string {
	transformed := s.pipeline.TransformStyles(style.Clone(styles))
	scope = s.pipeline.TransformClassName(scope)
	return s.renderer.RenderStaticStyles(transformed, scope, selector)
}

// Create renders every selector of a component and returns the class name
// of each. Selectors are rendered in sorted order so the output does not
// depend on map iteration.
func (s *Sheet) Create(scope string, selectors map[string]StyleMap) map[string]string {
	names := make([]string, 0, len(selectors))
	for name := range selectors {
		names = append(names, name)
	}
	sort.Strings(names)

	classes := make(map[string]string, len(selectors))
	for _, name := range names {
		classes[name] = s.Render(selectors[name], scope, name)
	}
	return classes
}

// Resolve computes the dynamic styles of className against props.
func (s *Sheet) Resolve(className string, props Props) (StyleMap, bool) {
	return s.container.Resolve(className, props)
}

// CSS returns the stylesheet rendered so far.
func (s *Sheet) CSS() string {
	return s.container.CSS()
}

// Container returns the container the sheet writes into.
func (s *Sheet) Container() *Container {
	return s.container
}

// Reset clears every registered rule and dynamic fragment.
func (s *Sheet) Reset() {
	s.container.Reset()
}
