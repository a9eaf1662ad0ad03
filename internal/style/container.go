package style

import (
	"sync"
)

// Rule is a registered CSS rule. Media is empty for unconditional rules.
type Rule struct {
	Selector   string
	Properties StyleMap
	Media      string
}

// Conflict records a registration that reused a selector with different
// content. The first registration stays in effect.
type Conflict struct {
	Selector string
	Media    string
	Kept     StyleMap
	Rejected StyleMap
}

type ruleKey struct {
	media    string
	selector string
}

// Container accumulates the rules and dynamic fragments of every render.
// It holds at most one rule per selector and media condition, keeps
// insertion order for deterministic output, and is safe for concurrent use.
type Container struct {
	mu sync.RWMutex

	rules   []Rule
	index   map[ruleKey]int
	media   []string
	seenMQ  map[string]bool
	dynamic map[string]StyleMap
	dynKeys []string

	conflicts []Conflict
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	c := &Container{}
	c.reset()
	return c
}

func (c *Container) reset() {
	c.rules = nil
	c.index = make(map[ruleKey]int)
	c.media = nil
	c.seenMQ = make(map[string]bool)
	c.dynamic = make(map[string]StyleMap)
	c.dynKeys = nil
	c.conflicts = nil
}

// Add registers properties under selector, optionally inside a media
// condition. The first writer for a selector wins; registering identical
// content again is a no-op and empty property maps are ignored.
// It reports whether a new rule was stored.
func (c *Container) Add(selector string, properties StyleMap, media ...string) bool {
	if len(properties) == 0 {
		return false
	}
	var mq string
	if len(media) > 0 {
		mq = media[0]
	}
	key := ruleKey{media: mq, selector: selector}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, exists := c.index[key]; exists {
		if !sameContent(c.rules[i].Properties, properties) {
			c.conflicts = append(c.conflicts, Conflict{
				Selector: selector,
				Media:    mq,
				Kept:     c.rules[i].Properties,
				Rejected: Clone(properties),
			})
		}
		return false
	}

	c.index[key] = len(c.rules)
	c.rules = append(c.rules, Rule{Selector: selector, Properties: Clone(properties), Media: mq})
	if mq != "" && !c.seenMQ[mq] {
		c.seenMQ[mq] = true
		c.media = append(c.media, mq)
	}
	return true
}

// AddDynamic registers the unresolved styles of className. The first
// registration for a class name wins.
func (c *Container) AddDynamic(className string, dynamic StyleMap) bool {
	if len(dynamic) == 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.dynamic[className]; exists {
		return false
	}
	c.dynamic[className] = dynamic
	c.dynKeys = append(c.dynKeys, className)
	return true
}

// Rules returns a snapshot of every rule in registration order.
func (c *Container) Rules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Rule returns the rule registered for selector under media.
func (c *Container) Rule(selector, media string) (Rule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[ruleKey{media: media, selector: selector}]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// MediaQueries returns the distinct media conditions in first-seen order.
func (c *Container) MediaQueries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.media...)
}

// Dynamic returns the dynamic fragment registered for className.
func (c *Container) Dynamic(className string) (StyleMap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.dynamic[className]
	return d, ok
}

// DynamicClassNames returns the class names with dynamic fragments in
// registration order.
func (c *Container) DynamicClassNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.dynKeys...)
}

// Resolve materializes the dynamic fragment of className against props.
func (c *Container) Resolve(className string, props Props) (StyleMap, bool) {
	d, ok := c.Dynamic(className)
	if !ok {
		return nil, false
	}
	return ResolveDynamic(d, props), true
}

// Conflicts returns every rejected re-registration.
func (c *Container) Conflicts() []Conflict {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Conflict(nil), c.conflicts...)
}

// Len returns the number of registered rules.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}

// Reset clears all registered rules, dynamic fragments and conflicts.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}
