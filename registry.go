package tween

import "slices"

// DefaultGroupTag is the reserved tag of a Registry's default group.
const DefaultGroupTag = "tween.default"

// Registry owns the tag → Group lookup and the default Group. Hosts
// normally use the package-level default registry through New, GroupWithTag
// and Update; tests and multi-scene hosts can keep their own.
type Registry struct {
	groups map[string]*Group
	order  []*Group // registration order
	def    *Group
	debug  bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]*Group)}
}

// GroupWithTag returns the group registered under tag, creating it if
// needed. Tagged groups leave the registry when they complete and are
// recreated by the next lookup.
func (r *Registry) GroupWithTag(tag string) *Group {
	if tag == DefaultGroupTag {
		return r.DefaultGroup()
	}
	if g, ok := r.groups[tag]; ok {
		return g
	}
	g := NewGroup(tag)
	r.register(g)
	return g
}

// DefaultGroup returns the registry's default group. It is created on first
// use and never removed.
func (r *Registry) DefaultGroup() *Group {
	if r.def == nil {
		r.def = NewGroup(DefaultGroupTag)
		r.def.removeOnCompletion = false
		r.register(r.def)
	}
	return r.def
}

// Lookup returns the group registered under tag without creating one.
func (r *Registry) Lookup(tag string) (*Group, bool) {
	g, ok := r.groups[tag]
	return g, ok
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.order))
	for i, g := range r.order {
		tags[i] = g.name
	}
	return tags
}

// Update advances every registered group by dt, in registration order.
// Groups pruned during the pass still finish it.
func (r *Registry) Update(dt float64) {
	for _, g := range slices.Clone(r.order) {
		g.Update(dt)
	}
}

// New creates a Tween in the default group.
func (r *Registry) New(duration float64) *Tween {
	return newTween(duration, r.DefaultGroup())
}

// NewWithTag creates a Tween in the group registered under tag.
func (r *Registry) NewWithTag(duration float64, tag string) *Tween {
	return newTween(duration, r.GroupWithTag(tag))
}

// NewWithGroup creates a Tween in g, or in the default group when g is nil.
func (r *Registry) NewWithGroup(duration float64, g *Group) *Tween {
	if g == nil {
		g = r.DefaultGroup()
	}
	return newTween(duration, g)
}

func (r *Registry) register(g *Group) {
	if old, ok := r.groups[g.name]; ok {
		r.order = removeFirst(r.order, func(o *Group) bool { return o == old })
	}
	g.registry = r
	r.groups[g.name] = g
	r.order = append(r.order, g)
}

func (r *Registry) remove(g *Group) {
	if r.groups[g.name] != g {
		return
	}
	delete(r.groups, g.name)
	r.order = removeFirst(r.order, func(o *Group) bool { return o == g })
	r.debugf("group %q removed from registry", g.name)
}

func (r *Registry) owns(g *Group) bool {
	return r.groups[g.name] == g
}

var defaultRegistry = NewRegistry()

// Default returns the package-level Registry used by New, NewWithTag,
// NewWithGroup, GroupWithTag, DefaultGroup and Update.
func Default() *Registry { return defaultRegistry }

// New creates a Tween in the default registry's default group.
func New(duration float64) *Tween { return defaultRegistry.New(duration) }

// NewWithTag creates a Tween in the default registry's group for tag.
func NewWithTag(duration float64, tag string) *Tween {
	return defaultRegistry.NewWithTag(duration, tag)
}

// NewWithGroup creates a Tween in g, or in the default group when g is nil.
func NewWithGroup(duration float64, g *Group) *Tween {
	return defaultRegistry.NewWithGroup(duration, g)
}

// GroupWithTag returns the default registry's group for tag.
func GroupWithTag(tag string) *Group { return defaultRegistry.GroupWithTag(tag) }

// DefaultGroup returns the default registry's default group.
func DefaultGroup() *Group { return defaultRegistry.DefaultGroup() }

// Update advances every group in the default registry.
func Update(dt float64) { defaultRegistry.Update(dt) }
