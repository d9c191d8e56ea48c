package tween

import "slices"

// Group advances a set of Tweens together and reports when none of them is
// playing any more. Members are updated in insertion order.
type Group struct {
	name       string
	tweens     []*Tween
	onComplete func()
	started    bool
	completed  bool

	removeOnCompletion bool
	registry           *Registry // nil for groups made with NewGroup
}

// NewGroup creates a Group that belongs to no Registry. It is never pruned
// and must be updated by the caller.
func NewGroup(name string) *Group {
	return &Group{name: name, removeOnCompletion: true}
}

// Name returns the group's tag.
func (g *Group) Name() string { return g.name }

// OnComplete sets the callback fired once when the group completes. The
// callback is cleared after it fires.
func (g *Group) OnComplete(fn func()) *Group {
	g.onComplete = fn
	return g
}

// IsCompleted reports whether the group finished since its last Add.
func (g *Group) IsCompleted() bool { return g.completed }

// All returns the member Tweens. The returned slice MUST NOT be mutated.
func (g *Group) All() []*Tween { return g.tweens }

// RemoveAll drops every member without stopping it.
func (g *Group) RemoveAll() { g.tweens = nil }

// Add appends t and marks the group started. A Tween that is already a
// member is not added twice.
func (g *Group) Add(t *Tween) {
	if !slices.Contains(g.tweens, t) {
		g.tweens = append(g.tweens, t)
	}
	g.started = true
	g.completed = false

	if g.registry != nil && !g.registry.owns(g) {
		g.debugf("warning: tween %d added to group %q which is no longer registered", t.id, g.name)
	}
}

// Remove drops the first member whose ID matches t's.
func (g *Group) Remove(t *Tween) {
	g.tweens = removeFirst(g.tweens, func(m *Tween) bool { return m.id == t.id })
}

// Update advances every playing member by dt. Callbacks fired by members
// may add or remove members; the pass sees those changes as it goes. When no
// member is left playing the group completes: members are cleared, the
// completion callback fires and, for tagged groups, the group leaves its
// Registry.
func (g *Group) Update(dt float64) {
	if g.completed {
		return
	}

	anyPlaying := false
	for i := 0; i < len(g.tweens); i++ {
		t := g.tweens[i]
		if t.playing {
			t.Update(dt)
			anyPlaying = anyPlaying || t.playing
		}
	}

	if anyPlaying || !g.started {
		return
	}

	g.completed = true
	g.started = false
	g.RemoveAll()

	if g.onComplete != nil {
		g.onComplete()
		g.onComplete = nil
	}
	g.debugf("group %q completed", g.name)

	if g.removeOnCompletion && g.name != "" && g.registry != nil {
		g.registry.remove(g)
	}
}

func (g *Group) debugf(format string, args ...any) {
	if g.registry != nil {
		g.registry.debugf(format, args...)
	}
}

// removeFirst deletes the first element of s matching pred, keeping order.
func removeFirst[T any](s []T, pred func(T) bool) []T {
	i := slices.IndexFunc(s, pred)
	if i < 0 {
		return s
	}
	return slices.Delete(s, i, i+1)
}
