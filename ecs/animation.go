package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// AnimationData is the component payload: the group the entity plays.
type AnimationData struct {
	Group *tween.Group
}

// Animation is the Donburi component type for AnimationData.
var Animation = donburi.NewComponentType[AnimationData]()

// GroupCompletedEvent is published by UpdateSystem when an entity's group
// completes, just before the entity is removed.
type GroupCompletedEvent struct {
	Entity donburi.Entity
	Group  *tween.Group
}

// GroupCompletedEventType is the Donburi event type for GroupCompletedEvent.
// Subscribe to it and drain it with ProcessEvents.
var GroupCompletedEventType = events.NewEventType[GroupCompletedEvent]()

var animationQuery = donburi.NewQuery(filter.Contains(Animation))

// NewAnimationEntity creates an entity that plays g.
func NewAnimationEntity(world donburi.World, g *tween.Group) donburi.Entity {
	entity := world.Create(Animation)
	Animation.SetValue(world.Entry(entity), AnimationData{Group: g})
	return entity
}

// GroupOf returns the group played by entity, or nil if the entity is gone
// or has no Animation component.
func GroupOf(world donburi.World, entity donburi.Entity) *tween.Group {
	if !world.Valid(entity) {
		return nil
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(Animation) {
		return nil
	}
	return Animation.Get(entry).Group
}

// UpdateSystem advances every animated entity's group by dt. Entities whose
// group has completed are announced on GroupCompletedEventType and removed
// once the query is done. It returns how many entities were removed.
func UpdateSystem(world donburi.World, dt float64) int {
	var done []donburi.Entity
	animationQuery.Each(world, func(entry *donburi.Entry) {
		g := Animation.Get(entry).Group
		if g == nil {
			return
		}
		g.Update(dt)
		if g.IsCompleted() {
			GroupCompletedEventType.Publish(world, GroupCompletedEvent{Entity: entry.Entity(), Group: g})
			done = append(done, entry.Entity())
		}
	})

	for _, entity := range done {
		world.Remove(entity)
	}
	return len(done)
}
