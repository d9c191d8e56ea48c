// Package ecs runs tween groups as part of a [Donburi] world.
//
// Each entity with the [Animation] component owns one [tween.Group].
// [UpdateSystem] advances every such group, publishes a
// [GroupCompletedEvent] when one finishes and removes the entity.
//
// Usage:
//
//	g := tween.NewGroup("door")
//	tween.NewWithGroup(400, g).From(door).To(tween.Values{"y": tween.Text("-64")}).Start()
//	ecs.NewAnimationEntity(world, g)
//
//	// each tick:
//	ecs.UpdateSystem(world, dt)
//	ecs.GroupCompletedEventType.ProcessEvents(world)
//
// Groups handed to the world should come from [tween.NewGroup]; a group that
// also belongs to a Registry is advanced twice per tick if the host keeps
// calling Registry.Update.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
