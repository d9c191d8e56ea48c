// Package tween animates numeric properties over time for hosts that own
// their frame loop.
//
// Nothing in this package runs on its own: the host calls [Update] (or
// [Registry.Update], or [Group.Update]) once per tick with the time that
// passed, in whatever unit it also uses for durations. All callbacks fire
// synchronously inside that call.
//
// # Quick start
//
//	hero := tween.Props{"x": 0, "y": 0}
//
//	tween.New(1000).
//		From(hero).
//		To(tween.Values{"x": tween.Number(100), "y": tween.Text("+40")}).
//		Easing(easing.Quadratic.Out).
//		OnComplete(func(tween.Target) { log.Println("arrived") }).
//		Start()
//
//	// every frame:
//	tween.Update(dtMillis)
//
// # Targets and values
//
// A [Target] is anything with Get/Set by property name. [Props] is a plain
// map; [Fields] writes straight into float64 fields of your own structs.
// End values are a [Number], a [Text] that is either absolute ("12") or
// relative to the start value ("+10", "-3"), or a [Path] of control points
// blended by the Tween's interpolation function after the start value is
// prepended.
//
// Properties the target does not have when the Tween starts are skipped
// for the life of that Tween. Text with no numeric prefix is skipped on
// every tick. Nothing is reported as an error.
//
// # Lifecycle
//
// [Tween.Start] registers the Tween with its [Group] and captures start
// values (once per property). [Tween.Update] consumes any delay, fires
// OnStart once, writes eased values and fires OnUpdate. When a cycle ends
// the Tween either repeats (OnRepeat, optional yoyo and repeat delay) or
// completes (OnComplete, then every chained Tween is started in order).
// [Tween.Stop] interrupts it and stops its chain. [Tween.End] finishes the
// current cycle at once; it cannot complete a [RepeatForever] Tween.
//
// # Groups and registries
//
// A [Group] updates its members in insertion order and completes once none
// of them is playing, firing its OnComplete callback a single time. A
// [Registry] maps tags to groups and owns a default group that is never
// removed; tagged groups leave the registry when they complete. The
// package-level functions use a default Registry; create more with
// [NewRegistry] when independent timelines are needed.
//
// Nothing here is safe for concurrent use. Hosts with several goroutines
// must funnel every call onto one.
//
// # Scripts
//
// [LoadScript] reads tween definitions from JSON so animation timings can
// live in data files; [Script.Build] turns them into Tweens bound to named
// targets.
//
// Subpackages: [easing] holds the curves, [interpolation] the path
// blending functions, ebitenloop drives a Registry from an Ebitengine game
// and the ecs module plugs groups into a Donburi world.
//
// [easing]: https://pkg.go.dev/github.com/phanxgames/tween/easing
// [interpolation]: https://pkg.go.dev/github.com/phanxgames/tween/interpolation
package tween
