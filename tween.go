package tween

import (
	"math"
	"slices"

	"github.com/phanxgames/tween/easing"
	"github.com/phanxgames/tween/interpolation"
)

// RepeatForever makes a Tween repeat without bound. Any negative repeat
// count behaves the same way.
const RepeatForever = -1

// --- ID counter ---

// tweenIDCounter is a plain counter (no atomic; tweens are single-threaded).
var tweenIDCounter uint64

func nextTweenID() uint64 {
	tweenIDCounter++
	return tweenIDCounter
}

// Tween animates numeric properties of a Target from their values at start
// to the end values given to To, over a duration measured in whatever unit
// the host passes to Update.
//
// Configuration methods return the Tween for chaining. They are meant to be
// called before Start; changing a playing Tween has no defined effect.
type Tween struct {
	id     uint64
	group  *Group
	target Target

	start map[string]float64 // captured once per property
	end   Values
	order []string             // end keys, sorted
	paths map[string][]float64 // effective control points, start value first

	duration     float64
	elapsed      float64
	delay        float64
	delayToStart float64
	ratio        float64

	repeat         int // configured count
	repeatLeft     int
	repeatDelay    float64
	hasRepeatDelay bool
	yoyo           bool
	reversed       bool

	playing    bool
	paused     bool
	startFired bool

	easing        easing.Func
	interpolation interpolation.Func

	chain []*Tween

	onStart    func(Target)
	onUpdate   func(dt float64, target Target)
	onRepeat   func(Target)
	onComplete func(Target)
	onStop     func(Target)
}

func newTween(duration float64, g *Group) *Tween {
	return &Tween{
		id:            nextTweenID(),
		group:         g,
		start:         make(map[string]float64),
		paths:         make(map[string][]float64),
		duration:      duration,
		easing:        easing.Linear.None,
		interpolation: interpolation.Linear,
	}
}

// ID returns the process-unique identifier. IDs are never reused.
func (t *Tween) ID() uint64 { return t.id }

// Target returns the animated object.
func (t *Tween) Target() Target { return t.target }

// Ratio returns elapsed/duration as of the last Update. It is not clamped
// and can exceed 1 on the tick that finishes a cycle.
func (t *Tween) Ratio() float64 { return t.ratio }

// IsPlaying reports whether the Tween has been started and has not yet
// completed or been stopped. Paused Tweens are still playing.
func (t *Tween) IsPlaying() bool { return t.playing }

// IsPaused reports whether Pause was called since the last Start or Resume.
func (t *Tween) IsPaused() bool { return t.paused }

// IsReversed reports whether the current cycle runs backwards (yoyo).
func (t *Tween) IsReversed() bool { return t.reversed }

// Group returns the Group the Tween registers with on Start.
func (t *Tween) Group() *Group { return t.group }

// ControlPoints returns the effective control points for a path property,
// including the start value prepended by Start. It returns nil before Start
// and for non-path properties.
func (t *Tween) ControlPoints(name string) []float64 {
	return slices.Clone(t.paths[name])
}

// From sets the animated object. Start values already captured from a
// previous target are discarded.
func (t *Tween) From(target Target) *Tween {
	t.target = target
	clear(t.start)
	return t
}

// To sets the end values.
func (t *Tween) To(values Values) *Tween {
	t.end = make(Values, len(values))
	t.order = t.order[:0]
	for name, v := range values {
		t.end[name] = v
		t.order = append(t.order, name)
	}
	slices.Sort(t.order)
	clear(t.paths)
	return t
}

// Duration sets the length of one cycle. Zero or negative durations finish
// on the first Update with a positive delta.
func (t *Tween) Duration(d float64) *Tween {
	t.duration = d
	return t
}

// Delay sets how much time must pass after Start before the first cycle
// begins. It is also used between repeats unless RepeatDelay is set.
func (t *Tween) Delay(amount float64) *Tween {
	t.delay = amount
	return t
}

// Repeat sets how many extra cycles run after the first. Use RepeatForever
// for no bound.
func (t *Tween) Repeat(times int) *Tween {
	t.repeat = times
	t.repeatLeft = times
	return t
}

// RepeatDelay sets the pause between repeat cycles, replacing Delay there.
func (t *Tween) RepeatDelay(amount float64) *Tween {
	t.repeatDelay = amount
	t.hasRepeatDelay = true
	return t
}

// Yoyo makes every repeat run in the opposite direction of the previous
// cycle.
func (t *Tween) Yoyo(yoyo bool) *Tween {
	t.yoyo = yoyo
	return t
}

// Easing sets the easing curve. Default is easing.Linear.None.
func (t *Tween) Easing(fn easing.Func) *Tween {
	t.easing = fn
	return t
}

// Interpolation sets how path properties are blended. Default is
// interpolation.Linear.
func (t *Tween) Interpolation(fn interpolation.Func) *Tween {
	t.interpolation = fn
	return t
}

// Chain replaces the successors started when this Tween completes. The
// Tweens are referenced, not owned.
func (t *Tween) Chain(tweens ...*Tween) *Tween {
	t.chain = slices.Clone(tweens)
	return t
}

// InGroup moves the Tween to g for its next Start.
func (t *Tween) InGroup(g *Group) *Tween {
	t.group = g
	return t
}

// OnStart is called once, on the first Update after the start delay.
func (t *Tween) OnStart(fn func(Target)) *Tween {
	t.onStart = fn
	return t
}

// OnUpdate is called on every Update that advances the Tween, after the
// target has been written.
func (t *Tween) OnUpdate(fn func(dt float64, target Target)) *Tween {
	t.onUpdate = fn
	return t
}

// OnRepeat is called each time a cycle ends and another one begins.
func (t *Tween) OnRepeat(fn func(Target)) *Tween {
	t.onRepeat = fn
	return t
}

// OnComplete is called when the last cycle ends, before chained Tweens
// start.
func (t *Tween) OnComplete(fn func(Target)) *Tween {
	t.onComplete = fn
	return t
}

// OnStop is called when Stop interrupts a playing Tween.
func (t *Tween) OnStop(fn func(Target)) *Tween {
	t.onStop = fn
	return t
}

// OnGroupCompleted sets the owning Group's completion callback unless one
// is already set.
func (t *Tween) OnGroupCompleted(fn func()) *Tween {
	if t.group.onComplete == nil {
		t.group.onComplete = fn
	}
	return t
}

// Start adds the Tween to its Group, resets playback and captures start
// values for properties that have not been captured yet. Calling Start on a
// completed or stopped Tween plays it again.
func (t *Tween) Start() *Tween {
	t.group.Add(t)

	t.playing = true
	t.paused = false
	t.reversed = false
	t.startFired = false
	t.elapsed = 0
	t.delayToStart = t.delay
	t.repeatLeft = t.repeat

	for _, name := range t.order {
		cur, ok := t.get(name)

		if end := t.end[name]; end.kind == KindPath {
			if len(end.path) == 0 {
				continue
			}
			t.paths[name] = append([]float64{cur}, end.path...)
		}
		if !ok {
			continue
		}
		if _, captured := t.start[name]; !captured {
			t.start[name] = cur
		}
	}
	return t
}

func (t *Tween) get(name string) (float64, bool) {
	if t.target == nil {
		return 0, false
	}
	return t.target.Get(name)
}

// Update advances the Tween by dt and writes the eased values to the
// target. It does nothing unless the Tween is playing and not paused.
func (t *Tween) Update(dt float64) {
	if !t.playing || t.paused {
		return
	}

	t.delayToStart -= dt
	if t.delayToStart > 0 {
		return
	}

	if !t.startFired {
		if t.onStart != nil {
			t.onStart(t.target)
		}
		t.startFired = true
	}

	t.elapsed += dt
	t.ratio = t.cycleRatio()

	progress := min(t.ratio, 1)
	if t.reversed {
		progress = 1 - progress
	}
	eased := t.easing(progress)

	for _, name := range t.order {
		start, ok := t.start[name]
		if !ok {
			continue
		}
		end := t.end[name]
		if end.kind == KindPath {
			if points := t.paths[name]; len(points) > 0 {
				t.target.Set(name, t.interpolation(points, eased))
			}
			continue
		}
		to, ok := end.resolve(start)
		if !ok {
			continue
		}
		t.target.Set(name, start+(to-start)*eased)
	}

	if t.onUpdate != nil {
		t.onUpdate(dt, t.target)
	}

	if t.ratio < 1 {
		return
	}

	if t.repeatLeft != 0 {
		t.elapsed = 0
		if t.repeatLeft > 0 {
			t.repeatLeft--
		}
		if t.yoyo {
			t.reversed = !t.reversed
		}
		if t.hasRepeatDelay {
			t.delayToStart = t.repeatDelay
		} else {
			t.delayToStart = t.delay
		}
		if t.onRepeat != nil {
			t.onRepeat(t.target)
		}
		return
	}

	if t.onComplete != nil {
		t.onComplete(t.target)
	}
	t.playing = false
	for _, next := range t.chain {
		next.Start()
	}
}

func (t *Tween) cycleRatio() float64 {
	if t.duration <= 0 {
		if t.elapsed > 0 {
			return 1
		}
		return 0
	}
	return t.elapsed / t.duration
}

// Stop interrupts a playing Tween: it leaves its Group, fires OnStop and
// stops every chained Tween that is playing. Stopping a Tween that is not
// playing does nothing.
func (t *Tween) Stop() *Tween {
	if !t.playing {
		return t
	}

	t.group.Remove(t)
	t.playing = false
	t.paused = false

	if t.onStop != nil {
		t.onStop(t.target)
	}

	for _, next := range t.chain {
		next.Stop()
	}
	return t
}

// End finishes the current cycle immediately by advancing with an infinite
// delta. A Tween with repeats left starts its next cycle instead of
// completing, so End never completes a RepeatForever Tween.
func (t *Tween) End() *Tween {
	if t.playing && t.repeatLeft < 0 {
		t.group.debugf("warning: End on tween %d with unbounded repeat will not complete it", t.id)
	}
	t.Update(math.Inf(1))
	return t
}

// Pause freezes a playing Tween. It stays playing, so its Group does not
// complete while it is paused.
func (t *Tween) Pause() *Tween {
	if t.playing {
		t.paused = true
	}
	return t
}

// Resume continues a paused Tween.
func (t *Tween) Resume() *Tween {
	t.paused = false
	return t
}
