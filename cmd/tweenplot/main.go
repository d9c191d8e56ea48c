// Tweenplot is a terminal viewer for the easing curves. The left pane plots
// the selected curve; the right pane shows a bar tweened with it, repeating
// forever with yoyo. A short tone plays on every repeat.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tween"
	"github.com/phanxgames/tween/easing"
)

func main() {
	var (
		curve    = flag.String("easing", "Quadratic.InOut", "initial easing, as Family.Variant")
		duration = flag.Duration("duration", 1500*time.Millisecond, "length of one tween cycle")
		tick     = flag.Duration("tick", 30*time.Millisecond, "update interval")
		sound    = flag.Bool("sound", true, "play a tone on every repeat")
	)
	flag.Parse()

	if err := run(*curve, *duration, *tick, *sound); err != nil {
		fmt.Fprintf(os.Stderr, "tweenplot: %v\n", err)
		os.Exit(1)
	}
}

func run(curve string, duration, tick time.Duration, sound bool) error {
	if tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", tick)
	}
	if _, ok := easing.Lookup(curve); !ok {
		return fmt.Errorf("unknown easing %q", curve)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ch, err := newChime(sound)
	if err != nil {
		// Non-fatal, the viewer works without sound.
		log.Printf("Audio initialization failed: %v", err)
	}
	defer ch.close()

	v := newViewer(screen, tween.Default(), float64(duration.Milliseconds()), ch)
	v.selectByName(curve)
	v.restart()
	loop(v, tick)
	return nil
}

func loop(v *viewer, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	dt := float64(tick.Milliseconds())
	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			v.reg.Update(dt)
			v.draw()
		}
	}
}
