package ebitenloop

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/tween"
)

var _ ebiten.Game = (*Game)(nil)

func TestDelta(t *testing.T) {
	tick := 1000 / float64(ebiten.TPS())

	g := &Game{}
	if math.Abs(g.Delta()-tick) > 1e-9 {
		t.Errorf("Delta = %f, want %f", g.Delta(), tick)
	}

	g.TimeScale = 0.5
	if math.Abs(g.Delta()-tick/2) > 1e-9 {
		t.Errorf("half speed Delta = %f, want %f", g.Delta(), tick/2)
	}

	g.Paused = true
	if g.Delta() != 0 {
		t.Errorf("paused Delta = %f, want 0", g.Delta())
	}
}

func TestUpdateAdvancesRegistry(t *testing.T) {
	reg := tween.NewRegistry()
	obj := tween.Props{"x": 0}
	tick := 1000 / float64(ebiten.TPS())
	reg.New(tick * 4).From(obj).To(tween.Values{"x": tween.Number(100)}).Start()

	var seen []float64
	g := &Game{
		Registry: reg,
		OnUpdate: func(dt float64) error {
			seen = append(seen, dt)
			return nil
		},
	}

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(obj["x"]-25) > 1e-9 {
		t.Errorf("x = %f after one tick, want 25", obj["x"])
	}
	if len(seen) != 1 || math.Abs(seen[0]-tick) > 1e-9 {
		t.Errorf("OnUpdate saw %v, want one tick", seen)
	}

	g.Paused = true
	g.Update()
	if math.Abs(obj["x"]-25) > 1e-9 {
		t.Errorf("x = %f while paused, want 25", obj["x"])
	}
}

func TestUpdateReturnsCallbackError(t *testing.T) {
	stop := errors.New("stop")
	g := &Game{Registry: tween.NewRegistry(), OnUpdate: func(float64) error { return stop }}

	if err := g.Update(); !errors.Is(err, stop) {
		t.Errorf("err = %v, want %v", err, stop)
	}
}

func TestLayout(t *testing.T) {
	g := &Game{Width: 320, Height: 240}
	if w, h := g.Layout(1920, 1080); w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}

	g = &Game{}
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want pass-through 800x600", w, h)
	}
}
