// Package ebitenloop drives a tween Registry from an Ebitengine game loop.
//
// Ebitengine calls Update a fixed number of times per second (ebiten.TPS),
// so every tick advances the registry by the same delta, in milliseconds:
//
//	g := &ebitenloop.Game{
//		OnDraw: func(screen *ebiten.Image) { ... },
//	}
//	tween.New(500).From(hero).To(tween.Values{"x": tween.Number(320)}).Start()
//	if err := ebitenloop.Run(g, ebitenloop.RunConfig{Title: "demo", Width: 640, Height: 480}); err != nil {
//		log.Fatal(err)
//	}
package ebitenloop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/tween"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Game implements ebiten.Game around a tween Registry.
type Game struct {
	// Registry is advanced once per tick. Nil means tween.Default().
	Registry *tween.Registry

	// TimeScale multiplies every delta. Zero means 1.
	TimeScale float64

	// Paused stops the registry from advancing. OnUpdate still runs with a
	// zero delta.
	Paused bool

	// Width and Height are the logical screen size returned from Layout.
	// Zero values pass the outside size through.
	Width, Height int

	// ClearColor fills the screen before OnDraw when set.
	ClearColor color.Color

	// ShowFPS prints the actual FPS and TPS in the top-left corner.
	ShowFPS bool

	// OnUpdate runs after the registry has been advanced. A non-nil error
	// ends the game and is returned from Run.
	OnUpdate func(dt float64) error

	// OnDraw renders the frame.
	OnDraw func(screen *ebiten.Image)
}

// Delta returns the milliseconds one tick advances the registry by.
func (g *Game) Delta() float64 {
	if g.Paused {
		return 0
	}
	scale := g.TimeScale
	if scale == 0 {
		scale = 1
	}
	return scale * 1000 / float64(ebiten.TPS())
}

func (g *Game) registry() *tween.Registry {
	if g.Registry == nil {
		return tween.Default()
	}
	return g.Registry
}

// Update advances the registry by one tick and then calls OnUpdate.
func (g *Game) Update() error {
	dt := g.Delta()
	if dt != 0 {
		g.registry().Update(dt)
	}
	if g.OnUpdate != nil {
		return g.OnUpdate(dt)
	}
	return nil
}

// Draw clears the screen, calls OnDraw and overlays the FPS counter.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout returns the configured logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.Width, g.Height
	if w == 0 {
		w = outsideWidth
	}
	if h == 0 {
		h = outsideHeight
	}
	return w, h
}

// Run opens a window configured by cfg and runs g until it returns an error
// or the window closes. Width and Height of g default to the window size.
func Run(g *Game, cfg RunConfig) error {
	if g.Width == 0 {
		g.Width = cfg.Width
	}
	if g.Height == 0 {
		g.Height = cfg.Height
	}
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS

	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
