package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tween"
	"github.com/phanxgames/tween/easing"
)

const (
	forwardTone = 880
	reverseTone = 660
)

var (
	axisStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	curveStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	barStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// viewer plots the selected easing curve and animates a bar with it.
type viewer struct {
	screen   tcell.Screen
	reg      *tween.Registry
	families []easing.Family
	family   int
	variant  int
	duration float64
	chime    *chime

	bar     tween.Props
	current *tween.Tween
	repeats int
}

func newViewer(screen tcell.Screen, reg *tween.Registry, duration float64, ch *chime) *viewer {
	return &viewer{
		screen:   screen,
		reg:      reg,
		families: easing.Families(),
		duration: duration,
		chime:    ch,
		bar:      tween.Props{"w": 0},
	}
}

// selectByName points the viewer at a name accepted by easing.Lookup. It
// reports false when the name is unknown.
func (v *viewer) selectByName(name string) bool {
	if _, ok := easing.Lookup(name); !ok {
		return false
	}
	for i, f := range v.families {
		for j, variant := range f.VariantNames() {
			if f.Name+"."+variant == name || f.Name == name {
				v.family, v.variant = i, j
				return true
			}
		}
	}
	return false
}

func (v *viewer) curve() (string, easing.Func) {
	f := v.families[v.family]
	name := f.VariantNames()[v.variant]
	fn, _ := f.Variant(name)
	return f.Name + "." + name, fn
}

// restart replaces the running tween with one using the selected curve.
func (v *viewer) restart() {
	if v.current != nil {
		v.current.Stop()
	}
	v.bar["w"] = 0
	v.repeats = 0

	_, fn := v.curve()
	var tw *tween.Tween
	tw = v.reg.New(v.duration).
		From(v.bar).
		To(tween.Values{"w": tween.Number(1)}).
		Easing(fn).
		Repeat(tween.RepeatForever).
		Yoyo(true).
		OnRepeat(func(tween.Target) {
			v.repeats++
			if tw.IsReversed() {
				v.chime.play(reverseTone)
			} else {
				v.chime.play(forwardTone)
			}
		}).
		Start()
	v.current = tw
}

func (v *viewer) step(family, variant int) {
	n := len(v.families)
	v.family = ((v.family+family)%n + n) % n
	count := len(v.families[v.family].VariantNames())
	if family != 0 {
		v.variant = min(v.variant, count-1)
	}
	v.variant = ((v.variant+variant)%count + count) % count
	v.restart()
}

// handle applies one terminal event. It returns false when the viewer
// should quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.step(-1, 0)
		case tcell.KeyRight:
			v.step(1, 0)
		case tcell.KeyUp:
			v.step(0, -1)
		case tcell.KeyDown:
			v.step(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 's':
				v.chime.toggle()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	name, fn := v.curve()

	sound := "off"
	if v.chime.enabled {
		sound = "on"
	}
	drawText(v.screen, 0, 0, textStyle, fmt.Sprintf("%s  repeats:%d  sound:%s  ←/→ family  ↑/↓ variant  s sound  q quit",
		name, v.repeats, sound))

	plotW := w / 2
	plotH := h - 2
	if plotW < 2 || plotH < 2 {
		v.screen.Show()
		return
	}

	zero, one := valueRow(0, plotH)+1, valueRow(1, plotH)+1
	for x := 0; x < plotW; x++ {
		v.screen.SetContent(x, zero, '─', nil, axisStyle)
		v.screen.SetContent(x, one, '┄', nil, axisStyle)
	}
	for x, row := range plotRows(fn, plotW, plotH) {
		v.screen.SetContent(x, row+1, '•', nil, curveStyle)
	}

	barX := plotW + 2
	barMax := w - barX - 1
	value := v.bar["w"]
	filled := barWidth(value, barMax)
	y := h / 2
	for x := 0; x < barMax; x++ {
		r := '░'
		if x < filled {
			r = '█'
		}
		v.screen.SetContent(barX+x, y, r, nil, barStyle)
	}
	drawText(v.screen, barX, y+1, textStyle, fmt.Sprintf("%.3f", value))
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
