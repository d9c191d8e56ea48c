package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeDuration = 50 * time.Millisecond
)

// chime plays short sine tones on tween events.
type chime struct {
	ready   bool
	enabled bool
}

// newChime initializes the speaker. On failure the chime stays silent and
// the error is returned for logging.
func newChime(enabled bool) (*chime, error) {
	c := &chime{enabled: enabled}
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.ready = true
	return c, nil
}

func (c *chime) toggle() { c.enabled = !c.enabled }

func (c *chime) play(freq float64) {
	if !c.ready || !c.enabled {
		return
	}
	sine, err := generators.SineTone(chimeRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeDuration), sine))
}

func (c *chime) close() {
	if c.ready {
		speaker.Close()
	}
}
