package tween

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phanxgames/tween/easing"
	"github.com/phanxgames/tween/interpolation"
)

// Errors returned by LoadScript and Script.Build.
var (
	ErrNoTweens             = errors.New("no tweens")
	ErrDuplicateTween       = errors.New("duplicate tween name")
	ErrUnknownTween         = errors.New("unknown tween")
	ErrUnknownTarget        = errors.New("unknown target")
	ErrUnknownEasing        = errors.New("unknown easing")
	ErrUnknownInterpolation = errors.New("unknown interpolation")
)

// tweenDef is one tween in a script.
type tweenDef struct {
	Name          string   `json:"name"`
	Group         string   `json:"group,omitempty"`
	Target        string   `json:"target"`
	Duration      float64  `json:"duration"`
	Delay         float64  `json:"delay,omitempty"`
	Repeat        int      `json:"repeat,omitempty"`
	RepeatDelay   *float64 `json:"repeatDelay,omitempty"`
	Yoyo          bool     `json:"yoyo,omitempty"`
	Easing        string   `json:"easing,omitempty"`
	Interpolation string   `json:"interpolation,omitempty"`
	To            Values   `json:"to"`
	Chain         []string `json:"chain,omitempty"`
	Start         bool     `json:"start,omitempty"`

	easing        easing.Func
	interpolation interpolation.Func
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Tweens []tweenDef `json:"tweens"`
}

// Script is a validated set of tween definitions. Build turns it into live
// Tweens against a Registry.
//
//	{"tweens": [
//		{"name": "slide", "target": "hero", "duration": 500,
//		 "easing": "Quadratic.Out", "to": {"x": 320}, "chain": ["fade"]},
//		{"name": "fade", "target": "hero", "duration": 250, "to": {"alpha": 0}}
//	]}
type Script struct {
	defs []tweenDef
}

// LoadScript parses and validates a JSON tween script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse tween script: %w", err)
	}
	if len(file.Tweens) == 0 {
		return nil, fmt.Errorf("parse tween script: %w", ErrNoTweens)
	}

	seen := make(map[string]bool, len(file.Tweens))
	for i := range file.Tweens {
		d := &file.Tweens[i]
		if d.Name == "" {
			return nil, fmt.Errorf("parse tween script: tween %d has no name", i)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("parse tween script: %w: %q", ErrDuplicateTween, d.Name)
		}
		seen[d.Name] = true

		d.easing = easing.Linear.None
		if d.Easing != "" {
			fn, ok := easing.Lookup(d.Easing)
			if !ok {
				return nil, fmt.Errorf("parse tween script: tween %q: %w: %q", d.Name, ErrUnknownEasing, d.Easing)
			}
			d.easing = fn
		}

		d.interpolation = interpolation.Linear
		if d.Interpolation != "" {
			fn, ok := interpolation.Lookup(d.Interpolation)
			if !ok {
				return nil, fmt.Errorf("parse tween script: tween %q: %w: %q", d.Name, ErrUnknownInterpolation, d.Interpolation)
			}
			d.interpolation = fn
		}
	}

	for _, d := range file.Tweens {
		for _, next := range d.Chain {
			if !seen[next] {
				return nil, fmt.Errorf("parse tween script: tween %q chains %w %q", d.Name, ErrUnknownTween, next)
			}
		}
	}
	return &Script{defs: file.Tweens}, nil
}

// Names returns the tween names in script order.
func (s *Script) Names() []string {
	names := make([]string, len(s.defs))
	for i, d := range s.defs {
		names[i] = d.Name
	}
	return names
}

// Build creates the script's Tweens in reg, binds each to its named target,
// wires chains and starts the ones marked "start". Tweens without a group
// go to the default group.
func (s *Script) Build(reg *Registry, targets map[string]Target) (map[string]*Tween, error) {
	for _, d := range s.defs {
		if _, ok := targets[d.Target]; !ok {
			return nil, fmt.Errorf("build tween %q: %w %q", d.Name, ErrUnknownTarget, d.Target)
		}
	}

	tweens := make(map[string]*Tween, len(s.defs))
	for _, d := range s.defs {
		var t *Tween
		if d.Group == "" {
			t = reg.New(d.Duration)
		} else {
			t = reg.NewWithTag(d.Duration, d.Group)
		}
		t.From(targets[d.Target]).
			To(d.To).
			Delay(d.Delay).
			Repeat(d.Repeat).
			Yoyo(d.Yoyo).
			Easing(d.easing).
			Interpolation(d.interpolation)
		if d.RepeatDelay != nil {
			t.RepeatDelay(*d.RepeatDelay)
		}
		tweens[d.Name] = t
	}

	for _, d := range s.defs {
		if len(d.Chain) == 0 {
			continue
		}
		next := make([]*Tween, len(d.Chain))
		for i, name := range d.Chain {
			next[i] = tweens[name]
		}
		tweens[d.Name].Chain(next...)
	}

	for _, d := range s.defs {
		if d.Start {
			tweens[d.Name].Start()
		}
	}
	return tweens, nil
}
