package easing

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/floats"
)

// Func maps a normalized progress value k to an eased progress value.
// Inputs are nominally in [0, 1] but are never clamped.
type Func func(k float64) float64

// Family is a named set of related curves. Linear only populates None;
// every other family populates In, Out and InOut.
type Family struct {
	Name  string
	None  Func
	In    Func
	Out   Func
	InOut Func
}

// Variants returns the family's populated curves in declaration order
// (None, In, Out, InOut).
func (f Family) Variants() []Func {
	var out []Func
	for _, fn := range []Func{f.None, f.In, f.Out, f.InOut} {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return out
}

// VariantNames returns the names of the populated curves, matching the
// order of Variants.
func (f Family) VariantNames() []string {
	var out []string
	for i, fn := range []Func{f.None, f.In, f.Out, f.InOut} {
		if fn != nil {
			out = append(out, variantNames[i])
		}
	}
	return out
}

var variantNames = [...]string{"None", "In", "Out", "InOut"}

// Variant returns the curve with the given variant name ("None", "In",
// "Out", "InOut").
func (f Family) Variant(name string) (Func, bool) {
	var fn Func
	switch name {
	case "None":
		fn = f.None
	case "In":
		fn = f.In
	case "Out":
		fn = f.Out
	case "InOut":
		fn = f.InOut
	}
	return fn, fn != nil
}

const backS = 1.70158

var (
	Linear = Family{
		Name: "Linear",
		None: func(k float64) float64 { return k },
	}

	Quadratic = Family{
		Name: "Quadratic",
		In:   func(k float64) float64 { return k * k },
		Out:  func(k float64) float64 { return k * (2 - k) },
		InOut: func(k float64) float64 {
			k *= 2
			if k < 1 {
				return 0.5 * k * k
			}
			k--
			return -0.5 * (k*(k-2) - 1)
		},
	}

	Cubic = Family{
		Name: "Cubic",
		In:   func(k float64) float64 { return k * k * k },
		Out: func(k float64) float64 {
			k--
			return k*k*k + 1
		},
		InOut: func(k float64) float64 {
			k *= 2
			if k < 1 {
				return 0.5 * k * k * k
			}
			k -= 2
			return 0.5 * (k*k*k + 2)
		},
	}

	Quartic = Family{
		Name: "Quartic",
		In:   func(k float64) float64 { return k * k * k * k },
		Out: func(k float64) float64 {
			k--
			return 1 - k*k*k*k
		},
		InOut: func(k float64) float64 {
			k *= 2
			if k < 1 {
				return 0.5 * k * k * k * k
			}
			k -= 2
			return -0.5 * (k*k*k*k - 2)
		},
	}

	Quintic = Family{
		Name: "Quintic",
		In:   func(k float64) float64 { return k * k * k * k * k },
		Out: func(k float64) float64 {
			k--
			return k*k*k*k*k + 1
		},
		InOut: func(k float64) float64 {
			k *= 2
			if k < 1 {
				return 0.5 * k * k * k * k * k
			}
			k -= 2
			return 0.5 * (k*k*k*k*k + 2)
		},
	}

	Sinusoidal = Family{
		Name:  "Sinusoidal",
		In:    func(k float64) float64 { return 1 - math.Cos(k*math.Pi/2) },
		Out:   func(k float64) float64 { return math.Sin(k * math.Pi / 2) },
		InOut: func(k float64) float64 { return 0.5 * (1 - math.Cos(math.Pi*k)) },
	}

	Exponential = Family{
		Name: "Exponential",
		In: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			return math.Pow(1024, k-1)
		},
		Out: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			return 1 - math.Pow(2, -10*k)
		},
		InOut: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			k *= 2
			if k < 1 {
				return 0.5 * math.Pow(1024, k-1)
			}
			return 0.5 * (-math.Pow(2, -10*(k-1)) + 2)
		},
	}

	Circular = Family{
		Name: "Circular",
		In:   func(k float64) float64 { return 1 - math.Sqrt(1-k*k) },
		Out: func(k float64) float64 {
			k--
			return math.Sqrt(1 - k*k)
		},
		InOut: func(k float64) float64 {
			k *= 2
			if k < 1 {
				return -0.5 * (math.Sqrt(1-k*k) - 1)
			}
			k -= 2
			return 0.5 * (math.Sqrt(1-k*k) + 1)
		},
	}

	Elastic = Family{
		Name: "Elastic",
		In: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			return -math.Pow(2, 10*(k-1)) * math.Sin((k-1.1)*5*math.Pi)
		},
		Out: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			return math.Pow(2, -10*k)*math.Sin((k-0.1)*5*math.Pi) + 1
		},
		InOut: func(k float64) float64 {
			if k == 0 {
				return 0
			}
			if k == 1 {
				return 1
			}
			k *= 2
			if k < 1 {
				return -0.5 * math.Pow(2, 10*(k-1)) * math.Sin((k-1.1)*5*math.Pi)
			}
			return 0.5*math.Pow(2, -10*(k-1))*math.Sin((k-1.1)*5*math.Pi) + 1
		},
	}

	Back = Family{
		Name: "Back",
		In:   func(k float64) float64 { return k * k * ((backS+1)*k - backS) },
		Out: func(k float64) float64 {
			k--
			return k*k*((backS+1)*k+backS) + 1
		},
		InOut: func(k float64) float64 {
			s := backS * 1.525
			k *= 2
			if k < 1 {
				return 0.5 * (k * k * ((s+1)*k - s))
			}
			k -= 2
			return 0.5 * (k*k*((s+1)*k+s) + 2)
		},
	}

	Bounce = Family{
		Name:  "Bounce",
		In:    bounceIn,
		Out:   bounceOut,
		InOut: bounceInOut,
	}
)

func bounceOut(k float64) float64 {
	switch {
	case k < 1/2.75:
		return 7.5625 * k * k
	case k < 2/2.75:
		k -= 1.5 / 2.75
		return 7.5625*k*k + 0.75
	case k < 2.5/2.75:
		k -= 2.25 / 2.75
		return 7.5625*k*k + 0.9375
	default:
		k -= 2.625 / 2.75
		return 7.5625*k*k + 0.984375
	}
}

func bounceIn(k float64) float64 {
	return 1 - bounceOut(1-k)
}

func bounceInOut(k float64) float64 {
	if k < 0.5 {
		return bounceIn(k*2) * 0.5
	}
	return bounceOut(k*2-1)*0.5 + 0.5
}

// Families returns every easing family in declaration order.
func Families() []Family {
	return []Family{
		Linear, Quadratic, Cubic, Quartic, Quintic, Sinusoidal,
		Exponential, Circular, Elastic, Back, Bounce,
	}
}

// RandomFamily picks a family uniformly. A nil r uses the global source.
func RandomFamily(r *rand.Rand) Family {
	fams := Families()
	return fams[intN(r, len(fams))]
}

// RandomVariant picks one of f's curves uniformly.
func RandomVariant(f Family, r *rand.Rand) Func {
	vs := f.Variants()
	return vs[intN(r, len(vs))]
}

// Random picks a family uniformly, then a variant within it uniformly.
func Random(r *rand.Rand) Func {
	return RandomVariant(RandomFamily(r), r)
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// Lookup resolves names like "Quadratic.InOut". A bare "Linear" resolves to
// Linear.None.
func Lookup(name string) (Func, bool) {
	famName, variant, ok := strings.Cut(name, ".")
	if !ok {
		if famName != Linear.Name {
			return nil, false
		}
		variant = "None"
	}
	for _, f := range Families() {
		if f.Name == famName {
			return f.Variant(variant)
		}
	}
	return nil, false
}

// FromTweenFunc adapts a gween curve (t, begin, change, duration) into a
// normalized Func by evaluating it over a unit range.
func FromTweenFunc(fn ease.TweenFunc) Func {
	return func(k float64) float64 {
		return float64(fn(float32(k), 0, 1, 1))
	}
}

// Sample evaluates fn at n evenly spaced points over [0, 1], endpoints
// included. n < 2 returns nil.
func Sample(fn Func, n int) []float64 {
	if n < 2 {
		return nil
	}
	ks := floats.Span(make([]float64, n), 0, 1)
	for i, k := range ks {
		ks[i] = fn(k)
	}
	return ks
}
