// Package interpolation blends an ordered sequence of control points at a
// normalized position k.
//
// All functions accept k outside [0, 1]: Linear and open CatmullRom curves
// extrapolate from the end segments, closed CatmullRom curves (first point
// equal to last) wrap around.
package interpolation

import (
	"math"
	"sync"
)

// Func blends the control points v at position k.
type Func func(v []float64, k float64) float64

// Linear blends the two control points around k. Outside [0, 1] it
// extrapolates along the first or last segment.
func Linear(v []float64, k float64) float64 {
	if len(v) < 2 {
		return degenerate(v)
	}
	m := len(v) - 1
	f := float64(m) * k
	i := int(math.Floor(f))

	if k < 0 {
		return Lerp(v[0], v[1], f)
	}
	if k > 1 {
		return Lerp(v[m], v[m-1], float64(m)-f)
	}
	return Lerp(v[i], v[min(i+1, m)], f-float64(i))
}

// Bezier evaluates the Bézier curve of degree len(v)-1 through the
// Bernstein basis.
func Bezier(v []float64, k float64) float64 {
	if len(v) < 2 {
		return degenerate(v)
	}
	n := len(v) - 1
	var b float64
	for i := 0; i <= n; i++ {
		b += math.Pow(1-k, float64(n-i)) * math.Pow(k, float64(i)) * v[i] * Bernstein(n, i)
	}
	return b
}

// CatmullRom evaluates a Catmull-Rom spline through v. When the first and
// last points are equal the curve is treated as a closed loop.
func CatmullRom(v []float64, k float64) float64 {
	if len(v) < 2 {
		return degenerate(v)
	}
	m := len(v) - 1
	f := float64(m) * k
	i := int(math.Floor(f))

	if v[0] == v[m] {
		if k < 0 {
			f = float64(m) * (1 + k)
			i = int(math.Floor(f))
		}
		wrap := func(j int) int { return ((j % m) + m) % m }
		return CatmullRomSegment(v[wrap(i-1)], v[wrap(i)], v[wrap(i+1)], v[wrap(i+2)], f-float64(i))
	}

	if k < 0 {
		return v[0] - (CatmullRomSegment(v[0], v[0], v[1], v[1], -f) - v[0])
	}
	if k > 1 {
		return v[m] - (CatmullRomSegment(v[m], v[m], v[m-1], v[m-1], f-float64(m)) - v[m])
	}
	prev := 0
	if i > 0 {
		prev = i - 1
	}
	return CatmullRomSegment(v[prev], v[i], v[min(i+1, m)], v[min(i+2, m)], f-float64(i))
}

func degenerate(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Lerp returns p0 + (p1-p0)*t. t is not clamped.
func Lerp(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// Bernstein returns the binomial coefficient C(n, i).
func Bernstein(n, i int) float64 {
	return Factorial(n) / Factorial(i) / Factorial(n-i)
}

var (
	factorialMu   sync.Mutex
	factorialMemo = []float64{1}
)

// Factorial returns n! as a float64. Results are memoized for the life of
// the process; n above 170 overflows to +Inf.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	factorialMu.Lock()
	defer factorialMu.Unlock()

	for len(factorialMemo) <= n {
		next := len(factorialMemo)
		factorialMemo = append(factorialMemo, factorialMemo[next-1]*float64(next))
	}
	return factorialMemo[n]
}

// CatmullRomSegment evaluates the cubic between p1 and p2 at t, using
// centered-difference tangents from p0 and p3.
func CatmullRomSegment(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// Lookup resolves "Linear", "Bezier" or "CatmullRom".
func Lookup(name string) (Func, bool) {
	switch name {
	case "Linear":
		return Linear, true
	case "Bezier":
		return Bezier, true
	case "CatmullRom":
		return CatmullRom, true
	}
	return nil, false
}
