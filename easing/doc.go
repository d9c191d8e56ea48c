// Package easing provides the classic Penner easing curves as plain
// functions of normalized progress.
//
// Curves are grouped into families ([Quadratic], [Cubic], [Elastic], ...),
// each exposing In, Out and InOut variants. [Linear] only has None:
//
//	fn := easing.Quadratic.InOut
//	eased := fn(0.25)
//
// Exponential and Elastic curves return exactly 0 at k=0 and exactly 1 at
// k=1. No curve clamps its input, so values slightly outside [0, 1] are
// extrapolated by the underlying formula.
//
// Curves from [gween] can be reused through [FromTweenFunc].
//
// [gween]: https://github.com/tanema/gween
package easing
