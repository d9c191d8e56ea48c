package main

import (
	"math"

	"github.com/phanxgames/tween/easing"
)

// Curves such as Back and Elastic leave [0, 1]; the plot reserves a quarter
// of its height above and below for them.
const (
	plotLow  = -0.25
	plotHigh = 1.25
)

// plotRows samples fn once per column and maps each value to a row index in
// a pane of the given height, row 0 at the top. Values outside the plotted
// range are clamped to the edge rows.
func plotRows(fn easing.Func, width, height int) []int {
	if width < 2 || height < 1 {
		return nil
	}
	samples := easing.Sample(fn, width)
	rows := make([]int, len(samples))
	for i, v := range samples {
		rows[i] = valueRow(v, height)
	}
	return rows
}

// valueRow maps v to a row index, row 0 being plotHigh.
func valueRow(v float64, height int) int {
	t := (plotHigh - v) / (plotHigh - plotLow)
	row := int(math.Round(t * float64(height-1)))
	return max(0, min(height-1, row))
}

// barWidth returns how many cells of a bar of full width w a tween value v
// in [0, 1] fills. Overshoot is clamped.
func barWidth(v float64, w int) int {
	return max(0, min(w, int(math.Round(v*float64(w)))))
}
