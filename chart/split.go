package chart

import (
	"gonum.org/v1/plot/plotter"
)

// SplitAtZero assigns every index of values to exactly one side: values >= 0
// go to positive, values < 0 to negative.
func SplitAtZero(values []float64) (positive, negative []int) {
	for i, v := range values {
		if v >= 0 {
			positive = append(positive, i)
		} else {
			negative = append(negative, i)
		}
	}
	return positive, negative
}

// withCrossings returns pts with an extra (x, 0) point wherever consecutive
// points lie strictly on opposite sides of zero, interpolated linearly.
// pts must be ordered by X.
func withCrossings(pts plotter.XYs) plotter.XYs {
	if len(pts) < 2 {
		return append(plotter.XYs(nil), pts...)
	}

	out := make(plotter.XYs, 0, len(pts)*2)
	for i, p := range pts {
		out = append(out, p)
		if i == len(pts)-1 {
			continue
		}
		next := pts[i+1]
		if (p.Y < 0 && next.Y > 0) || (p.Y > 0 && next.Y < 0) {
			x := p.X + (0-p.Y)*(next.X-p.X)/(next.Y-p.Y)
			out = append(out, plotter.XY{X: x, Y: 0})
		}
	}
	return out
}

// FillBands returns the outline of the area between the series and zero,
// split into the part above zero and the part below. Each band is closed
// along the zero line. A band is nil when the series never enters that side.
func FillBands(pts plotter.XYs) (positive, negative plotter.XYs) {
	dense := withCrossings(pts)

	var hasPos, hasNeg bool
	for _, p := range dense {
		hasPos = hasPos || p.Y > 0
		hasNeg = hasNeg || p.Y < 0
	}

	if hasPos {
		positive = band(dense, func(y float64) float64 { return max(y, 0) })
	}
	if hasNeg {
		negative = band(dense, func(y float64) float64 { return min(y, 0) })
	}
	return positive, negative
}

func band(dense plotter.XYs, clamp func(float64) float64) plotter.XYs {
	out := make(plotter.XYs, 0, len(dense)+2)
	out = append(out, plotter.XY{X: dense[0].X, Y: 0})
	for _, p := range dense {
		out = append(out, plotter.XY{X: p.X, Y: clamp(p.Y)})
	}
	out = append(out, plotter.XY{X: dense[len(dense)-1].X, Y: 0})
	return out
}
