// Package chart renders one signed area chart per month of an SPI matrix:
// the area above zero is shaded blue, the area below red, and the raw values
// are drawn on top as a black line.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/orayew2002/rainfall-spi/domain"
)

var (
	positiveFill = color.NRGBA{R: 0, G: 0, B: 255, A: 178}
	negativeFill = color.NRGBA{R: 255, G: 0, B: 0, A: 178}
	lineColor    = color.Black
)

// Options sets the image size.
type Options struct {
	WidthInches  float64
	HeightInches float64
}

// DefaultOptions is an 8 × 4 inch image.
func DefaultOptions() Options {
	return Options{WidthInches: 8, HeightInches: 4}
}

// Series is one month column: values by year, with no missing entries.
type Series struct {
	Label  string
	Years  []float64
	Values []float64
}

// DropMissing builds a Series from parallel year/value columns, skipping any
// row where either side is missing. Rows are sorted by year.
func DropMissing(label string, years, values []domain.Value) Series {
	s := Series{Label: label}

	n := min(len(years), len(values))
	type point struct{ x, y float64 }
	pts := make([]point, 0, n)
	for i := 0; i < n; i++ {
		x, okX := years[i].Float()
		y, okY := values[i].Float()
		if !okX || !okY {
			continue
		}
		pts = append(pts, point{x, y})
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	for _, p := range pts {
		s.Years = append(s.Years, p.x)
		s.Values = append(s.Values, p.y)
	}
	return s
}

// Title is the chart heading for s.
func (s Series) Title() string {
	return "SPI Chart for " + s.Label
}

func (s Series) xys() plotter.XYs {
	pts := make(plotter.XYs, len(s.Values))
	for i := range s.Values {
		pts[i] = plotter.XY{X: s.Years[i], Y: s.Values[i]}
	}
	return pts
}

// Plot assembles the gonum plot for s without rendering it.
func Plot(s Series) (*plot.Plot, error) {
	if len(s.Years) != len(s.Values) {
		return nil, fmt.Errorf("%w: %d years for %d values", domain.ErrInvalidArgument, len(s.Years), len(s.Values))
	}

	p := plot.New()
	p.Title.Text = s.Title()
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "SPI"

	pts := s.xys()
	if len(pts) == 0 {
		return p, nil
	}

	pos, neg := FillBands(pts)
	for _, b := range []struct {
		pts  plotter.XYs
		fill color.Color
	}{{pos, positiveFill}, {neg, negativeFill}} {
		if b.pts == nil {
			continue
		}
		poly, err := plotter.NewPolygon(b.pts)
		if err != nil {
			return nil, fmt.Errorf("fill polygon: %w", err)
		}
		poly.Color = b.fill
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("value line: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1)
	p.Add(line)

	return p, nil
}

// Render draws s as a PNG image.
func Render(s Series, opts Options) ([]byte, error) {
	if opts.WidthInches <= 0 || opts.HeightInches <= 0 {
		return nil, fmt.Errorf("%w: chart size %gx%g", domain.ErrInvalidArgument, opts.WidthInches, opts.HeightInches)
	}

	p, err := Plot(s)
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", s.Label, err)
	}

	w, err := p.WriterTo(vg.Length(opts.WidthInches)*vg.Inch, vg.Length(opts.HeightInches)*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", s.Label, err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("chart %q: encode png: %w", s.Label, err)
	}
	return buf.Bytes(), nil
}
