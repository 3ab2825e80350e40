// Package viz renders analysis results to PNG images. Every call builds a
// fresh figure; nothing is shared between renders.
package viz

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"genepca/pkg/analyze"
)

// palette holds the group colors, indexed by first-occurrence order of the
// label values (Set1 scheme).
var palette = []color.RGBA{
	{R: 228, G: 26, B: 28, A: 255},
	{R: 55, G: 126, B: 184, A: 255},
	{R: 77, G: 175, B: 74, A: 255},
	{R: 152, G: 78, B: 163, A: 255},
	{R: 255, G: 127, B: 0, A: 255},
	{R: 255, G: 255, B: 51, A: 255},
	{R: 166, G: 86, B: 40, A: 255},
	{R: 247, G: 129, B: 191, A: 255},
	{R: 153, G: 153, B: 153, A: 255},
}

// GroupColor returns the palette color for the group at index i.
func GroupColor(i int) color.RGBA { return palette[i%len(palette)] }

// Config sets the pixel dimensions of a rendered image. Zero values fall
// back to 720x576.
type Config struct {
	Width  int
	Height int
}

func (c Config) size() (vg.Length, vg.Length) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 720
	}
	if h <= 0 {
		h = 576
	}
	return vg.Length(w), vg.Length(h)
}

// Scatter draws the projected samples, one colored series per label group
// with a matching legend entry, titled with the explained-variance
// percentages. It returns the plot as PNG bytes.
func Scatter(res *analyze.Result, cfg Config) ([]byte, error) {
	p := plot.New()
	p.Title.Text = scatterTitle(res.VarianceRatios)
	p.X.Label.Text = "Principal Component 1"
	p.Y.Label.Text = "Principal Component 2"
	p.Add(plotter.NewGrid())

	for i, g := range res.Groups() {
		pts := make(plotter.XYs, len(g.Xs))
		for j := range g.Xs {
			pts[j].X = g.Xs[j]
			pts[j].Y = g.Ys[j]
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("viz: scatter series %q: %w", g.Label, err)
		}
		s.GlyphStyle.Color = GroupColor(i)
		s.GlyphStyle.Radius = vg.Points(3.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(g.Label, s)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	w, h := cfg.size()
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("viz: render scatter: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("viz: encode scatter: %w", err)
	}
	return buf.Bytes(), nil
}

func scatterTitle(ratios []float64) string {
	if len(ratios) < 2 {
		return "PCA"
	}
	return fmt.Sprintf("PCA (PC1: %.2f%% var, PC2: %.2f%% var)", ratios[0]*100, ratios[1]*100)
}
