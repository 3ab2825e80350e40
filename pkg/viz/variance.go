package viz

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"genepca/pkg/analyze"
)

// VarianceBars draws the explained-variance ratio of each kept component as
// a bar chart and returns it as PNG bytes.
func VarianceBars(res *analyze.Result, cfg Config) ([]byte, error) {
	if len(res.VarianceRatios) == 0 {
		return nil, fmt.Errorf("viz: no variance ratios to draw")
	}

	barColor := drawing.Color{R: 55, G: 126, B: 184, A: 255}
	bars := make([]chart.Value, len(res.VarianceRatios))
	for i, r := range res.VarianceRatios {
		bars[i] = chart.Value{
			Value: r,
			Label: fmt.Sprintf("PC%d (%.2f%%)", i+1, r*100),
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		}
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 720
	}
	if h <= 0 {
		h = 576
	}
	bc := chart.BarChart{
		Title:      "Explained Variance by Component",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12}},
		Width:      w,
		Height:     h,
		BarWidth:   80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("viz: render variance chart: %w", err)
	}
	return buf.Bytes(), nil
}
