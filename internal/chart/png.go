package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"OvernightExchange/internal/model"
)

var (
	pngStroke = drawing.Color{R: 139, G: 92, B: 246, A: 255}
	pngFill   = drawing.Color{R: 139, G: 92, B: 246, A: 64}
)

// WritePNG renders samples as a PNG area chart sized to vp. At least two
// samples are required. A flat series is padded by one unit each way so the
// axis range is never empty.
func WritePNG(w io.Writer, samples []model.Sample, vp Viewport, title string) error {
	if len(samples) < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}
	b, _ := ComputeBounds(samples)
	if b.Flat() {
		b.Min--
		b.Max++
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(i)
		ys[i] = s.Price
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  int(vp.Width),
		Height: int(vp.Height),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 24, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: b.Min, Max: b.Max},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name: title,
				Style: gochart.Style{
					StrokeColor: pngStroke,
					StrokeWidth: 2,
					FillColor:   pngFill,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
