// Package chart projects a price series onto a 2D plot and renders it as
// SVG path data, a standalone SVG document or a PNG image.
package chart

import "OvernightExchange/internal/model"

// Viewport is the drawing area in plot units.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport matches the page's 800x256 chart.
var DefaultViewport = Viewport{Width: 800, Height: 256}

// Bounds is the price range used to scale the plot vertically.
type Bounds struct {
	Min float64
	Max float64
}

// Flat reports whether every sample shares one price.
func (b Bounds) Flat() bool { return b.Max == b.Min }

// ComputeBounds returns the min and max price. ok is false for an empty
// series, in which case nothing should be plotted.
func ComputeBounds(samples []model.Sample) (b Bounds, ok bool) {
	if len(samples) == 0 {
		return Bounds{}, false
	}
	b = Bounds{Min: samples[0].Price, Max: samples[0].Price}
	for _, s := range samples[1:] {
		if s.Price < b.Min {
			b.Min = s.Price
		}
		if s.Price > b.Max {
			b.Max = s.Price
		}
	}
	return b, true
}
