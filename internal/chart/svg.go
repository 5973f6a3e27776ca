package chart

import (
	"fmt"
	"io"
	"strings"
)

// Style controls the colours of the SVG document.
type Style struct {
	Stroke      string
	StrokeWidth float64
	FillOpacity float64 // opacity at the top of the gradient
}

// DefaultStyle is the exchange's primary accent.
var DefaultStyle = Style{
	Stroke:      "#8b5cf6",
	StrokeWidth: 2,
	FillOpacity: 0.3,
}

// SVG renders p as a standalone SVG document.
func SVG(p Plot, st Style) string {
	var b strings.Builder
	w, h := formatCoord(p.Viewport.Width), formatCoord(p.Viewport.Height)

	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`, w, h, w, h))
	b.WriteString(`<defs><linearGradient id="priceGradient" x1="0%" y1="0%" x2="0%" y2="100%">`)
	b.WriteString(fmt.Sprintf(`<stop offset="0%%" stop-color="%s" stop-opacity="%s"/>`, st.Stroke, formatCoord(st.FillOpacity)))
	b.WriteString(fmt.Sprintf(`<stop offset="100%%" stop-color="%s" stop-opacity="0"/>`, st.Stroke))
	b.WriteString(`</linearGradient></defs>`)
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`, p.Line, st.Stroke, formatCoord(st.StrokeWidth)))
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="url(#priceGradient)"/>`, p.Fill))
	b.WriteString(`</svg>`)
	return b.String()
}

// WriteSVG writes the SVG document for p to w.
func WriteSVG(w io.Writer, p Plot, st Style) error {
	if _, err := io.WriteString(w, SVG(p, st)); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
