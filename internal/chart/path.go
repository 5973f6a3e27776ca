package chart

import (
	"strconv"
	"strings"

	"OvernightExchange/internal/model"
)

// Point is a projected plot coordinate. Y grows downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Op is an SVG path command.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	Close  Op = 'Z'
)

// Command is one path step. Point is ignored for Close.
type Command struct {
	Op    Op
	Point Point
}

// Path is an ordered list of drawing commands.
type Path []Command

// Points returns the coordinates of every MoveTo/LineTo command.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	for _, c := range p {
		if c.Op != Close {
			pts = append(pts, c.Point)
		}
	}
	return pts
}

// String renders SVG path data, e.g. "M 0 256 L 400 0 Z".
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		if c.Op == Close {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(formatCoord(c.Point.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(c.Point.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ProjectPoint maps the index-th of n samples into the viewport:
// x = index/(n-1)*width, y = height - (price-min)/(max-min)*height.
// Flat bounds plot at mid-height; a lone sample sits at mid-width.
func ProjectPoint(s model.Sample, index, n int, b Bounds, vp Viewport) Point {
	var x float64
	if n <= 1 {
		x = vp.Width / 2
	} else {
		x = float64(index) / float64(n-1) * vp.Width
	}

	var y float64
	if b.Flat() {
		y = vp.Height / 2
	} else {
		y = vp.Height - (s.Price-b.Min)/(b.Max-b.Min)*vp.Height
	}
	return Point{X: x, Y: y}
}

// BuildLinePath moves to the first projected sample and draws a line through
// the rest.
func BuildLinePath(samples []model.Sample, b Bounds, vp Viewport) Path {
	path := make(Path, 0, len(samples)+3)
	for i, s := range samples {
		op := LineTo
		if i == 0 {
			op = MoveTo
		}
		path = append(path, Command{Op: op, Point: ProjectPoint(s, i, len(samples), b, vp)})
	}
	return path
}

// BuildFillPath closes the line path down to the baseline for an area fill.
func BuildFillPath(samples []model.Sample, b Bounds, vp Viewport) Path {
	path := BuildLinePath(samples, b, vp)
	if len(path) == 0 {
		return path
	}
	return append(path,
		Command{Op: LineTo, Point: Point{X: vp.Width, Y: vp.Height}},
		Command{Op: LineTo, Point: Point{X: 0, Y: vp.Height}},
		Command{Op: Close},
	)
}

// Plot is everything needed to draw one chart frame.
type Plot struct {
	Viewport Viewport
	Bounds   Bounds
	Line     Path
	Fill     Path
}

// Render projects samples into vp. ok is false when there is nothing to draw.
func Render(samples []model.Sample, vp Viewport) (p Plot, ok bool) {
	b, ok := ComputeBounds(samples)
	if !ok {
		return Plot{}, false
	}
	return Plot{
		Viewport: vp,
		Bounds:   b,
		Line:     BuildLinePath(samples, b, vp),
		Fill:     BuildFillPath(samples, b, vp),
	}, true
}
