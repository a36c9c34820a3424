package game

import (
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// vectorPath adapts an ebiten vector path to a chart path sink.
type vectorPath struct {
	p *vector.Path
}

func (v vectorPath) MoveTo(x, y float64) { v.p.MoveTo(float32(x), float32(y)) }
func (v vectorPath) LineTo(x, y float64) { v.p.LineTo(float32(x), float32(y)) }
func (v vectorPath) CubicTo(x1, y1, x2, y2, x, y float64) {
	v.p.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}
func (v vectorPath) Close() { v.p.Close() }

// vertexColor returns c as premultiplied vertex color components.
func vertexColor(c colorful.Color) (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), 1
}

func inRect(x, y, rx, ry, rw, rh int) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
