package chart

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path command.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpArcTo
	OpClose
)

// Segment is one path command. For OpArcTo the arc is centered on the
// origin and sweeps from StartAngle to EndAngle at Radius, ending at To.
type Segment struct {
	Op                   Op
	To                   Point
	Radius               float64
	StartAngle, EndAngle float64
}

// Path is a chart-space path built from Segments.
type Path []Segment

// PathSink receives a path flattened to lines and cubic Béziers.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Close()
}

const fullTurn = 2 * math.Pi

// angleEpsilon matches the tolerance the original arc generator uses to
// decide that a span is a complete circle.
const angleEpsilon = 1e-6

// BuildArc returns the annular wedge between inner and outer radius from
// angle start to end (radians, north = 0, clockwise).
func BuildArc(inner, outer, start, end float64) Path {
	if inner > outer {
		inner, outer = outer, inner
	}
	if end < start {
		start, end = end, start
	}
	span := end - start

	var p Path
	switch {
	case span >= fullTurn-angleEpsilon:
		p = p.circle(outer, start, false)
		if inner > 0 {
			p = p.circle(inner, start, true)
		}
		return p

	case span == 0:
		p = append(p, Segment{Op: OpMoveTo, To: Polar(outer, start)})
		p = append(p, Segment{Op: OpLineTo, To: Polar(inner, start)})
		return append(p, Segment{Op: OpClose})
	}

	p = append(p, Segment{Op: OpMoveTo, To: Polar(outer, start)})
	p = append(p, arcTo(outer, start, end))
	if inner > 0 {
		p = append(p, Segment{Op: OpLineTo, To: Polar(inner, end)})
		p = append(p, arcTo(inner, end, start))
	} else {
		p = append(p, Segment{Op: OpLineTo, To: Point{}})
	}
	return append(p, Segment{Op: OpClose})
}

func arcTo(r, from, to float64) Segment {
	return Segment{Op: OpArcTo, To: Polar(r, to), Radius: r, StartAngle: from, EndAngle: to}
}

// circle appends a closed circle split into two half turns, clockwise
// unless ccw.
func (p Path) circle(r, start float64, ccw bool) Path {
	half := math.Pi
	if ccw {
		half = -half
	}
	p = append(p, Segment{Op: OpMoveTo, To: Polar(r, start)})
	p = append(p, arcTo(r, start, start+half))
	p = append(p, arcTo(r, start+half, start+2*half))
	return append(p, Segment{Op: OpClose})
}

// SVG renders p as SVG path data.
func (p Path) SVG() string {
	var b strings.Builder
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			b.WriteByte('M')
			writePoint(&b, s.To)
		case OpLineTo:
			b.WriteByte('L')
			writePoint(&b, s.To)
		case OpArcTo:
			sweep := s.EndAngle - s.StartAngle
			large, dir := "0", "1"
			if math.Abs(sweep) > math.Pi {
				large = "1"
			}
			if sweep < 0 {
				dir = "0"
			}
			b.WriteByte('A')
			b.WriteString(FormatCoord(s.Radius))
			b.WriteByte(',')
			b.WriteString(FormatCoord(s.Radius))
			b.WriteString(" 0 ")
			b.WriteString(large)
			b.WriteByte(',')
			b.WriteString(dir)
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(FormatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(FormatCoord(pt.Y))
}

// FormatCoord prints a coordinate with at most three decimals and no
// trailing zeros.
func FormatCoord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Emit replays p into sink, offset by origin. Arcs become cubic Béziers
// spanning at most a quarter turn each.
func (p Path) Emit(sink PathSink, origin Point) {
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			sink.MoveTo(origin.X+s.To.X, origin.Y+s.To.Y)
		case OpLineTo:
			sink.LineTo(origin.X+s.To.X, origin.Y+s.To.Y)
		case OpArcTo:
			emitArc(sink, origin, s.Radius, s.StartAngle, s.EndAngle)
		case OpClose:
			sink.Close()
		}
	}
}

func emitArc(sink PathSink, origin Point, r, from, to float64) {
	sweep := to - from
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - angleEpsilon))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	// Chart angles are measured from north; shift to the screen's x axis.
	a := from - math.Pi/2
	for i := 0; i < n; i++ {
		b := a + step
		k := 4.0 / 3.0 * math.Tan(step/4) * r
		sa, ca := math.Sincos(a)
		sb, cb := math.Sincos(b)
		x0, y0 := r*ca, r*sa
		x3, y3 := r*cb, r*sb
		sink.CubicTo(
			origin.X+x0-k*sa, origin.Y+y0+k*ca,
			origin.X+x3+k*sb, origin.Y+y3-k*cb,
			origin.X+x3, origin.Y+y3,
		)
		a = b
	}
}
