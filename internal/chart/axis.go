package chart

import (
	"math"
	"strconv"
)

// Anchor is the horizontal alignment of a text label about its position.
type Anchor string

const (
	AnchorStart Anchor = "start"
	AnchorEnd   Anchor = "end"
)

// RadialGuide is the boundary circle and name label of one ring.
type RadialGuide struct {
	Index  int
	Name   string
	Radius float64
	// LabelAt is the label baseline start in chart space.
	LabelAt Point
}

// RadialGuides returns one guide per series.
func RadialGuides(data []DataPoint, l LayoutParams) []RadialGuide {
	guides := make([]RadialGuide, len(data))
	for i, d := range data {
		outer := l.OuterRadius(i)
		guides[i] = RadialGuide{
			Index:   i,
			Name:    d.Name,
			Radius:  outer + l.Padding,
			LabelAt: Point{X: l.LabelPadding, Y: -outer + l.Padding},
		}
	}
	return guides
}

// AngularGuide is one tick gridline with its value label.
type AngularGuide struct {
	Value float64
	Label string
	// Angle is scale(Value) in radians.
	Angle float64
	// Rotation is the gridline rotation in degrees, clockwise from the
	// positive x axis: Angle in degrees minus 90.
	Rotation float64
	Length   float64
	LineEnd  Point
	// LabelOffset is the label distance from the origin along the line.
	LabelOffset float64
	LabelAt     Point
	Anchor      Anchor
	// LabelRotation is the label's extra rotation in degrees about LabelAt,
	// on top of Rotation. It is 180 for labels past half a turn.
	LabelRotation float64
}

// TextRotation is the absolute label rotation in degrees.
func (g AngularGuide) TextRotation() float64 {
	return math.Mod(g.Rotation+g.LabelRotation, 360)
}

// Flipped reports whether the label was turned to stay upright.
func (g AngularGuide) Flipped() bool {
	return g.LabelRotation != 0
}

// AngularGuides returns one guide per tick of s, without the final tick.
func AngularGuides(s Scale, l LayoutParams, numTicks int) []AngularGuide {
	ticks := s.Ticks(numTicks)
	ticks = ticks[:len(ticks)-1]

	guides := make([]AngularGuide, 0, len(ticks))
	for _, t := range ticks {
		angle := s.Angle(t)
		offset := l.ChartRadius + l.TickLabelOffset
		g := AngularGuide{
			Value:       t,
			Label:       FormatValue(t),
			Angle:       angle,
			Rotation:    angle*180/math.Pi - 90,
			Length:      l.ChartRadius,
			LineEnd:     Polar(l.ChartRadius, angle),
			LabelOffset: offset,
			LabelAt:     Polar(offset, angle),
			Anchor:      AnchorStart,
		}
		if angle > math.Pi && angle < fullTurn {
			g.Anchor = AnchorEnd
			g.LabelRotation = 180
		}
		guides = append(guides, g)
	}
	return guides
}

// FormatValue prints a data or tick value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
