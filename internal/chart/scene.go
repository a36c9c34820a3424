package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ArcShape is the drawn wedge of one series.
type ArcShape struct {
	Index int
	Name  string
	Value float64
	Color colorful.Color
	// Fill is the configured color string, kept for SVG output.
	Fill          string
	InnerRadius   float64
	OuterRadius   float64
	StartAngle    float64
	current       float64
	endAngle      float64
	path          Path
	scene         *Scene
	onPointerMove func(pt Point)
	onPointerOut  func()
}

// Current is the value the arc currently shows; it reaches Value when the
// entrance animation ends.
func (a *ArcShape) Current() float64 { return a.current }

// EndAngle is the current end angle in radians.
func (a *ArcShape) EndAngle() float64 { return a.endAngle }

// Path is the current wedge outline in chart space.
func (a *ArcShape) Path() Path { return a.path }

func (a *ArcShape) sweep(v float64, s Scale) {
	if a.scene.detached {
		return
	}
	a.current = v
	a.endAngle = s.Angle(v)
	a.path = BuildArc(a.InnerRadius, a.OuterRadius, a.StartAngle, a.endAngle)
}

// contains reports whether the chart-space polar position (r, theta) lies
// on the visible part of the arc.
func (a *ArcShape) contains(r, theta float64) bool {
	if r < a.InnerRadius || r > a.OuterRadius {
		return false
	}
	return a.endAngle > a.StartAngle && theta >= a.StartAngle && theta <= a.endAngle
}

// Scene is the retained visual tree of one render.
type Scene struct {
	width, height float64
	layout        LayoutParams
	scale         Scale
	radial        []RadialGuide
	angular       []AngularGuide
	arcs          []*ArcShape
	timeline      *Timeline
	detached      bool
}

func newScene(cfg Config, l LayoutParams, s Scale) *Scene {
	return &Scene{
		width:    cfg.Width,
		height:   cfg.Height,
		layout:   l,
		scale:    s,
		timeline: NewTimeline(),
	}
}

func (s *Scene) Width() float64  { return s.width }
func (s *Scene) Height() float64 { return s.height }

// Origin is the chart center in container coordinates.
func (s *Scene) Origin() Point { return Point{X: s.width / 2, Y: s.height / 2} }

func (s *Scene) Layout() LayoutParams          { return s.layout }
func (s *Scene) Scale() Scale                  { return s.scale }
func (s *Scene) RadialGuides() []RadialGuide   { return s.radial }
func (s *Scene) AngularGuides() []AngularGuide { return s.angular }
func (s *Scene) Arcs() []*ArcShape             { return s.arcs }
func (s *Scene) Timeline() *Timeline           { return s.timeline }

// Detached reports whether a newer render replaced this scene.
func (s *Scene) Detached() bool { return s.detached }

// HitTest returns the arc under the container-space point pt.
func (s *Scene) HitTest(pt Point) (*ArcShape, bool) {
	if s.detached {
		return nil, false
	}
	o := s.Origin()
	dx, dy := pt.X-o.X, pt.Y-o.Y
	r := math.Hypot(dx, dy)
	i, ok := s.layout.RingAt(r)
	if !ok || i >= len(s.arcs) {
		return nil, false
	}
	theta := math.Atan2(dx, -dy)
	if theta < 0 {
		theta += fullTurn
	}
	if a := s.arcs[i]; a.contains(r, theta) {
		return a, true
	}
	return nil, false
}

func (s *Scene) detach() {
	s.detached = true
	s.timeline.Stop()
}
