package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RenderSuite exercises Render against a fresh mount per test.
type RenderSuite struct {
	suite.Suite
	mount *Mount
	r     *Renderer
}

func (s *RenderSuite) SetupTest() {
	s.mount = NewMount("prefab_container1")
	s.r = NewRenderer(WithAnimator(EntranceAnimator{}))
}

// pointOn returns the container position at radius r and angle theta.
func (s *RenderSuite) pointOn(r, theta float64) Point {
	o := s.mount.Scene().Origin()
	p := Polar(r, theta)
	return Point{X: o.X + p.X, Y: o.Y + p.Y}
}

// TestSampleScenario checks ring count, domain and the largest arc.
func (s *RenderSuite) TestSampleScenario() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	scene := s.mount.Scene()

	s.Require().Len(scene.Arcs(), 4)
	s.Require().Len(scene.RadialGuides(), 4)
	s.InDelta(475.2, scene.Scale().DomainMax(), 1e-9)
	s.InDelta(2*math.Pi*432/475.2, scene.Arcs()[0].EndAngle(), 1e-9)
	s.Equal(Point{X: 150, Y: 150}, scene.Origin())

	for i, a := range scene.Arcs() {
		s.Equal(i, a.Index)
		s.Equal(SampleData()[i].Name, a.Name)
		s.Less(a.InnerRadius, a.OuterRadius)
		s.Less(a.OuterRadius, scene.Layout().ChartRadius)
		s.Zero(a.StartAngle)
	}
}

// TestColorsCycle verifies series i takes colors[i mod len].
func (s *RenderSuite) TestColorsCycle() {
	data := []DataPoint{
		{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}, {"f", 6},
	}
	for _, colors := range [][]string{
		{"#112233"},
		{"#00c2ea", "#81c447", "#F71919", "#FFFF00"},
		{"#000000", "#ffffff"},
	} {
		s.Require().NoError(s.r.Render(data, Config{Colors: colors}, s.mount))
		for i, a := range s.mount.Scene().Arcs() {
			s.Equal(colors[i%len(colors)], a.Fill, "series %d", i)
		}
	}
}

// TestDefaultPalette checks the palette used without configured colors.
func (s *RenderSuite) TestDefaultPalette() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	arcs := s.mount.Scene().Arcs()
	s.Equal("#00c2ea", arcs[0].Fill)
	s.Equal("#00c2ea", arcs[0].Color.Hex())
	s.Equal("#FFFF00", arcs[3].Fill)
}

// TestAllZero renders flat arcs without error.
func (s *RenderSuite) TestAllZero() {
	data := []DataPoint{{"a", 0}, {"b", 0}, {"c", 0}}
	s.Require().NoError(s.r.Render(data, Config{}, s.mount))
	scene := s.mount.Scene()

	s.True(scene.Scale().Degenerate())
	s.Empty(scene.AngularGuides())
	s.Require().Len(scene.Arcs(), 3)
	for _, a := range scene.Arcs() {
		s.Zero(a.EndAngle())
		s.Len(a.Path(), 3, "flat wedge")
	}
}

// TestHoverTooltip follows the pointer over arc "Completed" and out again.
func (s *RenderSuite) TestHoverTooltip() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	tip := s.mount.Tooltip()
	s.False(tip.Visible())

	pt := s.pointOn(67.5, 0.5)
	s.mount.PointerMove(pt.X, pt.Y)
	s.True(tip.Visible())
	s.Equal("310", tip.Text())
	s.Equal(Point{X: pt.X + 10, Y: pt.Y - 25}, tip.Position())
	s.Equal("Completed", s.mount.Hovered().Name)

	// repeated moves reposition the same tooltip
	pt2 := s.pointOn(70, 1)
	s.mount.PointerMove(pt2.X, pt2.Y)
	s.mount.PointerMove(pt2.X, pt2.Y)
	s.Same(tip, s.mount.Tooltip())
	s.Equal(Point{X: pt2.X + 10, Y: pt2.Y - 25}, tip.Position())

	// past the end of the arc
	pt3 := s.pointOn(67.5, 5)
	s.mount.PointerMove(pt3.X, pt3.Y)
	s.False(tip.Visible())
	s.Nil(s.mount.Hovered())
}

// TestHoverSwitchesArcs moves straight from one arc to another.
func (s *RenderSuite) TestHoverSwitchesArcs() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	tip := s.mount.Tooltip()

	a := s.pointOn(90, 0.2)
	s.mount.PointerMove(a.X, a.Y)
	s.Equal("432", tip.Text())

	b := s.pointOn(20, 0.2)
	s.mount.PointerMove(b.X, b.Y)
	s.True(tip.Visible())
	s.Equal("200", tip.Text())

	s.mount.PointerLeave()
	s.False(tip.Visible())
	s.mount.PointerLeave()
	s.False(tip.Visible())
}

// TestHoverFollowsAnimation ignores the not yet swept part of an arc.
func (s *RenderSuite) TestHoverFollowsAnimation() {
	r := NewRenderer()
	s.Require().NoError(r.Render(SampleData(), Config{}, s.mount))

	pt := s.pointOn(90, 0.2)
	s.mount.PointerMove(pt.X, pt.Y)
	s.False(s.mount.Tooltip().Visible(), "arc has not started")

	s.mount.Advance(DefaultDuration)
	s.mount.PointerMove(pt.X, pt.Y)
	s.True(s.mount.Tooltip().Visible())
}

// TestRerenderDetachesPreviousScene checks the full rebuild policy.
func (s *RenderSuite) TestRerenderDetachesPreviousScene() {
	r := NewRenderer()
	s.Require().NoError(r.Render(SampleData(), Config{}, s.mount))
	old := s.mount.Scene()
	oldArc := old.Arcs()[0]

	pt := s.pointOn(90, 0.2)
	s.mount.Advance(DefaultDuration)
	s.mount.PointerMove(pt.X, pt.Y)
	s.Require().True(s.mount.Tooltip().Visible())

	s.Require().NoError(r.Render(SampleData(), Config{}, s.mount))
	s.True(old.Detached())
	s.NotSame(old, s.mount.Scene())
	s.False(s.mount.Tooltip().Visible())

	before := oldArc.Current()
	old.Timeline().Advance(DefaultDuration)
	s.Equal(before, oldArc.Current(), "old animation no longer runs")
	_, hit := old.HitTest(pt)
	s.False(hit)
}

// TestIdempotent compares two renders of the same input.
func (s *RenderSuite) TestIdempotent() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	first := s.mount.Scene()
	other := NewMount("other")
	s.Require().NoError(s.r.Render(SampleData(), Config{}, other))
	second := other.Scene()

	s.Equal(first.RadialGuides(), second.RadialGuides())
	s.Equal(first.AngularGuides(), second.AngularGuides())
	for i := range first.Arcs() {
		s.Equal(first.Arcs()[i].Path().SVG(), second.Arcs()[i].Path().SVG())
	}
}

// TestRejectsInvalidInput fails fast and leaves the mount untouched.
func (s *RenderSuite) TestRejectsInvalidInput() {
	s.Require().NoError(s.r.Render(SampleData(), Config{}, s.mount))
	kept := s.mount.Scene()

	tests := []struct {
		name string
		data []DataPoint
		cfg  Config
	}{
		{"empty data", []DataPoint{}, Config{}},
		{"nil data", nil, Config{}},
		{"negative width", SampleData(), Config{Width: -1}},
		{"negative height", SampleData(), Config{Height: -300}},
		{"bad color", SampleData(), Config{Colors: []string{"teal"}}},
		{"negative ticks", SampleData(), Config{NumTicks: -2}},
		{"negative value", []DataPoint{{"a", -1}}, Config{}},
		{"NaN value", []DataPoint{{"a", math.NaN()}}, Config{}},
		{"duplicate name", []DataPoint{{"a", 1}, {"a", 2}}, Config{}},
		{"too small", SampleData(), Config{Width: 80, Height: 80}},
		{"too many ticks", SampleData(), Config{NumTicks: MaxNumTicks + 1}},
		{"padded max overflows", []DataPoint{{"a", 1.7e308}}, Config{}},
		{"infinite value", []DataPoint{{"a", math.Inf(1)}}, Config{}},
	}
	for _, tt := range tests {
		err := s.r.Render(tt.data, tt.cfg, s.mount)
		s.ErrorIs(err, ErrConfiguration, tt.name)
		s.Same(kept, s.mount.Scene(), tt.name)
	}
}

// TestTinyValues renders values near the float limits with one gridline.
func (s *RenderSuite) TestTinyValues() {
	for _, v := range []float64{5e-324, 1e-310} {
		s.Require().NotPanics(func() {
			s.Require().NoError(s.r.Render([]DataPoint{{"a", v}}, Config{}, s.mount))
		}, "%v", v)
		guides := s.mount.Scene().AngularGuides()
		s.Require().Len(guides, 1, "%v", v)
		s.Equal(0.0, guides[0].Value)
	}
}

// TestMissingMount reports the render target.
func (s *RenderSuite) TestMissingMount() {
	err := Render(SampleData(), Config{}, nil)
	s.ErrorIs(err, ErrRenderTargetMissing)
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func TestRenderPackageDefaults(t *testing.T) {
	m := NewMount("m")
	require.NoError(t, Render(SampleData(), Config{}, m))
	require.True(t, m.Animating())
	m.Scene().Timeline().Finish()
	require.False(t, m.Animating())
	require.Equal(t, 432.0, m.Scene().Arcs()[0].Current())
}
