package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Layout constants, in pixels unless noted.
const (
	DefaultWidth    = 300
	DefaultHeight   = 300
	DefaultNumTicks = 10
	MaxNumTicks     = 360

	// DomainPadding stretches the domain so the largest arc stops short of
	// a full turn.
	DomainPadding = 1.1

	Margin          = 40
	MinRadius       = 10
	RingPadding     = 10
	LabelPadding    = -5
	TickLabelOffset = 10
)

// DefaultColors is the palette used when Config.Colors is empty.
var DefaultColors = []string{"#00c2ea", "#81c447", "#F71919", "#FFFF00"}

// DataPoint is one named series value. Values are non-negative.
type DataPoint struct {
	Name  string  `mapstructure:"name" json:"name" yaml:"name"`
	Value float64 `mapstructure:"value" json:"value" yaml:"value"`
}

// SampleData returns the series shown when the host never sets data.
func SampleData() []DataPoint {
	return []DataPoint{
		{Name: "On-Time", Value: 432},
		{Name: "Completed", Value: 310},
		{Name: "OverDue", Value: 132},
		{Name: "Pending Sign-Off", Value: 200},
	}
}

// Config holds the display properties of a chart. Zero fields take the
// package defaults.
type Config struct {
	Width    float64  `mapstructure:"width"`
	Height   float64  `mapstructure:"height"`
	Colors   []string `mapstructure:"colors"`
	NumTicks int      `mapstructure:"num_ticks"`
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if len(c.Colors) == 0 {
		c.Colors = append([]string(nil), DefaultColors...)
	}
	if c.NumTicks == 0 {
		c.NumTicks = DefaultNumTicks
	}
	return c
}

// Validate checks a defaulted config.
func (c Config) Validate() error {
	if !(c.Width > 0) || math.IsInf(c.Width, 0) {
		return configError("width must be positive, got %v", c.Width)
	}
	if !(c.Height > 0) || math.IsInf(c.Height, 0) {
		return configError("height must be positive, got %v", c.Height)
	}
	if c.NumTicks < 0 || c.NumTicks > MaxNumTicks {
		return configError("num ticks must be between 0 and %d, got %d", MaxNumTicks, c.NumTicks)
	}
	for _, s := range c.Colors {
		if _, err := colorful.Hex(s); err != nil {
			return configError("color %q: %v", s, err)
		}
	}
	return nil
}

// palette parses the configured colors once per render.
func (c Config) palette() ([]colorful.Color, error) {
	out := make([]colorful.Color, len(c.Colors))
	for i, s := range c.Colors {
		col, err := colorful.Hex(s)
		if err != nil {
			return nil, configError("color %q: %v", s, err)
		}
		out[i] = col
	}
	return out, nil
}

// ColorIndex returns the palette slot for series i.
func ColorIndex(i, n int) int {
	return i % n
}

func validateData(data []DataPoint, paddingFactor float64) error {
	if len(data) == 0 {
		return configError("data is empty")
	}
	seen := make(map[string]struct{}, len(data))
	for i, d := range data {
		if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) || d.Value < 0 {
			return configError("series %d (%q): value must be finite and non-negative, got %v", i, d.Name, d.Value)
		}
		if _, dup := seen[d.Name]; dup {
			return configError("series %d: duplicate name %q", i, d.Name)
		}
		seen[d.Name] = struct{}{}
		if math.IsInf(d.Value*paddingFactor, 0) {
			return configError("series %d (%q): value %v overflows the padded domain", i, d.Name, d.Value)
		}
	}
	return nil
}

// Point is a position in chart space (origin at the chart center, y down)
// or container space, depending on context.
type Point struct {
	X, Y float64
}

// Polar returns the chart-space point at radius r and angle theta, where
// theta 0 points north and grows clockwise.
func Polar(r, theta float64) Point {
	return Point{X: r * math.Sin(theta), Y: -r * math.Cos(theta)}
}
