package chart

import "math"

// LayoutParams fixes the ring geometry of one render. It is a value
// object: geometry functions read it and never change it.
type LayoutParams struct {
	Count           int
	ChartRadius     float64
	MinRadius       float64
	Padding         float64
	LabelPadding    float64
	TickLabelOffset float64
}

// NewLayout derives the ring layout for n series in a chart of cfg's size.
func NewLayout(cfg Config, n int) (LayoutParams, error) {
	l := LayoutParams{
		Count:           n,
		ChartRadius:     math.Min(cfg.Width, cfg.Height)/2 - Margin,
		MinRadius:       MinRadius,
		Padding:         RingPadding,
		LabelPadding:    LabelPadding,
		TickLabelOffset: TickLabelOffset,
	}
	if err := l.Validate(); err != nil {
		return LayoutParams{}, err
	}
	return l, nil
}

// Validate reports layouts whose rings would be empty or inverted.
func (l LayoutParams) Validate() error {
	if l.Count <= 0 {
		return configError("layout needs at least one ring")
	}
	if l.ChartRadius <= l.MinRadius {
		return configError("chart radius %.1f leaves no room past the minimum radius %.1f", l.ChartRadius, l.MinRadius)
	}
	if w := l.ArcWidth(); !(w > 0) {
		return configError("%d rings do not fit in radius %.1f (ring width %.2f)", l.Count, l.ChartRadius, w)
	}
	return nil
}

// ArcWidth is the thickness of every ring.
func (l LayoutParams) ArcWidth() float64 {
	n := float64(l.Count)
	return (l.ChartRadius - l.MinRadius - n*l.Padding) / n
}

// InnerRadius of ring i. Ring 0 is outermost.
func (l LayoutParams) InnerRadius(i int) float64 {
	return l.MinRadius + float64(l.Count-(i+1))*(l.ArcWidth()+l.Padding)
}

// OuterRadius of ring i.
func (l LayoutParams) OuterRadius(i int) float64 {
	return l.InnerRadius(i) + l.ArcWidth()
}

// RingAt returns the ring whose band contains radius r.
func (l LayoutParams) RingAt(r float64) (int, bool) {
	if r < l.MinRadius {
		return 0, false
	}
	step := l.ArcWidth() + l.Padding
	k := int(math.Floor((r - l.MinRadius) / step))
	if k < 0 || k >= l.Count {
		return 0, false
	}
	i := l.Count - 1 - k
	if r > l.OuterRadius(i) {
		return 0, false
	}
	return i, true
}
