package chart

import "math"

// Scale maps the value domain [0, DomainMax] linearly onto [0, 2π].
type Scale struct {
	domainMax float64
}

// NewScale builds the scale for data, padding the largest value by
// paddingFactor.
func NewScale(data []DataPoint, paddingFactor float64) Scale {
	var top float64
	for _, d := range data {
		if d.Value > top {
			top = d.Value
		}
	}
	return Scale{domainMax: top * paddingFactor}
}

// DomainMax returns the upper end of the value domain.
func (s Scale) DomainMax() float64 { return s.domainMax }

// Degenerate reports whether the domain collapsed to zero.
func (s Scale) Degenerate() bool { return !(s.domainMax > 0) }

// Angle maps v to radians. A degenerate scale maps everything to 0.
func (s Scale) Angle(v float64) float64 {
	if s.Degenerate() {
		return 0
	}
	return v / s.domainMax * 2 * math.Pi
}

// Degrees is Angle in degrees.
func (s Scale) Degrees(v float64) float64 {
	return s.Angle(v) * 180 / math.Pi
}

// Invert maps an angle in radians back to a value.
func (s Scale) Invert(angle float64) float64 {
	if s.Degenerate() {
		return 0
	}
	return angle / (2 * math.Pi) * s.domainMax
}

// Ticks returns roughly n round values covering the domain, starting at 0.
// The step is a power of ten times 1, 2 or 5. The last tick may coincide
// with a full turn, so callers drawing gridlines drop it. Domains too close
// to the float limits for a usable step yield just {0, DomainMax}.
func (s Scale) Ticks(n int) []float64 {
	if s.Degenerate() || n <= 0 {
		return []float64{0}
	}
	step := tickStep(s.domainMax, n)
	if !(step > 0) || math.IsInf(step, 0) || math.IsInf(1/step, 0) {
		return []float64{0, s.domainMax}
	}
	count := int(math.Floor(s.domainMax/step + 1e-9))

	ticks := make([]float64, 0, count+1)
	if step >= 1 {
		for i := 0; i <= count; i++ {
			ticks = append(ticks, float64(i)*step)
		}
		return ticks
	}
	// Divide by the integral inverse so 0.1 steps stay exact.
	inv := math.Round(1 / step)
	for i := 0; i <= count; i++ {
		ticks = append(ticks, float64(i)/inv)
	}
	return ticks
}

func tickStep(span float64, n int) float64 {
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	switch e := float64(n) / span * step; {
	case e <= .15:
		step *= 10
	case e <= .35:
		step *= 5
	case e <= .75:
		step *= 2
	}
	return step
}
