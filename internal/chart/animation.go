package chart

import (
	"math"
	"time"
)

// Entrance timing of the original chart.
const (
	DefaultStagger  = 200 * time.Millisecond
	DefaultDuration = 1000 * time.Millisecond
)

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// EaseLinear leaves progress unchanged.
func EaseLinear(t float64) float64 { return t }

// EaseCubicInOut accelerates for the first half and decelerates for the
// second.
func EaseCubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return u*u*u/2 + 1
}

// FrameFunc is called once per frame with eased progress in [0, 1].
type FrameFunc func(t float64)

type track struct {
	delay    time.Duration
	duration time.Duration
	ease     EaseFunc
	frame    FrameFunc
	done     bool
}

// Timeline schedules frame callbacks against a clock that only moves when
// the host calls Advance. It is not safe for concurrent use.
type Timeline struct {
	now     time.Duration
	tracks  []*track
	stopped bool
}

// NewTimeline returns a timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Schedule runs frame on every Advance between delay and delay+duration,
// and once more with t=1 when the track completes.
func (tl *Timeline) Schedule(delay, duration time.Duration, ease EaseFunc, frame FrameFunc) {
	if tl.stopped {
		return
	}
	if ease == nil {
		ease = EaseLinear
	}
	tl.tracks = append(tl.tracks, &track{delay: delay, duration: duration, ease: ease, frame: frame})
}

// Now returns the elapsed timeline time.
func (tl *Timeline) Now() time.Duration { return tl.now }

// Advance moves the clock by dt and fires due frames.
func (tl *Timeline) Advance(dt time.Duration) {
	if tl.stopped || dt < 0 {
		return
	}
	tl.now += dt
	tl.fire()
}

// Finish jumps every track to its end.
func (tl *Timeline) Finish() {
	if tl.stopped {
		return
	}
	for _, tr := range tl.tracks {
		if end := tr.delay + tr.duration; end > tl.now {
			tl.now = end
		}
	}
	tl.fire()
}

// Stop detaches the timeline; later calls do nothing.
func (tl *Timeline) Stop() {
	tl.stopped = true
	tl.tracks = nil
}

// Active reports whether any track is still running.
func (tl *Timeline) Active() bool {
	if tl.stopped {
		return false
	}
	for _, tr := range tl.tracks {
		if !tr.done {
			return true
		}
	}
	return false
}

func (tl *Timeline) fire() {
	for _, tr := range tl.tracks {
		if tr.done || tl.now < tr.delay {
			continue
		}
		p := 1.0
		if tr.duration > 0 {
			p = math.Min(1, float64(tl.now-tr.delay)/float64(tr.duration))
		}
		if p >= 1 {
			tr.done = true
		}
		tr.frame(tr.ease(p))
	}
}

// EntranceAnimator grows each arc from zero to its value, one after the
// other.
type EntranceAnimator struct {
	Stagger  time.Duration
	Duration time.Duration
	Ease     EaseFunc
}

// DefaultAnimator returns the original entrance: 200ms stagger, 1s sweep,
// cubic in-out easing.
func DefaultAnimator() EntranceAnimator {
	return EntranceAnimator{Stagger: DefaultStagger, Duration: DefaultDuration, Ease: EaseCubicInOut}
}

// Animate schedules the entrance of arcs on tl. The swept value is
// interpolated, and the end angle derived from it through s every frame.
// The zero EntranceAnimator draws the arcs at their final values at once.
func (a EntranceAnimator) Animate(tl *Timeline, arcs []*ArcShape, s Scale) {
	for i, arc := range arcs {
		if a.Stagger <= 0 && a.Duration <= 0 {
			arc.sweep(arc.Value, s)
			continue
		}
		arc.sweep(0, s)
		tl.Schedule(time.Duration(i)*a.Stagger, a.Duration, a.Ease, func(t float64) {
			arc.sweep(lerp(0, arc.Value, t), s)
		})
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
