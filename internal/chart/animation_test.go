package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseCubicInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseCubicInOut(0))
	assert.Equal(t, 0.5, EaseCubicInOut(0.5))
	assert.Equal(t, 1.0, EaseCubicInOut(1))
	assert.InDelta(t, 0.108, EaseCubicInOut(0.3), 1e-12)
}

func TestTimelineSchedule(t *testing.T) {
	tl := NewTimeline()
	var frames []float64
	tl.Schedule(100*time.Millisecond, 200*time.Millisecond, nil, func(p float64) {
		frames = append(frames, p)
	})

	tl.Advance(50 * time.Millisecond)
	assert.Empty(t, frames, "still in delay")
	assert.True(t, tl.Active())

	tl.Advance(100 * time.Millisecond)
	tl.Advance(100 * time.Millisecond)
	tl.Advance(100 * time.Millisecond)
	tl.Advance(100 * time.Millisecond)

	assert.Equal(t, []float64{0.25, 0.75, 1}, frames)
	assert.False(t, tl.Active())
	assert.Equal(t, 450*time.Millisecond, tl.Now())
}

func TestTimelineStop(t *testing.T) {
	tl := NewTimeline()
	calls := 0
	tl.Schedule(0, time.Second, nil, func(float64) { calls++ })
	tl.Advance(10 * time.Millisecond)
	tl.Stop()

	tl.Advance(time.Second)
	tl.Finish()
	tl.Schedule(0, 0, nil, func(float64) { calls++ })
	tl.Advance(time.Second)

	assert.Equal(t, 1, calls)
	assert.False(t, tl.Active())
}

func animatedSample(t *testing.T, a EntranceAnimator) (*Mount, *Scene) {
	t.Helper()
	m := NewMount("chart")
	require.NoError(t, NewRenderer(WithAnimator(a)).Render(SampleData(), Config{}, m))
	return m, m.Scene()
}

func TestEntranceStaggerLinear(t *testing.T) {
	m, scene := animatedSample(t, EntranceAnimator{
		Stagger:  200 * time.Millisecond,
		Duration: time.Second,
		Ease:     EaseLinear,
	})
	arcs := scene.Arcs()
	for _, a := range arcs {
		assert.Zero(t, a.Current())
		assert.Zero(t, a.EndAngle())
	}

	m.Advance(700 * time.Millisecond)
	assert.InDelta(t, 432*0.7, arcs[0].Current(), 1e-9)
	assert.InDelta(t, 310*0.5, arcs[1].Current(), 1e-9)
	assert.InDelta(t, 132*0.3, arcs[2].Current(), 1e-9)
	assert.InDelta(t, 200*0.1, arcs[3].Current(), 1e-9)
	assert.InDelta(t, scene.Scale().Angle(155), arcs[1].EndAngle(), 1e-12)
	assert.True(t, m.Animating())
}

func TestEntranceDefaultEasing(t *testing.T) {
	m, scene := animatedSample(t, DefaultAnimator())
	arcs := scene.Arcs()

	m.Advance(500 * time.Millisecond)
	assert.InDelta(t, 216, arcs[0].Current(), 1e-9)
	assert.InDelta(t, 310*0.108, arcs[1].Current(), 1e-9)
	assert.Zero(t, arcs[3].Current(), "arc 3 waits 600ms")

	m.Advance(1100 * time.Millisecond)
	assert.False(t, m.Animating())
	for _, a := range arcs {
		assert.Equal(t, a.Value, a.Current())
		assert.InDelta(t, scene.Scale().Angle(a.Value), a.EndAngle(), 1e-12)
	}
}

func TestEntranceArcsAreIndependent(t *testing.T) {
	m, scene := animatedSample(t, DefaultAnimator())
	arcs := scene.Arcs()

	m.Advance(1200 * time.Millisecond)
	assert.Equal(t, arcs[0].Value, arcs[0].Current(), "arc 0 done")
	assert.Equal(t, arcs[1].Value, arcs[1].Current(), "arc 1 done")
	assert.Less(t, arcs[2].Current(), arcs[2].Value)
	assert.Less(t, arcs[3].Current(), arcs[3].Value)
}

func TestStaticAnimatorDrawsFinalGeometry(t *testing.T) {
	m, scene := animatedSample(t, EntranceAnimator{})
	assert.False(t, m.Animating())
	for _, a := range scene.Arcs() {
		assert.Equal(t, a.Value, a.Current())
	}
}
