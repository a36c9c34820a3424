package chart

import (
	"time"

	"github.com/pkg/errors"
)

// Mount is a container the chart renders into. It owns the current scene,
// one tooltip and the hover state.
type Mount struct {
	id      string
	scene   *Scene
	tooltip *Tooltip
	hovered *ArcShape
}

// NewMount returns an empty mount.
func NewMount(id string) *Mount {
	return &Mount{id: id, tooltip: &Tooltip{}}
}

func (m *Mount) ID() string         { return m.id }
func (m *Mount) Scene() *Scene      { return m.scene }
func (m *Mount) Tooltip() *Tooltip  { return m.tooltip }
func (m *Mount) Hovered() *ArcShape { return m.hovered }

// Clear discards the rendered scene, stopping its animation.
func (m *Mount) Clear() {
	if m.scene != nil {
		m.scene.detach()
		m.scene = nil
	}
	m.hovered = nil
	m.tooltip.hide()
}

func (m *Mount) attach(s *Scene) {
	m.Clear()
	m.scene = s
}

// Advance moves the scene's animation clock by dt.
func (m *Mount) Advance(dt time.Duration) {
	if m.scene != nil {
		m.scene.timeline.Advance(dt)
	}
}

// Animating reports whether the entrance animation is still running.
func (m *Mount) Animating() bool {
	return m.scene != nil && m.scene.timeline.Active()
}

// PointerMove dispatches a pointer position in container coordinates:
// pointer-out to the arc it left, pointer-move to the arc under it.
func (m *Mount) PointerMove(x, y float64) {
	if m.scene == nil {
		return
	}
	pt := Point{X: x, Y: y}
	hit, _ := m.scene.HitTest(pt)
	if m.hovered != nil && m.hovered != hit {
		m.hovered.pointerOut()
	}
	m.hovered = hit
	if hit != nil {
		hit.pointerMove(pt)
	}
}

// PointerLeave reports that the pointer left the container.
func (m *Mount) PointerLeave() {
	if m.hovered != nil {
		m.hovered.pointerOut()
		m.hovered = nil
	}
}

func (a *ArcShape) pointerMove(pt Point) {
	if a.onPointerMove != nil && !a.scene.detached {
		a.onPointerMove(pt)
	}
}

func (a *ArcShape) pointerOut() {
	if a.onPointerOut != nil && !a.scene.detached {
		a.onPointerOut()
	}
}

// Stage is the host's set of mount points, looked up by id.
type Stage struct {
	mounts map[string]*Mount
}

// NewStage returns an empty stage.
func NewStage() *Stage {
	return &Stage{mounts: make(map[string]*Mount)}
}

// Add registers a mount under id, returning the existing one if present.
func (s *Stage) Add(id string) *Mount {
	if m, ok := s.mounts[id]; ok {
		return m
	}
	m := NewMount(id)
	s.mounts[id] = m
	return m
}

// Lookup returns the mount registered under id.
func (s *Stage) Lookup(id string) (*Mount, error) {
	m, ok := s.mounts[id]
	if !ok {
		return nil, errors.Wrapf(ErrRenderTargetMissing, "mount %q", id)
	}
	return m, nil
}

// Remove clears and unregisters the mount under id.
func (s *Stage) Remove(id string) {
	if m, ok := s.mounts[id]; ok {
		m.Clear()
		delete(s.mounts, id)
	}
}
