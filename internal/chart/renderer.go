package chart

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Renderer turns data and display configuration into a scene on a mount.
type Renderer struct {
	animator      EntranceAnimator
	tooltipOffset Point
	domainPadding float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAnimator replaces the entrance animation.
func WithAnimator(a EntranceAnimator) Option {
	return func(r *Renderer) { r.animator = a }
}

// WithTooltipOffset sets the tooltip offset from the pointer.
func WithTooltipOffset(dx, dy float64) Option {
	return func(r *Renderer) { r.tooltipOffset = Point{X: dx, Y: dy} }
}

// WithDomainPadding sets the factor applied to the largest value to get
// the domain maximum.
func WithDomainPadding(f float64) Option {
	return func(r *Renderer) { r.domainPadding = f }
}

// NewRenderer returns a renderer with the original chart's behavior,
// adjusted by opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		animator:      DefaultAnimator(),
		tooltipOffset: Point{X: TooltipOffsetX, Y: TooltipOffsetY},
		domainPadding: DomainPadding,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws data into mount with the package defaults.
func Render(data []DataPoint, cfg Config, mount *Mount) error {
	return NewRenderer().Render(data, cfg, mount)
}

// Render validates its input, then replaces whatever mount shows with a
// fresh scene: ring guides, tick guides and one arc per data point, with
// pointer handlers attached and the entrance animation started. Nothing is
// drawn when validation fails.
func (r *Renderer) Render(data []DataPoint, cfg Config, mount *Mount) error {
	if mount == nil {
		return errors.Wrap(ErrRenderTargetMissing, "render")
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateData(data, r.domainPadding); err != nil {
		return err
	}
	palette, err := cfg.palette()
	if err != nil {
		return err
	}
	layout, err := NewLayout(cfg, len(data))
	if err != nil {
		return err
	}
	scale := NewScale(data, r.domainPadding)

	log := Logger().With(slog.String("mount", mount.ID()))
	if scale.Degenerate() {
		log.Warn("all values are zero, drawing empty arcs", slog.Any("error", ErrDegenerateDomain))
	}
	log.Debug("layout",
		slog.Int("rings", layout.Count),
		slog.Float64("chart_radius", layout.ChartRadius),
		slog.Float64("arc_width", layout.ArcWidth()),
		slog.Float64("domain_max", scale.DomainMax()),
	)

	scene := newScene(cfg, layout, scale)
	scene.radial = RadialGuides(data, layout)
	scene.angular = AngularGuides(scale, layout, cfg.NumTicks)

	tips := TooltipController{tip: mount.tooltip, offset: r.tooltipOffset}
	scene.arcs = make([]*ArcShape, len(data))
	for i, d := range data {
		c := ColorIndex(i, len(palette))
		arc := &ArcShape{
			Index:       i,
			Name:        d.Name,
			Value:       d.Value,
			Color:       palette[c],
			Fill:        cfg.Colors[c],
			InnerRadius: layout.InnerRadius(i),
			OuterRadius: layout.OuterRadius(i),
			scene:       scene,
		}
		arc.onPointerMove = func(pt Point) { tips.Move(pt, arc.Value) }
		arc.onPointerOut = tips.Out
		scene.arcs[i] = arc
	}

	mount.attach(scene)
	r.animator.Animate(scene.timeline, scene.arcs, scale)
	return nil
}
