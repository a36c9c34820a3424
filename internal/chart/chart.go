package chart

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// Property keys the host reports through Update.
const (
	PropData     = "chartdata"
	PropWidth    = "chartwidth"
	PropHeight   = "chartheight"
	PropColors   = "chartcolors"
	PropNumTicks = "numticks"
)

// Chart reacts to the host's lifecycle: Initialize when the widget is
// ready, Update on every property change.
type Chart struct {
	renderer *Renderer
	stage    *Stage
	mountID  string
	cfg      Config
	data     []DataPoint
	ready    bool
}

// New returns a chart that renders into the mount mountID of stage.
func New(stage *Stage, mountID string, opts ...Option) *Chart {
	return &Chart{
		renderer: NewRenderer(opts...),
		stage:    stage,
		mountID:  mountID,
	}
}

// Initialize stores cfg and performs the initial render. Without a data
// property the chart shows SampleData.
func (c *Chart) Initialize(cfg Config) error {
	c.cfg = cfg
	c.ready = true
	Logger().Info("chart ready", slog.String("mount", c.mountID))
	return c.render()
}

// Update applies a property change. Only PropData triggers a re-render;
// size, color and tick changes are kept for the next one. Unknown keys are
// ignored.
func (c *Chart) Update(key string, value any) error {
	switch key {
	case PropData:
		data, ok := value.([]DataPoint)
		if !ok {
			return errors.Wrapf(ErrConfiguration, "%s: want []DataPoint, got %T", key, value)
		}
		c.data = data
		if !c.ready {
			return nil
		}
		Logger().Info("chart data changed", slog.String("mount", c.mountID), slog.Int("series", len(data)))
		return c.render()
	case PropWidth, PropHeight:
		v, ok := toFloat(value)
		if !ok {
			return errors.Wrapf(ErrConfiguration, "%s: want a number, got %T", key, value)
		}
		if key == PropWidth {
			c.cfg.Width = v
		} else {
			c.cfg.Height = v
		}
	case PropColors:
		colors, ok := value.([]string)
		if !ok {
			return errors.Wrapf(ErrConfiguration, "%s: want []string, got %T", key, value)
		}
		c.cfg.Colors = colors
	case PropNumTicks:
		v, ok := toFloat(value)
		if !ok {
			return errors.Wrapf(ErrConfiguration, "%s: want a number, got %T", key, value)
		}
		if v != math.Trunc(v) || v < 0 || v > MaxNumTicks {
			return errors.Wrapf(ErrConfiguration, "%s: want a whole number in [0, %d], got %v", key, MaxNumTicks, v)
		}
		c.cfg.NumTicks = int(v)
	}
	return nil
}

// Config returns the stored display configuration.
func (c *Chart) Config() Config { return c.cfg }

// Data returns the data property, or nil when unset.
func (c *Chart) Data() []DataPoint { return c.data }

// Mount looks up the chart's mount on the stage.
func (c *Chart) Mount() (*Mount, error) {
	if c.stage == nil {
		return nil, errors.Wrap(ErrRenderTargetMissing, "chart has no stage")
	}
	return c.stage.Lookup(c.mountID)
}

func (c *Chart) render() error {
	m, err := c.Mount()
	if err != nil {
		return err
	}
	data := c.data
	if data == nil {
		data = SampleData()
	}
	return c.renderer.Render(data, c.cfg, m)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
