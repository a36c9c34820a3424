package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/radial-bar/internal/chart"
)

// LabelSize is the font size of exported labels, in points.
const LabelSize = 10

var (
	background = gg.White
	guideColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	labelColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// ggPath feeds a chart path into a gg context.
type ggPath struct {
	dc *gg.Context
}

func (p ggPath) MoveTo(x, y float64)                  { p.dc.MoveTo(x, y) }
func (p ggPath) LineTo(x, y float64)                  { p.dc.LineTo(x, y) }
func (p ggPath) CubicTo(x1, y1, x2, y2, x, y float64) { p.dc.CubicTo(x1, y1, x2, y2, x, y) }
func (p ggPath) Close()                               { p.dc.ClosePath() }

// Rasterize paints the scene's current geometry with gg's software
// renderer. Labels are drawn horizontally; gg does not transform text.
func Rasterize(scene *chart.Scene) (image.Image, error) {
	if scene == nil {
		return nil, errors.Wrap(chart.ErrRenderTargetMissing, "png export")
	}
	w := int(math.Ceil(scene.Width()))
	h := int(math.Ceil(scene.Height()))
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(background)

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "loading label font")
	}
	defer source.Close()
	dc.SetFont(source.Face(LabelSize))

	o := scene.Origin()
	dc.Push()
	dc.Translate(o.X, o.Y)
	defer dc.Pop()

	dc.SetLineWidth(1)
	dc.SetColor(guideColor)
	for _, rg := range scene.RadialGuides() {
		dc.DrawCircle(0, 0, rg.Radius)
		if err := dc.Stroke(); err != nil {
			return nil, errors.Wrapf(err, "ring guide %d", rg.Index)
		}
	}
	for _, ag := range scene.AngularGuides() {
		dc.MoveTo(0, 0)
		dc.LineTo(ag.LineEnd.X, ag.LineEnd.Y)
		if err := dc.Stroke(); err != nil {
			return nil, errors.Wrapf(err, "tick guide %s", ag.Label)
		}
	}

	for _, a := range scene.Arcs() {
		a.Path().Emit(ggPath{dc}, chart.Point{})
		dc.SetColor(a.Color)
		if err := dc.Fill(); err != nil {
			return nil, errors.Wrapf(err, "arc %q", a.Name)
		}
	}

	// Text ignores the context transform, so labels take absolute positions.
	dc.SetColor(labelColor)
	for _, rg := range scene.RadialGuides() {
		dc.DrawString(rg.Name, o.X+rg.LabelAt.X, o.Y+rg.LabelAt.Y)
	}
	for _, ag := range scene.AngularGuides() {
		ax := 0.0
		if ag.Anchor == chart.AnchorEnd {
			ax = 1
		}
		dc.DrawStringAnchored(ag.Label, o.X+ag.LabelAt.X, o.Y+ag.LabelAt.Y, ax, 0)
	}

	return dc.Image(), nil
}

// WritePNG encodes the rasterized scene as PNG.
func WritePNG(w io.Writer, scene *chart.Scene) error {
	img, err := Rasterize(scene)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "png export")
}
