package game

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/radial-bar/internal/chart"
	"github.com/iburimskiy/radial-bar/internal/config"
)

// MountID is the container the window hosts the chart in.
const MountID = "prefab_container1"

var (
	backgroundColor = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	guideColor      = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	labelColor      = color.RGBA{R: 210, G: 215, B: 225, A: 255}
	tooltipColor    = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	tooltipBorder   = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	white           = colorful.Color{R: 1, G: 1, B: 1}
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Game hosts one chart in an ebiten window. It plays the widget framework:
// it calls the chart's lifecycle hooks, feeds it frames and pointer
// events, and paints the scene.
type Game struct {
	cfg   *config.Config
	stage *chart.Stage
	mount *chart.Mount
	chart *chart.Chart
	face  *text.GoXFace

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	pointerInside bool
	ready         bool
	lastErr       error

	vertices []ebiten.Vertex
	indices  []uint16
}

// New returns a game for cfg. Data in cfg is delivered as the chart's
// initial data property.
func New(cfg *config.Config) *Game {
	stage := chart.NewStage()
	g := &Game{
		cfg:     cfg,
		stage:   stage,
		mount:   stage.Add(MountID),
		chart:   chart.New(stage, MountID),
		face:    text.NewGoXFace(basicfont.Face7x13),
		prevKey: map[ebiten.Key]bool{},
	}
	if cfg.Data != nil {
		g.setErr(g.chart.Update(chart.PropData, cfg.Data))
	}
	return g
}

func (g *Game) Update() error {
	if !g.ready {
		g.ready = true
		g.setErr(g.chart.Initialize(g.cfg.Chart))
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inRect(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.setErr(g.openDataDialog())
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeyR) {
		// A data property change with the same data replays the entrance.
		g.setErr(g.chart.Update(chart.PropData, g.chart.Data()))
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.dispatchPointer(mouseX, mouseY)
	g.mount.Advance(time.Second / config.TPS)
	return nil
}

// dispatchPointer forwards the cursor to the mount in container
// coordinates, and reports leaving the container once.
func (g *Game) dispatchPointer(mouseX, mouseY int) {
	scene := g.mount.Scene()
	if scene == nil {
		return
	}
	origin := g.containerOrigin(scene)
	x, y := float64(mouseX)-origin.X, float64(mouseY)-origin.Y
	inside := x >= 0 && y >= 0 && x <= scene.Width() && y <= scene.Height()
	switch {
	case inside:
		g.mount.PointerMove(x, y)
	case g.pointerInside:
		g.mount.PointerLeave()
	}
	g.pointerInside = inside
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	chart.Logger().Error("chart host", slog.Any("error", err))
}

func (g *Game) openDataDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Chart Data"),
		zenity.FileFilters{{
			Name:     "Chart data",
			Patterns: []string{"*.yaml", "*.yml", "*.json", "*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	data, err := config.LoadData(filename)
	if err != nil {
		return err
	}
	chart.Logger().Info("loaded chart data", slog.String("file", filename), slog.Int("series", len(data)))
	g.lastErr = nil
	return g.chart.Update(chart.PropData, data)
}

// containerOrigin places the chart container in the middle of the window,
// below the button row.
func (g *Game) containerOrigin(scene *chart.Scene) chart.Point {
	top := float64(config.ButtonY + config.ButtonHeight + 10)
	x := (float64(g.cfg.Window.Width) - scene.Width()) / 2
	y := top + (float64(g.cfg.Window.Height)-top-scene.Height())/2
	return chart.Point{X: math.Max(0, x), Y: math.Max(top, y)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawButton(screen)

	if scene := g.mount.Scene(); scene != nil {
		container := g.containerOrigin(scene)
		o := scene.Origin()
		center := chart.Point{X: container.X + o.X, Y: container.Y + o.Y}

		g.drawGuides(screen, scene, center)
		g.drawArcs(screen, scene, center)
		g.drawLabels(screen, scene, center)
		g.drawTooltip(screen, container)
	}

	status := "Open a data file, R replays the entrance, Esc/Q quits"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawGuides(screen *ebiten.Image, scene *chart.Scene, c chart.Point) {
	for _, rg := range scene.RadialGuides() {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(rg.Radius), 1, guideColor, true)
	}
	for _, ag := range scene.AngularGuides() {
		vector.StrokeLine(screen, float32(c.X), float32(c.Y),
			float32(c.X+ag.LineEnd.X), float32(c.Y+ag.LineEnd.Y), 1, guideColor, true)
	}
}

func (g *Game) drawArcs(screen *ebiten.Image, scene *chart.Scene, c chart.Point) {
	hovered := g.mount.Hovered()
	for _, a := range scene.Arcs() {
		if a.EndAngle() == 0 {
			continue
		}
		var path vector.Path
		a.Path().Emit(vectorPath{&path}, c)

		fill := a.Color
		if a == hovered {
			fill = fill.BlendLab(white, 0.25).Clamped()
		}
		r, gr, b, al := vertexColor(fill)

		g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
		for i := range g.vertices {
			v := &g.vertices[i]
			v.SrcX, v.SrcY = 1, 1
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, gr, b, al
		}
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero}
		screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
	}
}

func (g *Game) drawLabels(screen *ebiten.Image, scene *chart.Scene, c chart.Point) {
	for _, rg := range scene.RadialGuides() {
		g.drawText(screen, rg.Name, c.X+rg.LabelAt.X, c.Y+rg.LabelAt.Y, 0, chart.AnchorStart)
	}
	for _, ag := range scene.AngularGuides() {
		rad := ag.TextRotation() * math.Pi / 180
		g.drawText(screen, ag.Label, c.X+ag.LabelAt.X, c.Y+ag.LabelAt.Y, rad, ag.Anchor)
	}
}

// drawText draws s with its baseline anchored at (x, y), rotated by rad.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, rad float64, anchor chart.Anchor) {
	op := &text.DrawOptions{}
	if anchor == chart.AnchorEnd {
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(0, -g.face.Metrics().HAscent)
	op.GeoM.Rotate(rad)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawTooltip(screen *ebiten.Image, container chart.Point) {
	tip := g.mount.Tooltip()
	if !tip.Visible() {
		return
	}
	pos := tip.Position()
	x, y := container.X+pos.X, container.Y+pos.Y
	w, h := text.Measure(tip.Text(), g.face, 0)
	w, h = w+10, h+6

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), tooltipColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, tooltipBorder, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+5, y+3)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, tip.Text(), g.face, op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	label := "Open Data"
	textWidth := len(label) * 6 // debug font glyph width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running window")
	}
	return nil
}
