package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/iburimskiy/radial-bar/internal/chart"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Root    svgGroup `xml:"g"`
}

type svgGroup struct {
	Class     string      `xml:"class,attr,omitempty"`
	Transform string      `xml:"transform,attr,omitempty"`
	Circles   []svgCircle `xml:"circle"`
	Lines     []svgLine   `xml:"line"`
	Texts     []svgText   `xml:"text"`
	Paths     []svgPath   `xml:"path"`
	Groups    []svgGroup  `xml:"g"`
}

type svgCircle struct {
	R string `xml:"r,attr"`
}

type svgLine struct {
	X2 string `xml:"x2,attr"`
}

type svgText struct {
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr,omitempty"`
	Style     string `xml:"style,attr,omitempty"`
	Transform string `xml:"transform,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type svgPath struct {
	Class string `xml:"class,attr"`
	D     string `xml:"d,attr"`
	Style string `xml:"style,attr"`
}

// WriteSVG serialises the scene's current geometry: a translated root
// group holding the ring guides ("r axis"), the tick guides ("a axis") and
// the arcs ("data").
func WriteSVG(w io.Writer, scene *chart.Scene) error {
	if scene == nil {
		return errors.Wrap(chart.ErrRenderTargetMissing, "svg export")
	}
	o := scene.Origin()
	doc := svgDoc{
		Xmlns:  "http://www.w3.org/2000/svg",
		Width:  num(scene.Width()),
		Height: num(scene.Height()),
		Root: svgGroup{
			Transform: fmt.Sprintf("translate(%s,%s)", num(o.X), num(o.Y)),
			Groups: []svgGroup{
				radialAxis(scene.RadialGuides()),
				angularAxis(scene.AngularGuides()),
				dataArcs(scene.Arcs()),
			},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "svg export")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "svg export")
	}
	return errors.Wrap(enc.Flush(), "svg export")
}

func radialAxis(guides []chart.RadialGuide) svgGroup {
	g := svgGroup{Class: "r axis"}
	for _, rg := range guides {
		g.Groups = append(g.Groups, svgGroup{
			Circles: []svgCircle{{R: num(rg.Radius)}},
			Texts:   []svgText{{X: num(rg.LabelAt.X), Y: num(rg.LabelAt.Y), Value: rg.Name}},
		})
	}
	return g
}

func angularAxis(guides []chart.AngularGuide) svgGroup {
	g := svgGroup{Class: "a axis"}
	for _, ag := range guides {
		label := svgText{X: num(ag.LabelOffset), Value: ag.Label}
		if ag.Anchor == chart.AnchorEnd {
			label.Style = "text-anchor: end"
		}
		if ag.Flipped() {
			label.Transform = fmt.Sprintf("rotate(%s %s,0)", num(ag.LabelRotation), num(ag.LabelOffset))
		}
		g.Groups = append(g.Groups, svgGroup{
			Transform: fmt.Sprintf("rotate(%s)", num(ag.Rotation)),
			Lines:     []svgLine{{X2: num(ag.Length)}},
			Texts:     []svgText{label},
		})
	}
	return g
}

func dataArcs(arcs []*chart.ArcShape) svgGroup {
	g := svgGroup{Class: "data"}
	for _, a := range arcs {
		g.Paths = append(g.Paths, svgPath{
			Class: "arc",
			D:     a.Path().SVG(),
			Style: "fill: " + a.Fill,
		})
	}
	return g
}

func num(v float64) string {
	return chart.FormatCoord(v)
}
