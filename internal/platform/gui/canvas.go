package gui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/kong-arcade/internal/core"
)

// Drawing constants
const (
	textSize  = 20
	glowRings = 6
)

var fontSource *text.GoTextFaceSource

// loadAssets prepares the font once.
func loadAssets() error {
	if fontSource != nil {
		return nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	fontSource = src
	return nil
}

// Canvas draws world-space shapes onto an Ebitengine image.
// The image is expected to be the size of the world.
type Canvas struct {
	dst   *ebiten.Image
	width float64
	face  text.Face
}

// NewCanvas wraps a destination image.
func NewCanvas(dst *ebiten.Image, worldW float64) *Canvas {
	return &Canvas{
		dst:   dst,
		width: worldW,
		face:  &text.GoTextFace{Source: fontSource, Size: textSize},
	}
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(b core.Box, p core.Paint) {
	vector.FillRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), p.Color, false)
}

// FillPolygon fills a convex or concave polygon.
func (c *Canvas) FillPolygon(pts []core.Point, p core.Paint) {
	path, ok := polygonPath(pts)
	if !ok {
		return
	}

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(p.Color)
	vector.FillPath(c.dst, path, nil, op)
}

// polygonPath traces a closed path through pts. Fewer than three points
// enclose nothing.
func polygonPath(pts []core.Point) (*vector.Path, bool) {
	if len(pts) < 3 {
		return nil, false
	}

	path := &vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()
	return path, true
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, r float64, p core.Paint) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), p.Color, true)
}

// Glow stacks translucent rings that fade toward the edge.
func (c *Canvas) Glow(cx, cy, r float64, clr color.RGBA) {
	for i := range glowRings {
		f := 1 - float64(i)/glowRings
		ring := scaleAlpha(clr, 1/float64(glowRings))
		vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r*f), ring, true)
	}
}

// scaleAlpha multiplies a premultiplied color by k.
func scaleAlpha(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// Text draws a line with its top-left corner at (x, y).
func (c *Canvas) Text(x, y float64, s string, p core.Paint) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(p.Color)
	text.Draw(c.dst, s, c.face, op)
}

// TextCentered draws a line centered horizontally on the world.
func (c *Canvas) TextCentered(y float64, s string, p core.Paint) {
	w, _ := text.Measure(s, c.face, 0)
	c.Text((c.width-w)/2, y, s, p)
}
