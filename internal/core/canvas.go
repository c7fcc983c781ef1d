package core

import (
	"image/color"
	"math"
)

// Paint describes how a shape is filled.
// Color is used by pixel canvases; Glyph is the character used when the
// shape is rasterized onto a terminal screen (zero means a solid block).
type Paint struct {
	Color color.RGBA
	Glyph rune
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface a game renders its world onto.
// Coordinates are world units; implementations scale to their own resolution.
type Canvas interface {
	FillRect(b Box, p Paint)
	FillPolygon(pts []Point, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	// Glow paints a soft radial highlight centered on (cx, cy).
	Glow(cx, cy, r float64, c color.RGBA)
	// Text draws a single line with its top-left corner at (x, y).
	Text(x, y float64, s string, p Paint)
	// TextCentered draws a single line horizontally centered on the canvas.
	TextCentered(y float64, s string, p Paint)
}

// Ellipse approximates an ellipse with a polygon of n vertices.
func Ellipse(cx, cy, rx, ry float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// RotatedRect returns the corners of a w x h rectangle centered on (cx, cy)
// and rotated by angle radians.
func RotatedRect(cx, cy, w, h, angle float64) []Point {
	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	pts := make([]Point, 4)
	for i, c := range corners {
		pts[i] = Point{
			X: cx + c[0]*cos - c[1]*sin,
			Y: cy + c[0]*sin + c[1]*cos,
		}
	}
	return pts
}

// PolygonContains reports whether (x, y) lies inside the polygon (even-odd rule).
func PolygonContains(pts []Point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := pj.X + (y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// CellCanvas rasterizes world-space drawing onto a character Screen.
// The whole world is stretched over the screen, so one cell covers
// worldW/width by worldH/height world units.
type CellCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCellCanvas creates a canvas mapping a worldW x worldH world onto s.
func NewCellCanvas(s *Screen, worldW, worldH float64) *CellCanvas {
	return &CellCanvas{screen: s, worldW: worldW, worldH: worldH}
}

// cellSize returns the world size of one screen cell.
func (c *CellCanvas) cellSize() (float64, float64) {
	w := Max(c.screen.Width(), 1)
	h := Max(c.screen.Height(), 1)
	return c.worldW / float64(w), c.worldH / float64(h)
}

// toCell converts a world position to the cell containing it.
func (c *CellCanvas) toCell(x, y float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// cellSpan returns the inclusive cell range covered by a world box.
// Thin shapes always cover at least one cell.
func (c *CellCanvas) cellSpan(b Box) (x0, y0, x1, y1 int) {
	cw, ch := c.cellSize()
	x0 = int(math.Floor(b.X / cw))
	y0 = int(math.Floor(b.Y / ch))
	x1 = int(math.Ceil(b.Right()/cw)) - 1
	y1 = int(math.Ceil(b.Bottom()/ch)) - 1
	x1 = Max(x0, x1)
	y1 = Max(y0, y1)
	return x0, y0, x1, y1
}

func (c *CellCanvas) plot(x, y int, p Paint) {
	g := p.Glyph
	if g == 0 {
		g = '█'
	}
	c.screen.SetCell(x, y, g, Quantize(p.Color))
}

// FillRect covers every cell the box touches.
func (c *CellCanvas) FillRect(b Box, p Paint) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.plot(x, y, p)
		}
	}
}

// FillPolygon fills cells whose centers fall inside the polygon.
// A polygon smaller than a cell still marks the cell under its centroid.
func (c *CellCanvas) FillPolygon(pts []Point, p Paint) {
	if len(pts) < 3 {
		return
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	for _, pt := range pts {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
		sumX += pt.X
		sumY += pt.Y
	}

	cw, ch := c.cellSize()
	x0, y0, x1, y1 := c.cellSpan(Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY})
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if PolygonContains(pts, (float64(x)+0.5)*cw, (float64(y)+0.5)*ch) {
				c.plot(x, y, p)
				hit = true
			}
		}
	}

	if !hit {
		n := float64(len(pts))
		cx, cy := c.toCell(sumX/n, sumY/n)
		c.plot(cx, cy, p)
	}
}

// FillCircle fills cells whose centers fall inside the circle.
func (c *CellCanvas) FillCircle(cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	cw, ch := c.cellSize()
	x0, y0, x1, y1 := c.cellSpan(Box{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r})
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x)+0.5)*cw - cx
			dy := (float64(y)+0.5)*ch - cy
			if dx*dx+dy*dy <= r*r {
				c.plot(x, y, p)
				hit = true
			}
		}
	}
	if !hit {
		col, row := c.toCell(cx, cy)
		c.plot(col, row, p)
	}
}

// Glow shades empty cells around the center with a light dot pattern.
func (c *CellCanvas) Glow(cx, cy, r float64, clr color.RGBA) {
	if r <= 0 {
		return
	}
	cw, ch := c.cellSize()
	inner := r / 2
	x0, y0, x1, y1 := c.cellSpan(Box{X: cx - inner, Y: cy - inner, W: 2 * inner, H: 2 * inner})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.screen.Get(x, y) != ' ' {
				continue
			}
			dx := (float64(x)+0.5)*cw - cx
			dy := (float64(y)+0.5)*ch - cy
			if dx*dx+dy*dy <= inner*inner {
				c.screen.SetCell(x, y, '░', Quantize(clr))
			}
		}
	}
}

// Text writes s starting at the cell containing (x, y).
func (c *CellCanvas) Text(x, y float64, s string, p Paint) {
	col, row := c.toCell(x, y)
	c.screen.DrawTextColor(col, row, s, Quantize(p.Color))
}

// TextCentered writes s centered on the row containing y.
func (c *CellCanvas) TextCentered(y float64, s string, p Paint) {
	_, row := c.toCell(0, y)
	col := (c.screen.Width() - len([]rune(s))) / 2
	c.screen.DrawTextColor(col, row, s, Quantize(p.Color))
}
