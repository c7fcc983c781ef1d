package kong

import (
	"image/color"
	"math"

	"github.com/vovakirdan/kong-arcade/internal/core"
	"golang.org/x/image/colornames"
)

// Palette
var (
	platformColor = color.RGBA{0x79, 0x55, 0x48, 0xff}
	ladderColor   = color.RGBA{0x8d, 0x6e, 0x63, 0xff}
	playerColor   = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	kongBodyColor = platformColor
	kongHeadColor = color.RGBA{0x5d, 0x40, 0x37, 0xff}
	goalBodyColor = color.RGBA{0xe9, 0x1e, 0x63, 0xff}
	goalHeadColor = color.RGBA{0xff, 0xeb, 0x3b, 0xff}
	bubbleColor   = color.RGBA{0xb3, 0xb3, 0xb3, 0xb3} // white at 0.7, premultiplied
	glowColor     = color.RGBA{0xcc, 0x46, 0x1b, 0xcc} // rgba(255,87,34,0.8), premultiplied
	barrelColor   = colornames.Saddlebrown
	hoopColor     = colornames.Sienna
	hudColor      = colornames.White
	shadeColor    = color.RGBA{0, 0, 0, 0xb4}

	fireColors = [4]color.RGBA{
		{0xff, 0x57, 0x22, 0xff},
		{0xff, 0x98, 0x00, 0xff},
		{0xff, 0xc1, 0x07, 0xff},
		{0xff, 0xeb, 0x3b, 0xff},
	}
)

// Drawable is implemented by everything that can put itself on a canvas.
type Drawable interface {
	Draw(c core.Canvas)
}

// Render draws the game onto a terminal screen, scaling the world to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewCellCanvas(dst, g.cfg.World.Width, g.cfg.World.Height))
}

// WorldSize returns the play field size in world units.
func (g *Game) WorldSize() (w, h float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// drawList returns the world actors in paint order, back to front.
func (g *Game) drawList() []Drawable {
	list := make([]Drawable, 0, len(g.barrels)+4)
	list = append(list, g.level)
	for _, b := range g.barrels {
		list = append(list, b)
	}
	return append(list, g.level.Kong, g.level.Goal, g.player)
}

// Draw draws the whole frame back to front.
func (g *Game) Draw(c core.Canvas) {
	for _, d := range g.drawList() {
		d.Draw(c)
	}

	g.drawHUD(c)
	g.drawOverlay(c)
}

// Draw draws platforms, ladders and fires.
func (l *Level) Draw(c core.Canvas) {
	for _, p := range l.Platforms {
		c.FillRect(p, core.Paint{Color: platformColor, Glyph: '▀'})
	}
	for _, ld := range l.Ladders {
		c.FillRect(ld, core.Paint{Color: ladderColor, Glyph: 'H'})
	}
	for _, f := range l.Fires {
		f.Draw(c)
	}
}

// Draw draws the flame as a diamond with a glow around it.
func (f *Fire) Draw(c core.Canvas) {
	cx, cy := f.Center()
	diamond := []core.Point{
		{X: cx, Y: f.Y},
		{X: f.Right(), Y: cy},
		{X: cx, Y: f.Bottom()},
		{X: f.X, Y: cy},
	}
	c.FillPolygon(diamond, core.Paint{Color: fireColors[f.Frame()], Glyph: '^'})
	c.Glow(cx, cy, 20, glowColor)
}

// Draw draws the barrel with a hoop showing its spin.
func (b *Barrel) Draw(c core.Canvas) {
	cx, cy := b.Center()
	c.FillCircle(cx, cy, b.W/2, core.Paint{Color: barrelColor, Glyph: 'o'})
	c.FillPolygon(core.RotatedRect(cx, cy, b.W*0.8, b.H/6, b.Rotation), core.Paint{Color: hoopColor, Glyph: 'o'})
}

// Draw draws the ape: body, head, and two swinging arms.
func (k *Kong) Draw(c core.Canvas) {
	cx, cy := k.Center()
	paint := core.Paint{Color: kongBodyColor, Glyph: '#'}

	c.FillPolygon(core.Ellipse(cx, cy, k.W/2, k.H/2.5, 24), paint)
	c.FillPolygon(core.Ellipse(cx, k.Y+k.H/4, k.W/3, k.W/3.5, 20), core.Paint{Color: kongHeadColor, Glyph: '#'})

	armW, armH := k.W/3, k.W/6
	angle := k.ArmAngle()
	c.FillPolygon(arm(k.X+k.W/3, k.Y+k.H/2.5, armW, armH, angle), paint)

	rx, ry := k.X+k.W/1.5, k.Y+k.H/2.5
	c.FillPolygon(arm(rx, ry, armW, armH, -angle-0.5), paint)

	if k.HoldingBarrel() {
		sin, cos := math.Sincos(-angle - 0.5)
		hx, hy := rx+cos*armW, ry+sin*armW
		c.FillRect(core.NewBox(hx-10, hy-10, 20, 20), core.Paint{Color: barrelColor, Glyph: 'o'})
	}
}

// arm returns a w x h rectangle hinged at its top-left corner (px, py)
// and rotated around it.
func arm(px, py, w, h, angle float64) []core.Point {
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	pts := make([]core.Point, 4)
	for i, v := range corners {
		pts[i] = core.Point{X: px + v[0]*cos - v[1]*sin, Y: py + v[0]*sin + v[1]*cos}
	}
	return pts
}

// Draw draws the captive and, at times, a call for help.
func (g *Goal) Draw(c core.Canvas) {
	cx := g.X + g.W/2
	c.FillPolygon(core.Ellipse(cx, g.Y+g.H/1.5, g.W/2, g.H/3, 20), core.Paint{Color: goalBodyColor, Glyph: 'A'})
	c.FillCircle(cx, g.Y+g.H/4, g.W/3, core.Paint{Color: goalHeadColor, Glyph: 'o'})

	if g.CallingForHelp() {
		c.FillPolygon(core.Ellipse(cx, g.Y-10, 10, 20, 16), core.Paint{Color: bubbleColor, Glyph: ' '})
		c.Text(cx-15, g.Y-40, "HELP!", core.Paint{Color: hudColor})
	}
}

// Draw draws the player with a face on the facing side and stepping feet.
func (p *Player) Draw(c core.Canvas) {
	c.FillRect(p.Box, core.Paint{Color: playerColor})

	eyeX := p.X + p.W - 10
	if !p.FacingRight {
		eyeX = p.X + 4
	}
	c.FillRect(core.NewBox(eyeX, p.Y+6, 6, 6), core.Paint{Color: hudColor, Glyph: '•'})

	// Feet alternate with the walk phase
	step := 0.0
	if int(p.Frame)%2 == 1 {
		step = 4
	}
	c.FillRect(core.NewBox(p.X+2+step, p.Bottom()-6, 8, 6), core.Paint{Color: kongHeadColor, Glyph: '▄'})
	c.FillRect(core.NewBox(p.Right()-10-step, p.Bottom()-6, 8, 6), core.Paint{Color: kongHeadColor, Glyph: '▄'})
}

func (g *Game) drawHUD(c core.Canvas) {
	w := g.cfg.World.Width
	paint := core.Paint{Color: hudColor}
	c.Text(10, 10, g.panel.Score, paint)
	c.Text(w/2-40, 10, g.panel.Lives, paint)
	c.Text(w-120, 10, g.panel.Level, paint)
}

func (g *Game) drawOverlay(c core.Canvas) {
	w, h := g.cfg.World.Width, g.cfg.World.Height

	var lines []string
	var title color.RGBA
	switch {
	case g.panel.Start:
		title = colornames.Gold
		lines = []string{
			"BARREL KONG",
			"",
			"Arrows move and climb, SPACE jumps",
			"Press SPACE or ENTER to start",
		}
	case g.panel.GameOver:
		title = colornames.Orangered
		lines = []string{
			"GAME OVER",
			"",
			g.panel.Summary,
			"Press R or ENTER to play again",
		}
	case g.state == StatePaused:
		title = colornames.Gold
		lines = []string{"PAUSED", "", "Press P to resume"}
	default:
		return
	}

	c.FillRect(core.NewBox(0, 0, w, h), core.Paint{Color: shadeColor, Glyph: ' '})
	y := h/2 - float64(len(lines))*20
	for i, line := range lines {
		paint := core.Paint{Color: hudColor}
		if i == 0 {
			paint.Color = title
		}
		c.TextCentered(y+float64(i)*40, line, paint)
	}
}
