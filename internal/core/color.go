package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPink
	ColorAmber
)

// palette holds the ANSI 256 code of each terminal color and the
// approximate RGB value it is displayed with.
var palette = []struct {
	c    Color
	ansi string
	rgb  [3]int
}{
	{ColorRed, "1", [3]int{205, 49, 49}},
	{ColorGreen, "2", [3]int{13, 188, 121}},
	{ColorYellow, "3", [3]int{229, 229, 16}},
	{ColorBlue, "4", [3]int{36, 114, 200}},
	{ColorMagenta, "5", [3]int{188, 63, 188}},
	{ColorCyan, "6", [3]int{17, 168, 205}},
	{ColorWhite, "7", [3]int{229, 229, 229}},
	{ColorBrightRed, "9", [3]int{241, 76, 76}},
	{ColorBrightGreen, "10", [3]int{35, 209, 139}},
	{ColorBrightYellow, "11", [3]int{245, 245, 67}},
	{ColorBrightBlue, "12", [3]int{59, 142, 234}},
	{ColorBrightMagenta, "13", [3]int{214, 112, 214}},
	{ColorBrightCyan, "14", [3]int{41, 184, 219}},
	{ColorBrightWhite, "15", [3]int{255, 255, 255}},
	{ColorOrange, "208", [3]int{255, 135, 0}},
	{ColorGray, "245", [3]int{138, 138, 138}},
	{ColorBrown, "94", [3]int{135, 95, 0}},
	{ColorPink, "211", [3]int{255, 135, 175}},
	{ColorAmber, "214", [3]int{255, 175, 0}},
}

// ANSI returns the ANSI 256 color code for c.
// ColorDefault and unknown colors return "", meaning the terminal default.
func (c Color) ANSI() string {
	for _, p := range palette {
		if p.c == c {
			return p.ansi
		}
	}
	return ""
}

// Quantize maps an RGBA color to the closest terminal color.
// Fully transparent colors map to ColorDefault.
func Quantize(c color.RGBA) Color {
	if c.A == 0 {
		return ColorDefault
	}

	best := ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr := int(c.R) - p.rgb[0]
		dg := int(c.G) - p.rgb[1]
		db := int(c.B) - p.rgb[2]
		dist := 2*dr*dr + 4*dg*dg + 3*db*db
		if bestDist < 0 || dist < bestDist {
			best = p.c
			bestDist = dist
		}
	}
	return best
}
