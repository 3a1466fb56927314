package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Brick colors by row, top row first
var brickHex = []string{
	"#bcb6ff",
	"#b8e1ff",
	"#a9fff7",
	"#94fbab",
	"#82aba1",
}

var (
	ColorBall     = hexColor("#ee4266")
	ColorPaddle   = hexColor("#0ead69")
	ColorBorder   = hexColor("#ffd23f")
	ColorPlayArea = hexColor("#282828")
	ColorText     = hexColor("#540d6e") // Dark text on the border color
)

var brickColors = func() []tcell.Color {
	colors := make([]tcell.Color, len(brickHex))
	for i, h := range brickHex {
		colors[i] = hexColor(h)
	}
	return colors
}()

// BrickColor returns the color for a brick row. Rows past the table fade
// from the last color back toward the first.
func BrickColor(row int) tcell.Color {
	if row < 0 {
		row = 0
	}
	if row < len(brickColors) {
		return brickColors[row]
	}

	first, _ := colorful.Hex(brickHex[0])
	last, _ := colorful.Hex(brickHex[len(brickHex)-1])
	extra := row - len(brickHex) + 1
	t := float64(extra) / float64(extra+len(brickHex))
	return toTcell(last.BlendHcl(first, t).Clamped())
}

func hexColor(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
