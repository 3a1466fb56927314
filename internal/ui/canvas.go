package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀' // Upper half: foreground is the top pixel, background the bottom

// Canvas is a pixel grid two pixels tall per terminal cell. Drawing calls
// take field coordinates and scale them onto the grid.
type Canvas struct {
	cols, rows     int // Size in cells
	scaleX, scaleY float64
	background     tcell.Color
	pixels         []tcell.Color
}

// NewCanvas maps a fieldW x fieldH area onto cols x rows terminal cells
func NewCanvas(cols, rows int, fieldW, fieldH float64, background tcell.Color) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{
		cols:       cols,
		rows:       rows,
		scaleX:     float64(cols) / fieldW,
		scaleY:     float64(rows*2) / fieldH,
		background: background,
		pixels:     make([]tcell.Color, cols*rows*2),
	}
	c.Clear()
	return c
}

// Width and Height are in pixels
func (c *Canvas) Width() int  { return c.cols }
func (c *Canvas) Height() int { return c.rows * 2 }

func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// Set colors one pixel; out-of-range pixels are ignored
func (c *Canvas) Set(px, py int, color tcell.Color) {
	if px < 0 || py < 0 || px >= c.Width() || py >= c.Height() {
		return
	}
	c.pixels[py*c.cols+px] = color
}

// At returns the color of one pixel
func (c *Canvas) At(px, py int) tcell.Color {
	if px < 0 || py < 0 || px >= c.Width() || py >= c.Height() {
		return c.background
	}
	return c.pixels[py*c.cols+px]
}

// FillRect fills the field-space rectangle [x0, x1) x [y0, y1). Anything
// with positive size covers at least one pixel.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, color tcell.Color) {
	px0, px1 := span(x0*c.scaleX, x1*c.scaleX)
	py0, py1 := span(y0*c.scaleY, y1*c.scaleY)
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			c.Set(px, py, color)
		}
	}
}

// FillCircle fills the pixels whose centers lie inside a field-space
// circle. A circle smaller than a pixel still lights the pixel under its
// center.
func (c *Canvas) FillCircle(cx, cy, radius float64, color tcell.Color) {
	px0, px1 := span((cx-radius)*c.scaleX, (cx+radius)*c.scaleX)
	py0, py1 := span((cy-radius)*c.scaleY, (cy+radius)*c.scaleY)
	filled := false
	for py := py0; py < py1; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		for px := px0; px < px1; px++ {
			dx := (float64(px)+0.5)/c.scaleX - cx
			if dx*dx+dy*dy <= radius*radius {
				c.Set(px, py, color)
				filled = true
			}
		}
	}
	if !filled {
		c.Set(int(cx*c.scaleX), int(cy*c.scaleY), color)
	}
}

// Draw copies the canvas onto the screen with its top-left cell at (x, y)
func (c *Canvas) Draw(s *Screen, x, y int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(row*2)*c.cols+col]
			bottom := c.pixels[(row*2+1)*c.cols+col]
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.SetCell(x+col, y+row, style, halfBlock)
		}
	}
}

func span(a, b float64) (int, int) {
	lo := int(math.Round(a))
	hi := int(math.Round(b))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
