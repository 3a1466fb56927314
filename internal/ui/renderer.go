package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/diegok/pixbreak/internal/protocol"
)

const (
	BallChar  = '●'
	Title     = "PIXBREAK"
	WinText   = "You Win!!!"
	LoseText  = "GAME OVER"
	MinWidth  = 20
	MinHeight = 10
)

// Rows above the field box: title and scoreboard
const headerRows = 2

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderRound draws one frame of the round
func (r *Renderer) RenderRound(state protocol.RoundState) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	if screenW < MinWidth || screenH < MinHeight {
		r.screen.DrawCentered(screenH/2, "Terminal too small", tcell.StyleDefault.Foreground(tcell.ColorRed))
		r.screen.Show()
		return
	}

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(ColorBorder)
	r.screen.DrawCentered(0, Title, titleStyle)
	r.renderScoreboard(state, screenW)

	// Field box fills everything between the header and the status line
	boxY := headerRows
	boxH := screenH - headerRows - 1
	boxStyle := tcell.StyleDefault.Foreground(ColorBorder)
	r.screen.DrawBox(0, boxY, screenW, boxH, boxStyle)

	canvas := NewCanvas(screenW-2, boxH-2, state.FieldWidth, state.FieldHeight, ColorPlayArea)
	r.drawField(canvas, state)
	canvas.Draw(r.screen, 1, boxY+1)

	r.renderStatus(state, screenW, screenH-1)

	switch {
	case state.Won:
		r.renderBanner(WinText, tcell.ColorGreen, screenH)
	case state.Lost:
		r.renderBanner(LoseText, tcell.ColorRed, screenH)
	}

	r.screen.Show()
}

// drawField paints bricks, paddle and ball onto the canvas
func (r *Renderer) drawField(c *Canvas, state protocol.RoundState) {
	// Leave a one pixel gutter between neighbouring bricks
	gutter := state.FieldWidth / float64(c.Width())
	for _, b := range state.Bricks {
		if b.Hidden {
			continue
		}
		x0 := b.X - b.Width/2
		x1 := b.X + b.Width/2
		if x1-x0 > 2*gutter {
			x1 -= gutter
		}
		c.FillRect(x0, b.Y-b.Height/2, x1, b.Y+b.Height/2, BrickColor(b.Color))
	}

	p := state.Paddle
	c.FillRect(p.X-p.Width/2, p.Y, p.X+p.Width/2, p.Y+p.Height, ColorPaddle)

	// Once past the bottom edge the ball is hidden by the frame
	ball := state.Ball
	if ball.Y-ball.Radius < state.FieldHeight {
		c.FillCircle(ball.X, ball.Y, ball.Radius, ColorBall)
	}
}

// renderScoreboard draws the score on the left of the header row
func (r *Renderer) renderScoreboard(state protocol.RoundState, screenW int) {
	scoreText := fmt.Sprintf("[ %04d ]", state.Score)
	scoreStyle := tcell.StyleDefault.Background(ColorBorder).Foreground(ColorText).Bold(true)
	r.screen.DrawText(1, 1, scoreText, scoreStyle)

	bricksText := fmt.Sprintf("bricks: %d", state.VisibleBricks())
	if len(state.Bricks) == 0 {
		bricksText = ""
	}
	r.screen.DrawText(screenW-len(bricksText)-1, 1, bricksText, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// renderStatus shows spare balls and key hints on the bottom row
func (r *Renderer) renderStatus(state protocol.RoundState, screenW, y int) {
	balls := strings.TrimSpace(strings.Repeat(string(BallChar)+" ", state.ExtraBalls))
	r.screen.DrawText(1, y, balls, tcell.StyleDefault.Foreground(ColorBall))

	hint := "←/→ move  q quit"
	if state.Over() {
		hint = "press any key"
	}
	r.screen.DrawText(screenW-len([]rune(hint))-1, y, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// renderBanner draws a boxed message over the middle of the field
func (r *Renderer) renderBanner(text string, color tcell.Color, screenH int) {
	screenW, _ := r.screen.Size()
	boxW := len(text) + 6
	boxH := 3
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fillStyle := tcell.StyleDefault.Background(ColorPlayArea)
	r.screen.FillRect(boxX, boxY, boxW, boxH, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(ColorBorder).Background(ColorPlayArea))

	textStyle := tcell.StyleDefault.Background(ColorPlayArea).Foreground(color).Bold(true)
	r.screen.DrawCentered(boxY+1, text, textStyle)
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawCentered(screenH/2-2, "ERROR", titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawCentered(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(screenH/2+3, "Press any key to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
