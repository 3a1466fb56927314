package game

import "github.com/diegok/pixbreak/internal/protocol"

// Paddle is the player's bat. It only moves horizontally and is always
// fully inside the field.
type Paddle struct {
	X     float64 // Center, always within [HalfWidth, field width - HalfWidth]
	Y     float64 // Top edge, fixed
	Width float64

	settings *Settings
}

// NewPaddle places the paddle at the horizontal center of the field
func NewPaddle(s *Settings) *Paddle {
	p := &Paddle{
		Y:        s.PaddleY(),
		Width:    s.PaddleWidth,
		settings: s,
	}
	p.SetPosition(s.Width / 2)
	return p
}

func (p *Paddle) HalfWidth() float64 {
	return p.Width / 2
}

// SetPosition moves the paddle center to x, clamped to the field
func (p *Paddle) SetPosition(x float64) {
	half := p.HalfWidth()
	maxX := p.settings.Width - half
	if x > maxX {
		x = maxX
	}
	if x < half {
		x = half
	}
	p.X = x
}

// Move shifts the paddle by delta
func (p *Paddle) Move(delta float64) {
	p.SetPosition(p.X + delta)
}

// Apply moves the paddle one tick's worth in the given direction
func (p *Paddle) Apply(dir protocol.Direction) {
	switch dir {
	case protocol.DirLeft:
		p.Move(-p.settings.PaddleSpeed)
	case protocol.DirRight:
		p.Move(p.settings.PaddleSpeed)
	}
}

func (p *Paddle) LeftX() float64 {
	return p.X - p.HalfWidth()
}

func (p *Paddle) RightX() float64 {
	return p.X + p.HalfWidth()
}
