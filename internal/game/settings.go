package game

import (
	"errors"
	"fmt"
	"math"
)

// Default playfield and physics values
const (
	DefaultWidth        = 960
	DefaultHeight       = 600
	DefaultBallRadius   = 10
	DefaultBallSpeedX   = 2
	DefaultBallSpeedY   = 2
	DefaultPaddleWidth  = 100
	DefaultPaddleHeight = 12
	DefaultPaddleBuffer = 2  // Gap between paddle bottom and field bottom
	DefaultPaddleSpeed  = 4  // Pixels per tick while a direction is held
	DefaultLives        = 3
	DefaultBrickRows    = 5
	DefaultBrickCols    = 15
	DefaultBrickHeight  = 20
	DefaultBrickSpacing = 2
	DefaultAtticHeight  = 60 // Empty band above the top brick row
)

const (
	MaxAngleChange = math.Pi / 2 // Steering at the very edge of the paddle
	MaxDepartAngle = math.Pi / 3 // acos(0.5), 60 degrees from vertical
)

// DefaultBrickValues are the points per row, top row first
var DefaultBrickValues = []int{15, 10, 5, 3, 1}

// DefaultPowerUpTypes are reserved names; no power-up behaviour exists yet
var DefaultPowerUpTypes = []string{"board_length"}

// Settings is the immutable configuration shared by every part of a round.
// Build it once, validate it, and hand it to NewRound.
type Settings struct {
	Width  float64
	Height float64

	BallRadius   float64
	BallStart    Vector2
	BallVelocity Vector2

	PaddleWidth  float64
	PaddleHeight float64
	PaddleBuffer float64
	PaddleSpeed  float64

	BrickRows    int
	BrickCols    int
	BrickHeight  float64
	BrickSpacing float64
	AtticHeight  float64
	BrickValues  []int

	Lives int

	MaxAngleChange float64
	MaxDepartAngle float64

	// Capability flags
	Bricks       bool    // Brick wall present; without it there is no win condition
	AngledPaddle bool    // Steer off the paddle instead of a plain vertical flip
	Gravity      float64 // Added to VY every tick, 0 disables

	PowerUpTypes []string
}

// DefaultSettings returns the classic breakout setup with every capability on
// except gravity
func DefaultSettings() Settings {
	return Settings{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		BallRadius:     DefaultBallRadius,
		BallStart:      Vector2{X: DefaultBallRadius, Y: DefaultHeight / 2},
		BallVelocity:   Vector2{X: DefaultBallSpeedX, Y: DefaultBallSpeedY},
		PaddleWidth:    DefaultPaddleWidth,
		PaddleHeight:   DefaultPaddleHeight,
		PaddleBuffer:   DefaultPaddleBuffer,
		PaddleSpeed:    DefaultPaddleSpeed,
		BrickRows:      DefaultBrickRows,
		BrickCols:      DefaultBrickCols,
		BrickHeight:    DefaultBrickHeight,
		BrickSpacing:   DefaultBrickSpacing,
		AtticHeight:    DefaultAtticHeight,
		BrickValues:    append([]int(nil), DefaultBrickValues...),
		Lives:          DefaultLives,
		MaxAngleChange: MaxAngleChange,
		MaxDepartAngle: MaxDepartAngle,
		Bricks:         true,
		AngledPaddle:   true,
		PowerUpTypes:   append([]string(nil), DefaultPowerUpTypes...),
	}
}

// Clone returns a deep copy; the slices are not shared
func (s *Settings) Clone() Settings {
	c := *s
	c.BrickValues = append([]int(nil), s.BrickValues...)
	c.PowerUpTypes = append([]string(nil), s.PowerUpTypes...)
	return c
}

// BrickWidth is derived from the column count so the wall spans the field
func (s *Settings) BrickWidth() float64 {
	return (s.Width - float64(s.BrickCols+1)*s.BrickSpacing) / float64(s.BrickCols)
}

// PaddleY is the fixed top edge of the paddle
func (s *Settings) PaddleY() float64 {
	return s.Height - s.PaddleHeight - s.PaddleBuffer
}

// Validate reports the first setting that would break the engine
func (s *Settings) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"ball radius", s.BallRadius},
		{"paddle width", s.PaddleWidth},
		{"paddle height", s.PaddleHeight},
		{"paddle buffer", s.PaddleBuffer},
		{"paddle speed", s.PaddleSpeed},
		{"brick height", s.BrickHeight},
		{"brick spacing", s.BrickSpacing},
		{"attic height", s.AtticHeight},
		{"max angle change", s.MaxAngleChange},
		{"max depart angle", s.MaxDepartAngle},
		{"gravity", s.Gravity},
	} {
		if !isFinite(f.value) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %vx%v", s.Width, s.Height)
	}
	if s.BallRadius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %v", s.BallRadius)
	}
	if !s.BallStart.IsFinite() || !s.BallVelocity.IsFinite() {
		return errors.New("ball start position and velocity must be finite")
	}
	if s.PaddleWidth <= 0 || s.PaddleWidth > s.Width {
		return fmt.Errorf("paddle width must be in (0, %v], got %v", s.Width, s.PaddleWidth)
	}
	if s.PaddleSpeed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %v", s.PaddleSpeed)
	}
	if s.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d", s.Lives)
	}
	if s.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %v", s.Gravity)
	}
	if s.MaxDepartAngle <= 0 || s.MaxDepartAngle >= math.Pi/2 {
		return fmt.Errorf("max depart angle must be in (0, pi/2), got %v", s.MaxDepartAngle)
	}
	if !s.Bricks {
		return nil
	}
	if s.BrickRows < 1 || s.BrickCols < 1 {
		return fmt.Errorf("brick grid must be at least 1x1, got %dx%d", s.BrickCols, s.BrickRows)
	}
	if len(s.BrickValues) < s.BrickRows {
		return fmt.Errorf("need a value for each of %d brick rows, got %d", s.BrickRows, len(s.BrickValues))
	}
	if s.BrickHeight <= 0 || s.BrickWidth() <= 0 {
		return errors.New("brick cells must have positive size")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
