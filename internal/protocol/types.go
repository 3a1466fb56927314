package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = 1
	DirRight Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// BallState represents the ball's position and velocity
type BallState struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64
}

// PaddleState represents the paddle; X is its center, Y its top edge
type PaddleState struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BrickState represents one brick of the wall, centered on X, Y
type BrickState struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Row    int
	Color  int // Palette index, derived from the row
	Hidden bool
}

// RoundState is everything a renderer needs to draw one frame
type RoundState struct {
	Tick        int
	Ball        BallState
	Paddle      PaddleState
	Bricks      []BrickState
	Score       int
	Lives       int
	ExtraBalls  int // Spare balls shown below the field
	FieldWidth  float64
	FieldHeight float64
	Won         bool
	Lost        bool
}

// VisibleBricks counts bricks that are still standing
func (s RoundState) VisibleBricks() int {
	n := 0
	for _, b := range s.Bricks {
		if !b.Hidden {
			n++
		}
	}
	return n
}

// Over reports whether the round has ended either way
func (s RoundState) Over() bool {
	return s.Won || s.Lost
}
