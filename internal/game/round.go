package game

import (
	"fmt"

	"github.com/diegok/pixbreak/internal/protocol"
)

// State is where a round is in its lifecycle
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateQuit
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is what the player did since the last tick
type Input struct {
	Direction protocol.Direction
	Quit      bool
}

// Events reports what happened during one tick
type Events struct {
	PointsScored int
	LifeLost     bool
	BricksHit    int
	RoundWon     bool
	PaddleHit    bool
	WallHit      bool
}

// Round owns one ball, one paddle and the brick wall, and keeps score
type Round struct {
	Ball   *Ball
	Paddle *Paddle
	Bricks []*Brick

	settings Settings
	score    int
	lives    int
	tick     int
	state    State
}

// NewRound validates the settings and sets up a fresh round: full lives,
// zero score, every brick visible
func NewRound(s Settings) (*Round, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	r := &Round{
		settings: s.Clone(),
		lives:    s.Lives,
		state:    StatePlaying,
	}
	r.Ball = NewBall(&r.settings)
	r.Paddle = NewPaddle(&r.settings)
	r.Bricks = NewBrickWall(&r.settings)
	return r, nil
}

// Tick runs one simulation step and reports whether the round continues.
// Once the round is over every further call is a no-op returning false.
func (r *Round) Tick(in Input) (bool, Events) {
	var ev Events
	if r.state != StatePlaying {
		return false, ev
	}
	if in.Quit {
		r.state = StateQuit
		return false, ev
	}
	r.tick++

	r.Paddle.Apply(in.Direction)

	res := r.Ball.Step(r.Paddle, r.Bricks)
	r.score += res.Points
	ev.PointsScored = res.Points
	ev.BricksHit = res.BricksHit
	ev.PaddleHit = res.PaddleHit
	ev.WallHit = res.WallHit

	if !res.Continues {
		r.lives--
		ev.LifeLost = true
		if r.lives == 0 {
			r.state = StateLost
			return false, ev
		}
		r.Ball = NewBall(&r.settings)
	}

	if r.settings.Bricks && r.BricksLeft() == 0 {
		r.state = StateWon
		ev.RoundWon = true
		return false, ev
	}
	return true, ev
}

func (r *Round) Score() int {
	return r.score
}

func (r *Round) Lives() int {
	return r.lives
}

func (r *Round) State() State {
	return r.state
}

// Ticks returns how many simulation steps have run
func (r *Round) Ticks() int {
	return r.tick
}

// BricksLeft counts the bricks still standing
func (r *Round) BricksLeft() int {
	return CountVisible(r.Bricks)
}

// Settings returns a copy of the round's configuration
func (r *Round) Settings() Settings {
	return r.settings.Clone()
}

// Snapshot returns a read-only view of the round for rendering
func (r *Round) Snapshot() protocol.RoundState {
	bricks := make([]protocol.BrickState, len(r.Bricks))
	width, height := r.settings.BrickWidth(), r.settings.BrickHeight
	for i, b := range r.Bricks {
		bricks[i] = protocol.BrickState{
			X:      b.X,
			Y:      b.Y,
			Width:  width,
			Height: height,
			Row:    b.Row,
			Color:  b.Row,
			Hidden: b.Hidden,
		}
	}

	extra := r.lives - 1
	if extra < 0 {
		extra = 0
	}

	return protocol.RoundState{
		Tick: r.tick,
		Ball: protocol.BallState{
			X:      r.Ball.Pos.X,
			Y:      r.Ball.Pos.Y,
			VX:     r.Ball.Vel.X,
			VY:     r.Ball.Vel.Y,
			Radius: r.Ball.Radius,
		},
		Paddle: protocol.PaddleState{
			X:      r.Paddle.X,
			Y:      r.Paddle.Y,
			Width:  r.Paddle.Width,
			Height: r.settings.PaddleHeight,
		},
		Bricks:      bricks,
		Score:       r.score,
		Lives:       r.lives,
		ExtraBalls:  extra,
		FieldWidth:  r.settings.Width,
		FieldHeight: r.settings.Height,
		Won:         r.state == StateWon,
		Lost:        r.state == StateLost,
	}
}
