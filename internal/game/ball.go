package game

import "math"

// Ball is the moving ball. Its settings pointer is shared with the round
// that owns it.
type Ball struct {
	Pos    Vector2
	Vel    Vector2
	Radius float64

	settings *Settings
}

// StepResult describes what happened to the ball during one tick
type StepResult struct {
	Continues bool // False once the ball has dropped off the bottom
	Points    int
	BricksHit int
	PaddleHit bool
	WallHit   bool
}

// NewBall returns a ball at the canonical start position and velocity
func NewBall(s *Settings) *Ball {
	return &Ball{
		Pos:      s.BallStart,
		Vel:      s.BallVelocity,
		Radius:   s.BallRadius,
		settings: s,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// Step runs one tick: integrate, walls, bottom, paddle, then bricks in
// slice order
func (b *Ball) Step(paddle *Paddle, bricks []*Brick) StepResult {
	var res StepResult

	if b.settings.Gravity > 0 {
		b.Vel.Y += b.settings.Gravity
	}
	b.Move()

	res.WallHit = b.bounceWalls()

	// Lost off the bottom edge
	if b.Pos.Y >= b.settings.Height+b.Radius {
		b.Vel = Vector2{}
		return res
	}

	if b.touchesPaddle(paddle) {
		b.BounceOffPaddle(paddle)
		res.PaddleHit = true
	}

	if b.settings.Bricks {
		for _, brick := range bricks {
			if b.Hit(brick) {
				brick.Hidden = true
				res.Points += brick.Value
				res.BricksHit++
			}
		}
	}

	res.Continues = true
	return res
}

// bounceWalls reflects off the side and top walls, clamping the ball back
// inside. The bottom is open.
func (b *Ball) bounceWalls() bool {
	hit := false
	r := b.Radius
	if b.Pos.X < r {
		b.Pos.X = r
		b.Vel.X = -b.Vel.X
		hit = true
	} else if b.Pos.X > b.settings.Width-r {
		b.Pos.X = b.settings.Width - r
		b.Vel.X = -b.Vel.X
		hit = true
	}
	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = -b.Vel.Y
		hit = true
	}
	return hit
}

// touchesPaddle is true when the leading edge of the ball crossed the paddle
// top during this tick's vertical step and the ball is over the paddle.
// The band is only vy tall, so a fast ball can skip it.
func (b *Ball) touchesPaddle(p *Paddle) bool {
	dy := b.Pos.Y + b.Radius - p.Y
	if dy < 0 || dy > b.Vel.Y {
		return false
	}
	return math.Abs(b.Pos.X-p.X) <= p.HalfWidth()
}

// BounceOffPaddle sends the ball back up. With angled reflection the
// contact point steers the ball; otherwise it is a plain vertical flip.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	if !b.settings.AngledPaddle {
		b.Vel.Y = -math.Abs(b.Vel.Y)
		return
	}
	offset := (b.Pos.X - p.X) / p.HalfWidth()
	if vel, ok := Reflect(b.Vel, offset, b.settings.MaxAngleChange, b.settings.MaxDepartAngle); ok {
		b.Vel = vel
	}
}

// Reflect computes the departure velocity off the paddle. offset is where
// the ball struck, -1 at the left end to 1 at the right end. Speed is kept,
// the angle from vertical is limited to maxDepart and the result always
// points up. ok is false for a stationary ball, whose angle is undefined.
func Reflect(vel Vector2, offset, maxChange, maxDepart float64) (out Vector2, ok bool) {
	speed := vel.Length()
	if speed == 0 {
		return vel, false
	}
	offset = clamp(offset, -1, 1)

	incidence := math.Asin(clamp(vel.X/speed, -1, 1))
	angle := clamp(incidence+maxChange*offset, -maxDepart, maxDepart)

	return Vector2{X: math.Sin(angle), Y: -math.Cos(angle)}.Scale(speed), true
}

// Hit tests the ball against a brick and bounces on the first face that
// matches: top/bottom first, then the sides. Hidden bricks never match.
// The caller marks the brick hidden.
func (b *Ball) Hit(brick *Brick) bool {
	if brick.Hidden {
		return false
	}
	dx := math.Abs(b.Pos.X - brick.X)
	dy := math.Abs(b.Pos.Y - brick.Y)

	if dx <= brick.HalfWidth() && dy <= brick.HalfHeight()+b.Radius {
		b.Vel.Y = -b.Vel.Y
		return true
	}
	if dy <= brick.HalfHeight() && dx <= brick.HalfWidth()+b.Radius {
		b.Vel.X = -b.Vel.X
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
