package game

// Brick is a static target. A brick is hit at most once; after that it is
// hidden for the rest of the round.
type Brick struct {
	Col, Row int
	X, Y     float64 // Center
	Value    int
	Hidden   bool
	PowerUp  string // Reserved, empty when the brick carries nothing

	halfWidth  float64
	halfHeight float64
}

// NewBrick places a brick in grid cell (col, row)
func NewBrick(s *Settings, col, row int) *Brick {
	w := s.BrickWidth()
	h := s.BrickHeight
	return &Brick{
		Col:        col,
		Row:        row,
		X:          w/2 + s.BrickSpacing + float64(col)*(w+s.BrickSpacing),
		Y:          s.AtticHeight + h/2 + float64(row)*(h+s.BrickSpacing),
		Value:      s.BrickValues[row],
		halfWidth:  w / 2,
		halfHeight: h / 2,
	}
}

// NewBrickWall builds the full grid, column by column. The order matters:
// when the ball overlaps two bricks in one tick they are tested in this order.
func NewBrickWall(s *Settings) []*Brick {
	if !s.Bricks {
		return nil
	}
	bricks := make([]*Brick, 0, s.BrickCols*s.BrickRows)
	for col := 0; col < s.BrickCols; col++ {
		for row := 0; row < s.BrickRows; row++ {
			bricks = append(bricks, NewBrick(s, col, row))
		}
	}
	return bricks
}

func (b *Brick) HalfWidth() float64 {
	return b.halfWidth
}

func (b *Brick) HalfHeight() float64 {
	return b.halfHeight
}

// CountVisible returns how many bricks have not been hit
func CountVisible(bricks []*Brick) int {
	n := 0
	for _, b := range bricks {
		if !b.Hidden {
			n++
		}
	}
	return n
}
