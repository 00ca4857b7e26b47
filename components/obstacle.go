package components

import (
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/vmath"
)

// ObstaclePair is a top and bottom barrier sharing one x and one gap offset
type ObstaclePair struct {
	X      float64
	Offset float64

	// Passed latches when the player's hitbox enters the gap span
	Passed bool
	// Credited latches when the point for this pair has been awarded
	Credited bool
}

// NewObstaclePair creates a pair at x with the gap shifted by offset
func NewObstaclePair(x, offset float64) *ObstaclePair {
	return &ObstaclePair{X: x, Offset: offset}
}

// GapTop is the bottom edge of the top barrier
func (o *ObstaclePair) GapTop() float64 {
	return constants.Centerline - constants.PipeGap/2 + o.Offset
}

// GapBottom is the top edge of the bottom barrier
func (o *ObstaclePair) GapBottom() float64 {
	return constants.Centerline + constants.PipeGap/2 + o.Offset
}

// Top returns the upper barrier rectangle
func (o *ObstaclePair) Top() vmath.Rect {
	return vmath.Rect{
		X: o.X,
		Y: o.GapTop() - constants.PipeHeight,
		W: constants.PipeWidth,
		H: constants.PipeHeight,
	}
}

// Bottom returns the lower barrier rectangle
func (o *ObstaclePair) Bottom() vmath.Rect {
	return vmath.Rect{
		X: o.X,
		Y: o.GapBottom(),
		W: constants.PipeWidth,
		H: constants.PipeHeight,
	}
}

// Rects returns both barriers, top first
func (o *ObstaclePair) Rects() [2]vmath.Rect {
	return [2]vmath.Rect{o.Top(), o.Bottom()}
}

func (o *ObstaclePair) Left() float64  { return o.X }
func (o *ObstaclePair) Right() float64 { return o.X + constants.PipeWidth }

// Advance scrolls the pair left
func (o *ObstaclePair) Advance(scroll float64) {
	o.X -= scroll
}

// OffScreen reports whether the pair has fully left the playfield to the left
func (o *ObstaclePair) OffScreen() bool {
	return o.Right() < 0
}
