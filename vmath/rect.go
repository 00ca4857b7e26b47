package vmath

// Rect is an axis-aligned rectangle, Y grows downward
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds a rect of size w x h centered on (cx, cy)
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports strict overlap; rects sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether the point lies inside, inclusive of the top-left edge
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Inset shrinks the rect by m on every side; size never goes negative
func (r Rect) Inset(m float64) Rect {
	w := r.W - 2*m
	h := r.H - 2*m
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cx, cy := r.Center()
	return RectFromCenter(cx, cy, w, h)
}

// Translate returns the rect moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
