package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/vmath"
)

// SpriteOptions transforms a sprite while it is drawn
type SpriteOptions struct {
	// FlipV mirrors the sprite top to bottom
	FlipV bool
	// Rotation is a counterclockwise tilt in degrees around the target center
	Rotation float64
}

// DrawSprite scales a sprite into a playfield rectangle with nearest-neighbor
// sampling. Each covered pixel maps back through the inverse rotation
func DrawSprite(c *Canvas, v Viewport, s *asset.Sprite, dst vmath.Rect, opts SpriteOptions) {
	if s == nil || s.Width == 0 || s.Height == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}

	cx, cy := dst.Center()
	area := dst
	var sin, cos float64 = 0, 1
	if opts.Rotation != 0 {
		sin, cos = math.Sincos(vmath.DegToRad(opts.Rotation))
		// A rotated rect stays inside the circle through its corners
		r := math.Hypot(dst.W, dst.H) / 2
		area = vmath.RectFromCenter(cx, cy, 2*r, 2*r)
	}

	x0, y0, x1, y1 := v.PixelRect(area)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fx, fy := v.ToPlayfield(px, py)
			dx, dy := fx-cx, fy-cy

			// Screen y grows downward, so a counterclockwise turn is undone by
			// rotating the destination offset clockwise
			sx := cos*dx - sin*dy
			sy := sin*dx + cos*dy

			u := (sx + dst.W/2) / dst.W
			w := (sy + dst.H/2) / dst.H
			if u < 0 || u >= 1 || w < 0 || w >= 1 {
				continue
			}
			if opts.FlipV {
				w = 1 - w
			}

			tx := min(int(u*float64(s.Width)), s.Width-1)
			ty := min(int(w*float64(s.Height)), s.Height-1)
			c.SetPixel(px, py, s.At(tx, ty))
		}
	}
}

// FillRect paints a playfield rectangle with a solid color
func FillRect(c *Canvas, v Viewport, r vmath.Rect, col tcell.Color) {
	x0, y0, x1, y1 := v.PixelRect(r)
	c.FillPixels(x0, y0, x1, y1, col)
}
