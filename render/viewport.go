package render

import (
	"math"

	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/vmath"
)

// Viewport maps playfield units to canvas pixels. The playfield keeps its
// aspect ratio and is centered, with letterboxing on the spare axis
type Viewport struct {
	// Scale is playfield units per pixel
	Scale float64
	// OffsetX and OffsetY are the pixel position of the playfield origin
	OffsetX int
	OffsetY int
	// Width and Height are the playfield extent in pixels
	Width  int
	Height int
}

// NewViewport fits the playfield into a pixel area
func NewViewport(pixW, pixH int) Viewport {
	if pixW <= 0 || pixH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Max(constants.ScreenWidth/float64(pixW), constants.ScreenHeight/float64(pixH))
	w := int(constants.ScreenWidth / scale)
	h := int(constants.ScreenHeight / scale)
	return Viewport{
		Scale:   scale,
		OffsetX: (pixW - w) / 2,
		OffsetY: (pixH - h) / 2,
		Width:   w,
		Height:  h,
	}
}

// ToPixel returns the pixel containing a playfield point
func (v Viewport) ToPixel(x, y float64) (int, int) {
	return v.OffsetX + int(math.Floor(x/v.Scale)), v.OffsetY + int(math.Floor(y/v.Scale))
}

// ToPlayfield returns the playfield point at a pixel's center
func (v Viewport) ToPlayfield(px, py int) (float64, float64) {
	return (float64(px-v.OffsetX) + 0.5) * v.Scale, (float64(py-v.OffsetY) + 0.5) * v.Scale
}

// PixelRect returns the half-open pixel range whose centers fall inside r,
// clipped to the playfield
func (v Viewport) PixelRect(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = v.OffsetX + int(math.Ceil(r.Left()/v.Scale-0.5))
	y0 = v.OffsetY + int(math.Ceil(r.Top()/v.Scale-0.5))
	x1 = v.OffsetX + int(math.Ceil(r.Right()/v.Scale-0.5))
	y1 = v.OffsetY + int(math.Ceil(r.Bottom()/v.Scale-0.5))

	x0 = vmath.ClampInt(x0, v.OffsetX, v.OffsetX+v.Width)
	x1 = vmath.ClampInt(x1, v.OffsetX, v.OffsetX+v.Width)
	y0 = vmath.ClampInt(y0, v.OffsetY, v.OffsetY+v.Height)
	y1 = vmath.ClampInt(y1, v.OffsetY, v.OffsetY+v.Height)
	return
}

// TextCell returns the terminal cell containing a playfield point
func (v Viewport) TextCell(x, y float64) (col, row int) {
	px, py := v.ToPixel(x, y)
	return px, py / 2
}
