package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/vmath"
)

var (
	rgbHitbox   = tcell.NewRGBColor(255, 0, 255)
	rgbObstacle = tcell.NewRGBColor(255, 60, 60)
)

// HitboxRenderer outlines collision rectangles for debugging
type HitboxRenderer struct {
	enabled bool
}

func NewHitboxRenderer(enabled bool) *HitboxRenderer {
	return &HitboxRenderer{enabled: enabled}
}

func (r *HitboxRenderer) IsVisible() bool {
	return r.enabled
}

// Toggle flips visibility
func (r *HitboxRenderer) Toggle() {
	r.enabled = !r.enabled
}

func (r *HitboxRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	outline(canvas, ctx.View, ctx.World.Player.Hitbox(), rgbHitbox)
	for _, pair := range ctx.World.Obstacles {
		for _, rect := range pair.Rects() {
			outline(canvas, ctx.View, rect, rgbObstacle)
		}
	}
}

func outline(canvas *render.Canvas, view render.Viewport, r vmath.Rect, col tcell.Color) {
	x0, y0, x1, y1 := view.PixelRect(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x < x1; x++ {
		canvas.SetPixel(x, y0, col)
		canvas.SetPixel(x, y1-1, col)
	}
	for y := y0; y < y1; y++ {
		canvas.SetPixel(x0, y, col)
		canvas.SetPixel(x1-1, y, col)
	}
}
