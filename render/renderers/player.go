package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/render"
)

// PlayerRenderer draws the current flap frame tilted by velocity
type PlayerRenderer struct {
	frames []*asset.Sprite
}

func NewPlayerRenderer(frames ...*asset.Sprite) *PlayerRenderer {
	return &PlayerRenderer{frames: frames}
}

func (r *PlayerRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if len(r.frames) == 0 {
		return
	}
	p := ctx.World.Player
	frame := r.frames[p.Frame%len(r.frames)]
	render.DrawSprite(canvas, ctx.View, frame, p.Bounds(), render.SpriteOptions{Rotation: p.Rotation()})
}
