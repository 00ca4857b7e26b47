package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/render"
)

// ObstacleRenderer draws each pipe pair; the top pipe is the sprite flipped
// so both caps face the gap
type ObstacleRenderer struct {
	pipe *asset.Sprite
}

func NewObstacleRenderer(pipe *asset.Sprite) *ObstacleRenderer {
	return &ObstacleRenderer{pipe: pipe}
}

func (r *ObstacleRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	for _, pair := range ctx.World.Obstacles {
		render.DrawSprite(canvas, ctx.View, r.pipe, pair.Bottom(), render.SpriteOptions{})
		render.DrawSprite(canvas, ctx.View, r.pipe, pair.Top(), render.SpriteOptions{FlipV: true})
	}
}
