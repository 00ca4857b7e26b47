package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/vmath"
)

// GroundRenderer tiles the ground strip below the ground line, shifted by the scroll offset
type GroundRenderer struct {
	tile *asset.Sprite
}

func NewGroundRenderer(tile *asset.Sprite) *GroundRenderer {
	return &GroundRenderer{tile: tile}
}

func (r *GroundRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	h := constants.ScreenHeight - constants.GroundY
	for x := ctx.World.GroundScroll; x < constants.ScreenWidth; x += constants.GroundTileWidth {
		dst := vmath.Rect{X: x, Y: constants.GroundY, W: constants.GroundTileWidth, H: h}
		render.DrawSprite(canvas, ctx.View, r.tile, dst, render.SpriteOptions{})
	}
}
