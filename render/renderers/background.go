package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/vmath"
)

// BackgroundRenderer stretches the backdrop over the whole playfield
type BackgroundRenderer struct {
	sprite *asset.Sprite
}

func NewBackgroundRenderer(sprite *asset.Sprite) *BackgroundRenderer {
	return &BackgroundRenderer{sprite: sprite}
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	field := vmath.Rect{W: constants.ScreenWidth, H: constants.ScreenHeight}
	render.DrawSprite(canvas, ctx.View, r.sprite, field, render.SpriteOptions{})
}
