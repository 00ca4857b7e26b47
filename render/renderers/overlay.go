package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/vmath"
)

const (
	gameOverCaption = "GAME OVER"
	restartLabel    = "RESTART"
)

// OverlayRenderer shows the game over caption and the restart button
type OverlayRenderer struct {
	button *asset.Sprite
}

func NewOverlayRenderer(button *asset.Sprite) *OverlayRenderer {
	return &OverlayRenderer{button: button}
}

// RestartButton is the playfield rectangle of the restart button
func RestartButton() vmath.Rect {
	return vmath.Rect{
		X: constants.RestartX,
		Y: constants.RestartY,
		W: constants.RestartWidth,
		H: constants.RestartHeight,
	}
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if ctx.Phase.Phase != engine.PhaseGameOver {
		return
	}

	btn := RestartButton()
	render.DrawSprite(canvas, ctx.View, r.button, btn, render.SpriteOptions{})

	_, cy := btn.Center()
	drawCentered(canvas, ctx.View, restartLabel, cy, render.RgbText)
	drawCentered(canvas, ctx.View, gameOverCaption, btn.Top()-60, render.RgbCaption)
}
