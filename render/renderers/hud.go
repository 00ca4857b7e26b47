package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/vmath"
)

// digitFont is a 3x5 block font for the score
var digitFont = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

const (
	// digitCell is the playfield size of one font pixel
	digitCell = 9.0
	// digitAdvance is the horizontal step between digits
	digitAdvance = 4 * digitCell
	shadowOffset = 3.0
)

const idleHint = "SPACE / CLICK TO FLY"

// HUDRenderer draws the score centered at the top and the high score caption
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w := ctx.World

	drawNumber(canvas, ctx.View, w.Score, constants.ScreenWidth/2, constants.ScoreY)

	col, row := ctx.View.TextCell(constants.HighScoreX, constants.HighScoreY)
	canvas.SetText(col, row, "Highscore: "+strconv.Itoa(w.HighScore), render.RgbText)

	if ctx.Phase.Phase == engine.PhaseIdle {
		drawCentered(canvas, ctx.View, idleHint, constants.ScreenHeight*0.66, render.RgbHint)
	}
}

// drawNumber renders n in the block font, horizontally centered on cx
func drawNumber(canvas *render.Canvas, view render.Viewport, n int, cx, top float64) {
	s := strconv.Itoa(n)
	width := float64(len(s))*digitAdvance - digitCell
	x := cx - width/2

	for _, ch := range s {
		glyph := digitFont[ch-'0']
		drawGlyph(canvas, view, glyph, x+shadowOffset, top+shadowOffset, render.RgbTextShadow)
		drawGlyph(canvas, view, glyph, x, top, render.RgbText)
		x += digitAdvance
	}
}

func drawGlyph(canvas *render.Canvas, view render.Viewport, glyph [5]string, x, y float64, col tcell.Color) {
	for gy, line := range glyph {
		for gx, px := range line {
			if px != '#' {
				continue
			}
			cell := vmath.Rect{X: x + float64(gx)*digitCell, Y: y + float64(gy)*digitCell, W: digitCell, H: digitCell}
			render.FillRect(canvas, view, cell, col)
		}
	}
}

// drawCentered writes text centered on the playfield at height y
func drawCentered(canvas *render.Canvas, view render.Viewport, s string, y float64, col tcell.Color) {
	c, row := view.TextCell(constants.ScreenWidth/2, y)
	canvas.SetText(c-len(s)/2, row, s, col)
}
