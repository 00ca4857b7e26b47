package render

import "github.com/gdamore/tcell/v2"

var (
	RgbLetterbox  = tcell.NewRGBColor(12, 12, 16)    // Outside the playfield
	RgbText       = tcell.NewRGBColor(255, 255, 255) // HUD text
	RgbTextShadow = tcell.NewRGBColor(40, 40, 40)    // Score digit shadow
	RgbHint       = tcell.NewRGBColor(30, 60, 70)    // Idle hint text
	RgbCaption    = tcell.NewRGBColor(232, 106, 23)  // Game over caption
)
