package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/asset"
)

// upperHalf draws the top pixel as foreground and the bottom pixel as background
const upperHalf = '▀'

type textCell struct {
	r   rune
	fg  tcell.Color
	set bool
}

// Canvas is a pixel compositor with two square-ish pixels per terminal cell
// and a text layer drawn over them
type Canvas struct {
	cols int
	rows int
	pix  []tcell.Color
	text []textCell
}

// NewCanvas creates a canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows
	if cap(c.text) < size {
		c.pix = make([]tcell.Color, size*2)
		c.text = make([]textCell, size)
	} else {
		c.pix = c.pix[:size*2]
		c.text = c.text[:size]
	}
	c.cols = cols
	c.rows = rows
}

// Size returns the cell dimensions
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// PixelSize returns the pixel dimensions
func (c *Canvas) PixelSize() (w, h int) {
	return c.cols, c.rows * 2
}

// Clear fills every pixel with bg and drops all text
func (c *Canvas) Clear(bg tcell.Color) {
	for i := range c.pix {
		c.pix[i] = bg
	}
	clear(c.text)
}

// SetPixel writes one pixel; transparent colors and out of bounds writes are ignored
func (c *Canvas) SetPixel(x, y int, col tcell.Color) {
	if col == asset.Transparent || x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return
	}
	c.pix[y*c.cols+x] = col
}

// Pixel reads one pixel
func (c *Canvas) Pixel(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return asset.Transparent
	}
	return c.pix[y*c.cols+x]
}

// FillPixels fills the half-open pixel range [x0,x1) x [y0,y1)
func (c *Canvas) FillPixels(x0, y0, x1, y1 int, col tcell.Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// SetText writes a string starting at a cell, clipped to the canvas
func (c *Canvas) SetText(col, row int, s string, fg tcell.Color) {
	if row < 0 || row >= c.rows {
		return
	}
	x := col
	for _, r := range s {
		if x >= 0 && x < c.cols {
			c.text[row*c.cols+x] = textCell{r: r, fg: fg, set: true}
		}
		x++
	}
}

// Text returns the rune written at a cell, 0 if none
func (c *Canvas) Text(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.text[row*c.cols+col].r
}

// Flush writes every cell to the screen
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.cols+col]
			bottom := c.pix[(row*2+1)*c.cols+col]

			if t := c.text[row*c.cols+col]; t.set {
				style := tcell.StyleDefault.Foreground(t.fg).Background(top).Bold(true)
				screen.SetContent(col, row, t.r, nil, style)
				continue
			}

			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}
