package asset

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Transparent marks a sprite pixel that draws nothing
const Transparent = tcell.ColorDefault

// transparentGlyphs are the glyph art characters that never take a palette color
const transparentGlyphs = ". "

// Sprite is an immutable pixel grid. Renderers scale it to a target rectangle
type Sprite struct {
	name   string
	Width  int
	Height int
	Pix    []tcell.Color
}

func (s *Sprite) Name() string { return s.name }

// At returns the pixel at (x, y), Transparent outside the grid
func (s *Sprite) At(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Transparent
	}
	return s.Pix[y*s.Width+x]
}

// ParseGlyphArt builds a sprite from lines of palette characters.
// '.' and ' ' are transparent; short lines are padded with transparency
func ParseGlyphArt(name string, data []byte, palette map[string]string) (*Sprite, error) {
	colors := make(map[rune]tcell.Color, len(palette))
	for key, hex := range palette {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) {
			return nil, fmt.Errorf("palette key %q must be a single character", key)
		}
		c := tcell.GetColor(hex)
		if c == tcell.ColorDefault {
			return nil, fmt.Errorf("palette entry %q has invalid color %q", key, hex)
		}
		colors[r] = c
	}

	var rows [][]rune
	width := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		row := []rune(line)
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Trailing blank lines carry no pixels
	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}
	if width == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("glyph art %q is empty", name)
	}

	s := &Sprite{name: name, Width: width, Height: len(rows), Pix: make([]tcell.Color, width*len(rows))}
	for y, row := range rows {
		for x, r := range row {
			if strings.ContainsRune(transparentGlyphs, r) {
				continue
			}
			c, ok := colors[r]
			if !ok {
				return nil, fmt.Errorf("glyph art %q: character %q at %d,%d not in palette", name, r, x, y)
			}
			s.Pix[y*width+x] = c
		}
	}
	return s, nil
}

// ConvertImage samples an image into a sprite of the given width, keeping the
// aspect ratio. Pixels under half alpha become transparent
func ConvertImage(name string, img image.Image, width int) *Sprite {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return &Sprite{name: name}
	}
	if width <= 0 || width > srcW {
		width = srcW
	}
	height := srcH * width / srcW
	if height < 1 {
		height = 1
	}

	s := &Sprite{name: name, Width: width, Height: height, Pix: make([]tcell.Color, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Sample center of the corresponding region
			sx := bounds.Min.X + (x*srcW+srcW/2)/width
			sy := bounds.Min.Y + (y*srcH+srcH/2)/height

			if sx >= bounds.Max.X {
				sx = bounds.Max.X - 1
			}
			if sy >= bounds.Max.Y {
				sy = bounds.Max.Y - 1
			}

			s.Pix[y*width+x] = colorToTcell(img.At(sx, sy))
		}
	}
	return s
}

// colorToTcell converts a color, mapping mostly transparent pixels to Transparent
func colorToTcell(c color.Color) tcell.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nrgba.A < 128 {
		return Transparent
	}
	return tcell.NewRGBColor(int32(nrgba.R), int32(nrgba.G), int32(nrgba.B))
}
