package testpattern

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label position inside a tile, relative to its top-left corner.
const (
	labelInsetX = 2
	labelInsetY = 15
)

// Render rasterizes the layout onto a fresh black canvas. Tiles marked as
// strip ends are filled with the highlight color instead of their group
// color.
func Render(l *Layout) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)
	for _, t := range l.Tiles {
		fill := t.Color
		if t.Highlight {
			fill = colorHighlight
		}
		draw.Draw(img, t.Rect, image.NewUniform(fill), image.Point{}, draw.Src)
		drawLabel(img, t.Label, t.Rect.Min.X+labelInsetX, t.Rect.Min.Y+labelInsetY)
	}
	return img
}

func drawLabel(img *image.RGBA, s string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
