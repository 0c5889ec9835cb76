package tty

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// colors assumed for cells drawn in the terminal's default colors
var (
	defaultForeground = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	defaultBackground = color.RGBA{A: 0xff}
)

// ReadPixels returns one pixel per cell in rect. A cell showing a glyph
// reports its foreground color, a blank cell its background color.
func (w *Window) ReadPixels(rect image.Rectangle) (*image.RGBA, error) {
	pixels := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			mainc, _, style, _ := w.screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()

			pixel := rgbaOf(bg, defaultBackground)
			if mainc != ' ' && mainc != 0 {
				pixel = rgbaOf(fg, defaultForeground)
			}

			pixels.SetRGBA(x-rect.Min.X, y-rect.Min.Y, pixel)
		}
	}

	return pixels, nil
}

// DrawPixels draws every pixel of img as a blank cell
// with the pixel's color as background.
func (w *Window) DrawPixels(img *image.RGBA, pos image.Point) error {
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))

			w.screen.SetContent(pos.X+x-bounds.Min.X, pos.Y+y-bounds.Min.Y, ' ', nil, style)
		}
	}

	return nil
}

func rgbaOf(c tcell.Color, fallback color.RGBA) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return fallback
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
