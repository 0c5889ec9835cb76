package osd

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight rgba color value with components in [0, 1].
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// RGB creates an opaque Color.
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

func RGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ParseHex parses a color in "#rrggbb" or "#rgb" notation.
func ParseHex(value string) (Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", value, err)
	}

	return RGB(float32(c.R), float32(c.G), float32(c.B)), nil
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

func (c Color) Alpha() float32 {
	return c.a1 + 1
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.a1 = alpha - 1
	return c
}

// NRGBA converts the color to 8 bit components, clamping values
// outside of the valid range.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()

	cf := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Clamped()
	r8, g8, b8 := cf.RGB255()

	return color.NRGBA{R: r8, G: g8, B: b8, A: uint8(clamp01(a)*255 + 0.5)}
}

// Hex formats the color without its alpha component.
func (c Color) Hex() string {
	r, g, b, _ := c.Components()
	return colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

func clamp01(value float32) float32 {
	return min(1, max(0, value))
}
