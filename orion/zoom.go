package orion

import (
	"fmt"
	"image"
	"image/color"

	"github.com/oliverbestmann/glview/glm"
)

// FrameReader is implemented by windows that can read back the frame in
// flight. The zoom view is only drawn on windows that implement it.
type FrameReader interface {
	// ReadPixels copies rect out of the current frame. Coordinates are
	// framebuffer pixels with (0, 0) in the top left corner.
	ReadPixels(rect image.Rectangle) (*image.RGBA, error)

	// DrawPixels draws img into the current frame with its
	// top left corner at pos.
	DrawPixels(img *image.RGBA, pos image.Point) error
}

const (
	maxZoomFactor = 16

	// weight of white in the pixel boundary highlight
	zoomHighlight = 0.3
)

type zoomLayout struct {
	// magnified part of the framebuffer
	region image.Rectangle

	factor int

	// top left corner of the zoom view
	pos image.Point
}

// layoutZoom places the zoom view in the top right corner of the
// framebuffer. The view covers at most half of the framebuffer in each
// direction and the region around the cursor never leaves the framebuffer.
func layoutZoom(width, height, regionSize int, cursor glm.Vec2i) (zoomLayout, bool) {
	if regionSize <= 0 {
		return zoomLayout{}, false
	}

	factor := min(maxZoomFactor, min(width, height)/2/regionSize)
	if factor < 1 {
		return zoomLayout{}, false
	}

	half := regionSize / 2

	x, y := cursor.XY()
	x = min(max(x, half), width-half-1)
	y = min(max(y, half), height-half-1)

	origin := image.Pt(x-half, y-half)
	size := regionSize * factor

	return zoomLayout{
		region: image.Rectangle{Min: origin, Max: origin.Add(image.Pt(regionSize, regionSize))},
		factor: factor,
		pos:    image.Pt(width-size, 0),
	}, true
}

// magnify scales src up by factor. The top row and left column of every
// magnified pixel are lightened to make pixel boundaries visible.
func magnify(src *image.RGBA, factor int) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := src.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			pixel.A = 0xff

			edge := highlight(pixel)

			for j := 0; j < factor; j++ {
				for i := 0; i < factor; i++ {
					value := pixel
					if i == 0 || j == 0 {
						value = edge
					}

					dst.SetRGBA(x*factor+i, y*factor+j, value)
				}
			}
		}
	}

	return dst
}

func highlight(c color.RGBA) color.RGBA {
	lighten := func(value uint8) uint8 {
		return uint8((1-2*zoomHighlight)*float64(value) + zoomHighlight*255)
	}

	return color.RGBA{R: lighten(c.R), G: lighten(c.G), B: lighten(c.B), A: 0xff}
}

// drawZoom magnifies the region around the cursor.
func (v *Viewer) drawZoom() {
	reader, ok := v.window.(FrameReader)
	if !ok {
		return
	}

	layout, ok := layoutZoom(v.bufferWidth, v.bufferHeight, v.opts.ZoomRegion, glm.Vec2Of[int](v.cursor))
	if !ok {
		return
	}

	pixels, err := reader.ReadPixels(layout.region)
	if err != nil {
		v.events.OnError(fmt.Errorf("read zoom region: %w", err))
		return
	}

	if err := reader.DrawPixels(magnify(pixels, layout.factor), layout.pos); err != nil {
		v.events.OnError(fmt.Errorf("draw zoom view: %w", err))
	}
}
