package pulse

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture together with a default view.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView

	format wgpu.TextureFormat

	width  uint32
	height uint32
}

type NewTextureOptions struct {
	Label  string
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	texture, err := ctx.CreateTexture(&wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,
		Dimension:     wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})

	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", opts.Label, err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of texture %q: %w", opts.Label, err)
	}

	t := &Texture{
		texture: texture,
		view:    view,
		format:  opts.Format,
		width:   opts.Width,
		height:  opts.Height,
	}

	return t, nil
}

func (t *Texture) View() *wgpu.TextureView {
	return t.view
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

// Release frees the texture. The texture must not be used afterwards.
func (t *Texture) Release() {
	t.view.Release()
	t.texture.Release()
}

// WritePixels uploads the pixels of img. The image must have the
// same size as the texture and a matching four byte pixel format.
func (t *Texture) WritePixels(ctx *Context, img *image.RGBA) error {
	bounds := img.Bounds()

	if bounds.Dx() != int(t.width) || bounds.Dy() != int(t.height) {
		return fmt.Errorf("image of size %dx%d does not match texture of size %dx%d",
			bounds.Dx(), bounds.Dy(), t.width, t.height)
	}

	if bounds.Empty() {
		return nil
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  uint32(img.Stride),
		RowsPerImage: t.height,
	}

	size := &wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Aspect:   wgpu.TextureAspectAll,
	}

	pixels := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y):]

	if err := ctx.WriteTexture(dest, pixels, layout, size); err != nil {
		return fmt.Errorf("copy image data to texture: %w", err)
	}

	return nil
}
