package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// View owns the configuration of the window surface and hands
// out the surface texture of the current frame as a RenderTarget.
type View struct {
	ctx *Context

	config *wgpu.SurfaceConfiguration

	// surface texture of the frame in flight
	current     *wgpu.Texture
	currentView *wgpu.TextureView
}

func NewView(ctx *Context) *View {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	format := wgpu.TextureFormatBGRA8Unorm
	if len(caps.Formats) > 0 && !slices.Contains(caps.Formats, format) {
		format = caps.Formats[0]
	}

	alphaMode := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	return &View{
		ctx: ctx,
		config: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   alphaMode,
		},
	}
}

// PresentMode returns the present mode that waits for the given
// number of display refreshes. Only zero and one are supported by
// the surface, larger intervals fall back to vsync.
func PresentMode(swapInterval int) wgpu.PresentMode {
	if swapInterval <= 0 {
		return wgpu.PresentModeImmediate
	}

	return wgpu.PresentModeFifo
}

// SetPresentMode changes the present mode. The change is applied
// with the next call to Configure.
func (v *View) SetPresentMode(mode wgpu.PresentMode) {
	v.config.PresentMode = mode
}

func (v *View) Format() wgpu.TextureFormat {
	return v.config.Format
}

// Size returns the size of the surface as last configured.
func (v *View) Size() (width, height uint32) {
	return v.config.Width, v.config.Height
}

// Configure resizes the surface. Zero sized surfaces are not
// configured, the window is most likely minimized.
func (v *View) Configure(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	v.config.Width = width
	v.config.Height = height

	v.ctx.Surface.Configure(v.ctx.Adapter, v.ctx.Device, v.config)
}

// Acquire fetches the surface texture for the next frame.
// Acquire must be followed by either Present or Discard.
func (v *View) Acquire() (*RenderTarget, error) {
	if v.current != nil {
		return v.target(), nil
	}

	if v.config.Width == 0 || v.config.Height == 0 {
		return nil, fmt.Errorf("surface not configured")
	}

	texture, err := v.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	v.current = texture
	v.currentView = view

	return v.target(), nil
}

// Target returns the render target of the frame in flight or nil.
func (v *View) Target() *RenderTarget {
	if v.current == nil {
		return nil
	}

	return v.target()
}

// Present shows the frame in flight on screen.
func (v *View) Present() {
	if v.current == nil {
		return
	}

	v.ctx.Surface.Present()
	v.Discard()
}

// Discard drops the frame in flight without showing it.
func (v *View) Discard() {
	if v.currentView != nil {
		v.currentView.Release()
		v.currentView = nil
	}

	if v.current != nil {
		v.current.Release()
		v.current = nil
	}
}

func (v *View) target() *RenderTarget {
	return &RenderTarget{
		View:        v.currentView,
		Format:      v.config.Format,
		Width:       v.current.GetWidth(),
		Height:      v.current.GetHeight(),
		SampleCount: 1,
	}
}
