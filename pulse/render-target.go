package pulse

import "github.com/cogentcore/webgpu/wgpu"

// RenderTarget is something that can be rendered to, usually
// the surface texture of the current frame.
type RenderTarget struct {
	View *wgpu.TextureView

	// resolve target for multisample views
	ResolveTarget *wgpu.TextureView

	Format wgpu.TextureFormat

	Width  uint32
	Height uint32

	SampleCount uint32
}
