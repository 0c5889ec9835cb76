package pulse

import (
	_ "embed"
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed image.wgsl
var imageShaderCode string

// ImageCommand draws a cpu side image with premultiplied alpha
// over the full render target.
type ImageCommand struct {
	ctx *Context

	pipelines *PipelineCache[imagePipelineConfig]

	// upload texture, reallocated when the image size changes
	texture *Texture
}

func NewImageCommand(ctx *Context) *ImageCommand {
	return &ImageCommand{
		ctx:       ctx,
		pipelines: NewPipelineCache[imagePipelineConfig](ctx),
	}
}

// Draw uploads img and blends it over target. The image is stretched
// to the size of the target if the sizes differ.
func (c *ImageCommand) Draw(target *RenderTarget, img *image.RGBA) error {
	if img.Bounds().Empty() {
		return nil
	}

	if err := c.upload(img); err != nil {
		return err
	}

	sampler, err := CachedSampler(c.ctx.Device, wgpu.SamplerDescriptor{
		Label:         "Image.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})

	if err != nil {
		return err
	}

	pipeline, err := c.pipelines.Get(imagePipelineConfig{
		TargetFormat:      target.Format,
		TargetSampleCount: max(1, target.SampleCount),
	})

	if err != nil {
		return fmt.Errorf("get image pipeline: %w", err)
	}

	bindGroup, err := c.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Image.BindGroup",
		Layout: pipeline.Layout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: c.texture.View(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("create image bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := c.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Image"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Image",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          target.View,
				ResolveTarget: target.ResolveTarget,
				LoadOp:        wgpu.LoadOpLoad,
				StoreOp:       wgpu.StoreOpStore,
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline.Render)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Draw(3, 1, 0, 0)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end image pass: %w", err)
	}

	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish image: %w", err)
	}

	defer cmdBuffer.Release()

	c.ctx.Submit(cmdBuffer)

	return nil
}

func (c *ImageCommand) upload(img *image.RGBA) error {
	width, height := uint32(img.Bounds().Dx()), uint32(img.Bounds().Dy())

	if c.texture != nil && (c.texture.Width() != width || c.texture.Height() != height) {
		c.texture.Release()
		c.texture = nil
	}

	if c.texture == nil {
		slog.Debug("Allocate image texture",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		texture, err := NewTexture(c.ctx, NewTextureOptions{
			Label:  "Image",
			Format: wgpu.TextureFormatRGBA8Unorm,
			Width:  width,
			Height: height,
		})

		if err != nil {
			return err
		}

		c.texture = texture
	}

	return c.texture.WritePixels(c.ctx, img)
}

// Release frees the upload texture and all pipelines.
func (c *ImageCommand) Release() {
	if c.texture != nil {
		c.texture.Release()
		c.texture = nil
	}

	c.pipelines.Purge()
}

type imagePipelineConfig struct {
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
}

func (conf imagePipelineConfig) Build(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Image.Shader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: imageShaderCode},
	})

	if err != nil {
		return nil, fmt.Errorf("compile image shader: %w", err)
	}

	defer shader.Release()

	// the image holds premultiplied colors
	blend := wgpu.BlendStatePremultipliedAlphaBlending

	pipeline, err := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Image.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: conf.TargetSampleCount,
			Mask:  0xFFFFFFFF,
		},
	})

	if err != nil {
		return nil, fmt.Errorf("build image pipeline: %w", err)
	}

	return pipeline, nil
}
