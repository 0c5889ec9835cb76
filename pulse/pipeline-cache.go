package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is a render pipeline and the bind group layouts
// requested from it so far.
type Pipeline struct {
	Render  *wgpu.RenderPipeline
	layouts map[uint32]*wgpu.BindGroupLayout
}

// Layout returns the bind group layout of group. The pipeline owns the layout.
func (p *Pipeline) Layout(group uint32) *wgpu.BindGroupLayout {
	layout, ok := p.layouts[group]
	if !ok {
		layout = p.Render.GetBindGroupLayout(group)
		p.layouts[group] = layout
	}

	return layout
}

func (p *Pipeline) release() {
	for _, layout := range p.layouts {
		layout.Release()
	}

	p.Render.Release()
}

// PipelineKey names one variant of a pipeline, e.g. per target format.
type PipelineKey interface {
	comparable

	// Build creates the render pipeline for this variant.
	Build(dev *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// PipelineCache builds pipeline variants on first use. A window usually
// renders to a single format, so only a few variants are kept.
type PipelineCache[K PipelineKey] struct {
	device   *wgpu.Device
	variants *variants[K, *Pipeline]
}

func NewPipelineCache[K PipelineKey](ctx *Context) *PipelineCache[K] {
	return &PipelineCache[K]{
		device:   ctx.Device,
		variants: newVariants[K](4, (*Pipeline).release),
	}
}

func (c *PipelineCache[K]) Get(key K) (*Pipeline, error) {
	return c.variants.get(key, c.build)
}

func (c *PipelineCache[K]) build(key K) (*Pipeline, error) {
	slog.Debug("Build render pipeline", slog.Any("key", key))

	render, err := key.Build(c.device)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return &Pipeline{
		Render:  render,
		layouts: map[uint32]*wgpu.BindGroupLayout{},
	}, nil
}

// Purge releases all pipelines.
func (c *PipelineCache[K]) Purge() {
	c.variants.purge()
}
