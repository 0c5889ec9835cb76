package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

var samplers = newVariants[wgpu.SamplerDescriptor](8, (*wgpu.Sampler).Release)

// CachedSampler returns a sampler matching the description. The sampler
// is shared, you must not call Release on it.
func CachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	return samplers.get(desc, func(desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
		sampler, err := dev.CreateSampler(&desc)
		if err != nil {
			return nil, fmt.Errorf("create sampler %q: %w", desc.Label, err)
		}

		return sampler, nil
	})
}

// PurgeSamplers releases all cached samplers. Call it before
// the device is released.
func PurgeSamplers() {
	samplers.purge()
}
