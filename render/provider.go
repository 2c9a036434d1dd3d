// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// deviceHandle adapts the wgpu device to the gpucontext.Device interface.
type deviceHandle struct {
	device *wgpu.Device
}

func (h deviceHandle) Poll(wait bool) {
	h.device.Poll(wait, nil)
}

// Destroy is a no-op: the Context owns the device and releases it in
// Close. Provider consumers only borrow it.
func (h deviceHandle) Destroy() {}

// contextProvider exposes a Context through gpucontext.DeviceProvider.
type contextProvider struct {
	ctx *Context
}

func (p *contextProvider) Device() gpucontext.Device   { return deviceHandle{p.ctx.device} }
func (p *contextProvider) Queue() gpucontext.Queue     { return p.ctx.queue }
func (p *contextProvider) Adapter() gpucontext.Adapter { return p.ctx.adapter }

// AdapterInfo reports no adapter metadata. The negotiated surface format
// is the only property consumers need here; leaving the device type
// unknown keeps their render-mode auto-selection on conservative
// defaults instead of trusting backend-dependent adapter strings.
func (p *contextProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

func (p *contextProvider) SurfaceFormat() gputypes.TextureFormat {
	return providerFormat(p.ctx.config.Format)
}

// Provider returns a gpucontext.DeviceProvider over this context, so
// gogpu-family consumers (gg canvases and the like) can share the
// overlay's device, queue, and negotiated surface format.
func (c *Context) Provider() gpucontext.DeviceProvider {
	return &contextProvider{ctx: c}
}

// providerFormat translates the negotiated wgpu surface format into the
// gputypes vocabulary. Swapchains negotiate one of the four 8-bit
// formats; anything else maps to the RGBA8 default.
func providerFormat(format wgpu.TextureFormat) gputypes.TextureFormat {
	switch format {
	case wgpu.TextureFormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case wgpu.TextureFormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8UnormSrgb
	case wgpu.TextureFormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case wgpu.TextureFormatRGBA8UnormSrgb:
		return gputypes.TextureFormatRGBA8UnormSrgb
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}
