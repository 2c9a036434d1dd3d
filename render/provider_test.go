// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// TestProviderFormat verifies translation of the swapchain formats into
// the gputypes vocabulary.
func TestProviderFormat(t *testing.T) {
	tests := []struct {
		in   wgpu.TextureFormat
		want gputypes.TextureFormat
	}{
		{wgpu.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8Unorm},
		{wgpu.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb},
		{wgpu.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm},
		{wgpu.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatRGBA8UnormSrgb},
		// Unexpected formats fall back to the RGBA8 default.
		{wgpu.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA8Unorm},
	}

	for _, tt := range tests {
		if got := providerFormat(tt.in); got != tt.want {
			t.Errorf("providerFormat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestProviderAdapterInfo verifies the provider satisfies the full
// DeviceProvider contract and reports unknown adapter metadata, so
// consumers stay on conservative render-mode defaults.
func TestProviderAdapterInfo(t *testing.T) {
	var p gpucontext.DeviceProvider = &contextProvider{ctx: &Context{}}

	if got := p.AdapterInfo(); !reflect.DeepEqual(got, gpucontext.AdapterInfo{}) {
		t.Errorf("AdapterInfo() = %+v, want zero value", got)
	}
}
