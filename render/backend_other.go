// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package render

import "github.com/cogentcore/webgpu/wgpu"

// platformBackends selects the platform-primary backends (Vulkan on
// Linux, Metal on macOS).
func platformBackends() wgpu.InstanceBackend {
	return wgpu.InstanceBackendPrimary
}
