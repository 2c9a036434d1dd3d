// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package render

import "github.com/cogentcore/webgpu/wgpu"

// platformBackends selects a DirectX-class backend on Windows, where the
// compositor integration for transparent surfaces is most reliable.
func platformBackends() wgpu.InstanceBackend {
	return wgpu.InstanceBackendDX12
}
