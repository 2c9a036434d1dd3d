// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/triangle.wgsl
var triangleWGSL string

// Shader entry points. The vertex stage computes the three triangle
// positions from the built-in vertex index; there are no vertex buffers.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// validateShader runs the embedded WGSL through naga before it is handed
// to the GPU. A broken shader then fails with a readable parse error
// instead of a backend validation message.
func validateShader(src string) error {
	if _, err := naga.Compile(src); err != nil {
		return fmt.Errorf("render: shader validation failed: %w", err)
	}
	return nil
}
