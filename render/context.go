// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render owns the GPU side of the overlay: instance, surface,
// adapter, device, queue, and the single triangle pipeline.
//
// A Context is built once, after the window exists and before the event
// loop starts, and lives until process exit. Its only mutable state is
// the surface configuration, which tracks the window's physical size.
package render

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/overlay/internal/logging"
)

// Errors returned during context construction and rendering.
var (
	// ErrInvalidSize is returned when a surface dimension is zero.
	ErrInvalidSize = errors.New("render: surface size must be positive")

	// ErrNoAdapter is returned when no compatible GPU adapter exists.
	ErrNoAdapter = errors.New("render: no compatible GPU adapter")

	// ErrNoSurfaceFormat is returned when the surface reports no
	// supported texture formats for the selected adapter.
	ErrNoSurfaceFormat = errors.New("render: surface reports no supported formats")
)

// Context owns the GPU resources for one window surface.
//
// Context is not safe for concurrent use; the event loop is the only
// caller.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue
	pipeline *wgpu.RenderPipeline
	config   wgpu.SurfaceConfiguration
}

// New builds a Context bound to the native window described by desc.
// width and height are the window's physical pixel size.
//
// Adapter or device acquisition failure is fatal: the error propagates
// to the caller and the process terminates. There is no fallback to a
// software adapter.
func New(desc *wgpu.SurfaceDescriptor, width, height uint32) (*Context, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := validateShader(triangleWGSL); err != nil {
		return nil, err
	}

	c := &Context{
		instance: wgpu.CreateInstance(&wgpu.InstanceDescriptor{
			Backends: platformBackends(),
		}),
	}
	c.surface = c.instance.CreateSurface(desc)

	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    c.surface,
		PowerPreference:      wgpu.PowerPreferenceLowPower,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}
	c.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "overlay device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("render: device request failed: %w", err)
	}
	c.device = device
	c.queue = device.GetQueue()

	caps := c.surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		c.Close()
		return nil, ErrNoSurfaceFormat
	}
	format := caps.Formats[0]
	alphaMode := caps.AlphaModes[0]

	if err := c.buildPipeline(format); err != nil {
		c.Close()
		return nil, err
	}

	// The pipeline's color target and the surface configuration share
	// the negotiated format; neither is re-derived after this point.
	c.config = newSurfaceConfig(format, alphaMode, pickPresentMode(caps.PresentModes), width, height)
	c.surface.Configure(c.adapter, c.device, &c.config)

	logging.Logger().Info("render: context initialized",
		"format", format, "present_mode", c.config.PresentMode,
		"width", width, "height", height)
	return c, nil
}

// buildPipeline compiles the embedded shader and creates the triangle
// pipeline: no vertex buffers, no bind groups, default primitive state,
// no depth/stencil, single-sample.
func (c *Context) buildPipeline(format wgpu.TextureFormat) error {
	shader, err := c.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "triangle shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: triangleWGSL,
		},
	})
	if err != nil {
		return fmt.Errorf("render: shader module: %w", err)
	}
	defer shader.Release()

	layout, err := c.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "triangle pipeline layout",
		BindGroupLayouts: nil,
	})
	if err != nil {
		return fmt.Errorf("render: pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := c.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "triangle pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: vertexEntryPoint,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
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
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("render: render pipeline: %w", err)
	}
	c.pipeline = pipeline
	return nil
}

// Reconfigure applies a new physical size to the surface. It must run
// before the next RenderFrame after any window size change; the caller
// guarantees width and height are positive.
func (c *Context) Reconfigure(width, height uint32) {
	c.config.Width = width
	c.config.Height = height
	c.surface.Configure(c.adapter, c.device, &c.config)
}

// RenderFrame draws one frame: clear to fully transparent, draw the
// triangle (3 vertices, 1 instance), present.
//
// Frame acquisition failure is unrecoverable here. A production system
// would reconfigure the surface and retry once before giving up; the
// overlay instead terminates with a diagnostic.
func (c *Context) RenderFrame() error {
	frame, err := c.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("render: acquire surface texture: %w", err)
	}

	view, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return fmt.Errorf("render: texture view: %w", err)
	}

	encoder, err := c.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		frame.Release()
		return fmt.Errorf("render: command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 0},
			},
		},
	})
	pass.SetPipeline(c.pipeline)
	pass.Draw(3, 1, 0, 0)
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		frame.Release()
		return fmt.Errorf("render: finish encoder: %w", err)
	}

	c.queue.Submit(cmd)
	c.surface.Present()

	cmd.Release()
	encoder.Release()
	view.Release()
	frame.Release()
	return nil
}

// SurfaceFormat returns the negotiated surface format, which is also the
// pipeline's color target format.
func (c *Context) SurfaceFormat() wgpu.TextureFormat {
	return c.config.Format
}

// Size returns the configured surface size in physical pixels.
func (c *Context) Size() (width, height uint32) {
	return c.config.Width, c.config.Height
}

// Close releases all GPU resources in reverse acquisition order.
// The Context must not be used afterwards.
func (c *Context) Close() {
	if c.pipeline != nil {
		c.pipeline.Release()
		c.pipeline = nil
	}
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}

// newSurfaceConfig builds the surface configuration: render-attachment
// usage, the negotiated format and alpha mode, and the given size.
func newSurfaceConfig(format wgpu.TextureFormat, alphaMode wgpu.CompositeAlphaMode, presentMode wgpu.PresentMode, width, height uint32) wgpu.SurfaceConfiguration {
	return wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: presentMode,
		AlphaMode:   alphaMode,
	}
}

// pickPresentMode prefers mailbox presentation (non-blocking, tear-free)
// and falls back to FIFO, which every surface supports.
func pickPresentMode(supported []wgpu.PresentMode) wgpu.PresentMode {
	for _, m := range supported {
		if m == wgpu.PresentModeMailbox {
			return m
		}
	}
	return wgpu.PresentModeFifo
}
