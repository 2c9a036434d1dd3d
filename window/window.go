// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window creates the overlay's platform window and translates
// its events into the driver's event vocabulary.
//
// All functions must be called from the main thread; glfw requires it
// and the event loop is single-threaded by design.
package window

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/overlay/driver"
	"github.com/gogpu/overlay/internal/logging"
)

// ErrNoPrimaryMonitor is returned when the system reports no primary
// monitor, which makes placement impossible.
var ErrNoPrimaryMonitor = errors.New("window: primary monitor not found")

// Options describes the overlay window.
type Options struct {
	// Width and Height are the requested window size in screen
	// coordinates.
	Width  int
	Height int

	// TopMargin is the gap in pixels between the display's top edge and
	// the window.
	TopMargin int

	// Title is the window title (invisible on a borderless window, but
	// still used by window switchers).
	Title string

	// Transparent requests an alpha-capable framebuffer so cleared
	// pixels show the desktop beneath.
	Transparent bool

	// AlwaysOnTop keeps the window above normal windows.
	AlwaysOnTop bool

	// Borderless removes the window decorations.
	Borderless bool

	// ToolWindow marks the window as a toolbar for the window manager.
	// Only X11 honors it; elsewhere it is a no-op. Resolved once at
	// window-build time.
	ToolWindow bool
}

// Window wraps the platform window and queues its events for the driver.
//
// The event queue needs no locking: glfw delivers callbacks on the main
// thread, inside the same Wait call that drains the queue.
type Window struct {
	win     *glfw.Window
	pending []driver.Event
}

// Create builds the overlay window on the primary monitor: top-centered,
// hidden until positioned, with no client API (the surface is bound
// through WebGPU, not GL).
//
// glfw.Init must have been called.
func Create(opts Options) (*Window, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, ErrNoPrimaryMonitor
	}
	mode := monitor.GetVideoMode()

	x, err := CenterX(mode.Width, opts.Width)
	if err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, hintBool(opts.Transparent))
	glfw.WindowHint(glfw.Floating, hintBool(opts.AlwaysOnTop))
	glfw.WindowHint(glfw.Decorated, hintBool(!opts.Borderless))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.SetPos(x, opts.TopMargin)

	if opts.ToolWindow {
		if err := applyToolWindowHint(win); err != nil {
			// Cosmetic on window managers that ignore the hint; the
			// overlay still works as a floating window.
			logging.Logger().Warn("window: tool-window hint not applied", "err", err)
		}
	}

	w := &Window{win: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, driver.ResizeEvent{Width: uint32(width), Height: uint32(height)})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, driver.RedrawEvent{})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, driver.CloseEvent{})
	})

	win.Show()

	// First paint: not every platform sends a refresh event for a
	// freshly shown window.
	w.pending = append(w.pending, driver.RedrawEvent{})

	logging.Logger().Info("window: created",
		"x", x, "y", opts.TopMargin, "width", opts.Width, "height", opts.Height)
	return w, nil
}

// Wait blocks until at least one event is pending and returns the
// pending events in arrival order.
func (w *Window) Wait() []driver.Event {
	for len(w.pending) == 0 {
		glfw.WaitEvents()
	}
	events := w.pending
	w.pending = nil
	return events
}

// FramebufferSize returns the window's physical pixel size.
func (w *Window) FramebufferSize() (width, height uint32) {
	fw, fh := w.win.GetFramebufferSize()
	return uint32(fw), uint32(fh)
}

// SurfaceDescriptor returns the native handle wrapper used to bind a
// rendering surface to this window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// Destroy releases the platform window.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func hintBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
