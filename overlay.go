package overlay

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/overlay/driver"
	"github.com/gogpu/overlay/render"
	"github.com/gogpu/overlay/window"
)

// Run creates the overlay window, initializes the GPU context, and
// drives the event loop until the window is closed.
//
// Startup is two-phase: the window and the full GPU context (adapter,
// device, pipeline, configured surface) are built before the first event
// is dispatched. Run returns nil on a close request; any initialization
// or rendering failure is returned as an error and no degraded mode is
// attempted.
//
// Run must be called from the main thread, with the OS thread locked.
func Run(opts Options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("overlay: glfw init: %w", err)
	}
	defer glfw.Terminate()

	win, err := window.Create(window.Options{
		Width:       opts.Width,
		Height:      opts.Height,
		TopMargin:   opts.TopMargin,
		Title:       opts.Title,
		Transparent: true,
		AlwaysOnTop: true,
		Borderless:  true,
		ToolWindow:  true,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	width, height := win.FramebufferSize()
	ctx, err := render.New(win.SurfaceDescriptor(), width, height)
	if err != nil {
		return err
	}
	defer ctx.Close()

	return driver.New(win, ctx).Run()
}
