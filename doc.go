// Package overlay renders a hardware-accelerated triangle into a
// borderless, always-on-top, transparent window docked at the top-center
// of the primary display.
//
// # Quick Start
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//	    if err := overlay.Run(overlay.DefaultOptions()); err != nil {
//	        log.Fatalf("overlay: %v", err)
//	    }
//	}
//
// Run blocks until the window is closed. It must be called from the main
// thread: glfw and the GPU surface both require it.
//
// # Architecture
//
// Two components, strictly layered. render.Context owns the GPU adapter,
// device, queue, surface, and the compiled triangle pipeline.
// driver.Loop owns the event dispatch: resize events reconfigure the
// surface, redraw events render a frame, a close request ends the loop.
// The context never initiates work on its own.
//
// # Logging
//
// By default the package produces no log output. Call SetLogger with a
// log/slog logger to enable it.
package overlay
