// Command overlay shows a transparent, always-on-top strip at the
// top-center of the primary display and renders a triangle into it.
package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/overlay"
)

func init() {
	// glfw and the GPU surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := overlay.Run(overlay.DefaultOptions()); err != nil {
		log.Fatalf("overlay: %v", err)
	}
}
