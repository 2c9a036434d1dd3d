// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux || wayland

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// applyToolWindowHint is a no-op outside X11; the floating hint already
// keeps the overlay above normal windows.
func applyToolWindowHint(*glfw.Window) error {
	return nil
}
