// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux && !wayland

package window

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// applyToolWindowHint sets _NET_WM_WINDOW_TYPE_TOOLBAR on the window so
// X11 window managers treat the overlay as a toolbar (no taskbar entry,
// no focus stealing).
func applyToolWindowHint(win *glfw.Window) error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("window: X11 connection: %w", err)
	}
	defer xu.Conn().Close()

	id := xproto.Window(win.GetX11Window())
	if err := ewmh.WmWindowTypeSet(xu, id, []string{"_NET_WM_WINDOW_TYPE_TOOLBAR"}); err != nil {
		return fmt.Errorf("window: set window type: %w", err)
	}
	return nil
}
