// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"
)

// ErrDisplayTooNarrow is returned when the primary display cannot fit
// the window horizontally, which would make the centering arithmetic
// produce a negative position.
var ErrDisplayTooNarrow = errors.New("window: display narrower than window")

// CenterX returns the horizontal position that centers a window of
// windowWidth pixels on a display of displayWidth pixels.
func CenterX(displayWidth, windowWidth int) (int, error) {
	if windowWidth > displayWidth {
		return 0, fmt.Errorf("%w: display %d, window %d", ErrDisplayTooNarrow, displayWidth, windowWidth)
	}
	return (displayWidth - windowWidth) / 2, nil
}
