package overlay

// Options configures the overlay window.
type Options struct {
	// Width and Height are the window size in screen coordinates.
	Width  int
	Height int

	// TopMargin is the gap in pixels between the top edge of the
	// primary display and the window.
	TopMargin int

	// Title is the window title.
	Title string
}

// Default window geometry: a wide, short strip below the top edge of the
// display.
const (
	defaultWidth     = 1024
	defaultHeight    = 128
	defaultTopMargin = 8
)

// DefaultOptions returns the standard overlay geometry: a 1024x128 strip
// centered horizontally, 8 pixels below the top of the display.
func DefaultOptions() Options {
	return Options{
		Width:     defaultWidth,
		Height:    defaultHeight,
		TopMargin: defaultTopMargin,
		Title:     "overlay",
	}
}
