// Package driver runs the event loop that connects a platform window to
// the rendering context.
//
// The loop owns nothing GPU-specific: it consumes Events from an
// EventSource and maps them onto a Renderer. This keeps the state machine
// independent of glfw and WebGPU, so it can be exercised in tests with
// fakes.
package driver

import (
	"fmt"

	"github.com/gogpu/overlay/internal/logging"
)

// Event is a window event delivered to the loop.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new physical framebuffer size.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// RedrawEvent requests that the current frame be repainted.
type RedrawEvent struct{}

// CloseEvent requests loop termination.
type CloseEvent struct{}

func (ResizeEvent) isEvent() {}
func (RedrawEvent) isEvent() {}
func (CloseEvent) isEvent()  {}

// Renderer is the rendering context driven by the loop.
//
// Reconfigure must be applied synchronously: when it returns, a following
// RenderFrame presents at the new size.
type Renderer interface {
	Reconfigure(width, height uint32)
	RenderFrame() error
}

// EventSource delivers window events in arrival order.
//
// Wait blocks until at least one event is available and returns the
// pending events, oldest first.
type EventSource interface {
	Wait() []Event
}

// State is the loop's lifecycle state.
type State uint8

const (
	// StateRunning means the loop is waiting for or dispatching events.
	StateRunning State = iota

	// StateTerminated means a close request was handled. No further
	// events are processed.
	StateTerminated
)

// Loop dispatches window events into a Renderer, one event at a time.
//
// Loop is single-threaded: Run must be called from the thread that owns
// the event source, and no method may be called concurrently with Run.
type Loop struct {
	src      EventSource
	renderer Renderer
	state    State
}

// New creates a loop over the given source and renderer.
func New(src EventSource, r Renderer) *Loop {
	return &Loop{src: src, renderer: r}
}

// State returns the loop's current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Run blocks dispatching events until a close request is handled or a
// frame fails. Events within one batch are handled strictly in arrival
// order, so a resize is always applied before any redraw that follows it.
func (l *Loop) Run() error {
	for l.state == StateRunning {
		for _, ev := range l.src.Wait() {
			if err := l.dispatch(ev); err != nil {
				return err
			}
			if l.state == StateTerminated {
				return nil
			}
		}
	}
	return nil
}

// dispatch handles a single event.
func (l *Loop) dispatch(ev Event) error {
	switch e := ev.(type) {
	case ResizeEvent:
		// A minimized window reports a zero-sized framebuffer; the
		// surface keeps its last valid configuration until restore.
		if e.Width == 0 || e.Height == 0 {
			logging.Logger().Debug("driver: ignoring zero-sized resize")
			return nil
		}
		logging.Logger().Debug("driver: resize", "width", e.Width, "height", e.Height)
		l.renderer.Reconfigure(e.Width, e.Height)
	case RedrawEvent:
		if err := l.renderer.RenderFrame(); err != nil {
			return fmt.Errorf("driver: render frame: %w", err)
		}
	case CloseEvent:
		logging.Logger().Info("driver: close requested")
		l.state = StateTerminated
	default:
		// Events the overlay does not react to (focus, move, ...).
	}
	return nil
}
