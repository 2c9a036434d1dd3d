package driver

import (
	"errors"
	"testing"
)

// callRecord captures the order of Renderer invocations.
type callRecord struct {
	kind   string // "reconfigure" or "render"
	width  uint32
	height uint32
}

// fakeRenderer records every call in order and reports the configured
// size at the time of each render.
type fakeRenderer struct {
	calls     []callRecord
	width     uint32
	height    uint32
	renderErr error
}

func (f *fakeRenderer) Reconfigure(width, height uint32) {
	f.width, f.height = width, height
	f.calls = append(f.calls, callRecord{kind: "reconfigure", width: width, height: height})
}

func (f *fakeRenderer) RenderFrame() error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.calls = append(f.calls, callRecord{kind: "render", width: f.width, height: f.height})
	return nil
}

// fakeSource returns scripted event batches, then a close event forever.
type fakeSource struct {
	batches [][]Event
	waits   int
}

func (f *fakeSource) Wait() []Event {
	f.waits++
	if len(f.batches) == 0 {
		return []Event{CloseEvent{}}
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch
}

// otherEvent is an event type the loop has no handler for.
type otherEvent struct{}

func (otherEvent) isEvent() {}

// TestLoopCloseTerminates verifies close transitions the loop to
// Terminated and Run returns nil.
func TestLoopCloseTerminates(t *testing.T) {
	r := &fakeRenderer{}
	l := New(&fakeSource{}, r)

	if l.State() != StateRunning {
		t.Fatalf("initial state = %v, want StateRunning", l.State())
	}
	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if l.State() != StateTerminated {
		t.Errorf("state after close = %v, want StateTerminated", l.State())
	}
}

// TestLoopNoEventsAfterClose verifies that events queued behind a close
// request are never dispatched.
func TestLoopNoEventsAfterClose(t *testing.T) {
	r := &fakeRenderer{}
	src := &fakeSource{batches: [][]Event{
		{RedrawEvent{}, CloseEvent{}, RedrawEvent{}, ResizeEvent{Width: 10, Height: 10}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(r.calls) != 1 || r.calls[0].kind != "render" {
		t.Errorf("calls = %+v, want exactly one render before close", r.calls)
	}
}

// TestLoopResizeThenRedraw verifies the ordering property: a redraw
// following a resize renders at the new size.
func TestLoopResizeThenRedraw(t *testing.T) {
	r := &fakeRenderer{width: 1024, height: 128}
	src := &fakeSource{batches: [][]Event{
		{ResizeEvent{Width: 800, Height: 96}, RedrawEvent{}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := []callRecord{
		{kind: "reconfigure", width: 800, height: 96},
		{kind: "render", width: 800, height: 96},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("calls[%d] = %+v, want %+v", i, r.calls[i], want[i])
		}
	}
}

// TestLoopRepeatedRedraw verifies N redraws produce N independent render
// calls with no intervening reconfiguration.
func TestLoopRepeatedRedraw(t *testing.T) {
	r := &fakeRenderer{width: 1024, height: 128}
	src := &fakeSource{batches: [][]Event{
		{RedrawEvent{}, RedrawEvent{}},
		{RedrawEvent{}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(r.calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(r.calls))
	}
	for i, c := range r.calls {
		if c.kind != "render" {
			t.Errorf("calls[%d].kind = %s, want render", i, c.kind)
		}
	}
}

// TestLoopIgnoresZeroResize verifies minimize-style resize events do not
// reach the renderer.
func TestLoopIgnoresZeroResize(t *testing.T) {
	r := &fakeRenderer{width: 1024, height: 128}
	src := &fakeSource{batches: [][]Event{
		{ResizeEvent{Width: 0, Height: 0}, RedrawEvent{}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if r.calls[0].kind != "render" || r.calls[0].width != 1024 {
		t.Errorf("calls = %+v, want render at prior size", r.calls)
	}
}

// TestLoopIgnoresUnknownEvents verifies unhandled event types leave the
// loop running and untouched.
func TestLoopIgnoresUnknownEvents(t *testing.T) {
	r := &fakeRenderer{}
	src := &fakeSource{batches: [][]Event{
		{otherEvent{}, otherEvent{}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("calls = %+v, want none", r.calls)
	}
}

// TestLoopRenderErrorIsFatal verifies a failed frame aborts the loop with
// a wrapped error.
func TestLoopRenderErrorIsFatal(t *testing.T) {
	frameErr := errors.New("surface lost")
	r := &fakeRenderer{renderErr: frameErr}
	src := &fakeSource{batches: [][]Event{{RedrawEvent{}}}}
	l := New(src, r)

	err := l.Run()
	if !errors.Is(err, frameErr) {
		t.Fatalf("Run() = %v, want wrapped %v", err, frameErr)
	}
}

// TestLoopReconfigureIdempotent verifies repeating the same resize leaves
// the renderer in the same final state.
func TestLoopReconfigureIdempotent(t *testing.T) {
	r := &fakeRenderer{}
	src := &fakeSource{batches: [][]Event{
		{ResizeEvent{Width: 640, Height: 64}, ResizeEvent{Width: 640, Height: 64}},
	}}
	l := New(src, r)

	if err := l.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if r.width != 640 || r.height != 64 {
		t.Errorf("final size = %dx%d, want 640x64", r.width, r.height)
	}
}
