package gridview

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Sink receives each rendered frame. buf holds width*height*4 RGBA bytes and
// is only valid for the duration of the call.
type Sink interface {
	Present(buf []byte, width, height int) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(buf []byte, width, height int) error

// Present calls f(buf, width, height).
func (f SinkFunc) Present(buf []byte, width, height int) error {
	return f(buf, width, height)
}

// View owns a grid, a viewport and a canvas size, and keeps a rendered frame
// in sync with them. Every call that changes one of the three renders the
// frame again and presents it to all subscribed sinks before returning.
//
// A View is not safe for concurrent use; all calls must come from the one
// goroutine that handles input.
type View struct {
	grid     *Grid
	viewport Viewport
	frame    *Pixmap
	gestures *Interpreter

	sinks  []*subscription
	nextID uint64
}

type subscription struct {
	id   uint64
	sink Sink
}

// NewView creates a view of grid on a width × height canvas and renders the
// first frame. Sinks passed with WithSink receive that frame.
func NewView(grid *Grid, width, height int, opts ...ViewOption) (*View, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, width, height)
	}

	var o viewOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		grid:     grid,
		viewport: NewViewport(),
		frame:    NewPixmap(width, height),
		gestures: o.interpreter,
	}
	if o.hasViewport {
		v.viewport = o.viewport.normalized()
	}
	if v.gestures == nil {
		v.gestures = NewInterpreter()
	}
	for _, s := range o.sinks {
		v.Subscribe(s)
	}
	return v, v.refresh()
}

// Subscribe registers s to receive every frame rendered from now on.
// The returned function removes the subscription.
func (v *View) Subscribe(s Sink) (unsubscribe func()) {
	v.nextID++
	id := v.nextID
	v.sinks = append(v.sinks, &subscription{id: id, sink: s})
	return func() {
		for i, sub := range v.sinks {
			if sub.id == id {
				v.sinks = append(v.sinks[:i], v.sinks[i+1:]...)
				return
			}
		}
	}
}

// Grid returns the current grid.
func (v *View) Grid() *Grid { return v.grid }

// Viewport returns the current viewport.
func (v *View) Viewport() Viewport { return v.viewport }

// Frame returns the most recently rendered frame. It is overwritten by the
// next render.
func (v *View) Frame() *Pixmap { return v.frame }

// Size returns the canvas size.
func (v *View) Size() (width, height int) { return v.frame.width, v.frame.height }

// Interpreter returns the gesture interpreter used by HandleTouch.
func (v *View) Interpreter() *Interpreter { return v.gestures }

// SetGrid replaces the grid and re-renders.
func (v *View) SetGrid(g *Grid) error {
	v.grid = g
	return v.refresh()
}

// Refresh re-renders the current state, for example after the grid's
// producer has changed cells in place.
func (v *View) Refresh() error {
	return v.refresh()
}

// SetViewport replaces the viewport, re-rendering if it changed.
func (v *View) SetViewport(vp Viewport) error {
	return v.update(vp.normalized())
}

// Resize changes the canvas size, re-rendering if it changed.
func (v *View) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == v.frame.width && height == v.frame.height {
		return nil
	}
	v.frame.Resize(width, height)
	return v.refresh()
}

// Pan moves the viewport offset by delta.
func (v *View) Pan(delta Point) error {
	return v.update(v.viewport.Pan(delta))
}

// ZoomAt scales the viewport by factor about the canvas point anchor.
func (v *View) ZoomAt(anchor Point, factor float64) error {
	next, err := v.viewport.ZoomAt(anchor, factor)
	if err != nil {
		return err
	}
	return v.update(next)
}

// AdjustScale adds delta to the viewport scale.
func (v *View) AdjustScale(delta float64) error {
	return v.update(v.viewport.AdjustScale(delta))
}

// HandleTouch feeds ev to the gesture interpreter and re-renders if the
// viewport changed. It returns the classification of the event.
func (v *View) HandleTouch(ev TouchEvent) (Gesture, error) {
	out := v.gestures.Apply(ev, v.viewport)
	return out.Gesture, v.update(out.Viewport)
}

func (v *View) update(next Viewport) error {
	if next.Equal(v.viewport) {
		return nil
	}
	v.viewport = next
	return v.refresh()
}

func (v *View) refresh() error {
	if debugEnabled() {
		start := time.Now()
		RenderTo(v.frame, v.grid, v.viewport)
		Logger().Debug("frame rendered",
			"width", v.frame.width,
			"height", v.frame.height,
			"scale", v.viewport.Scale(),
			"elapsed", time.Since(start))
	} else {
		RenderTo(v.frame, v.grid, v.viewport)
	}

	var errs []error
	// Sinks may unsubscribe while being presented to.
	for _, sub := range slices.Clone(v.sinks) {
		if err := sub.sink.Present(v.frame.data, v.frame.width, v.frame.height); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("gridview: present frame: %w", errors.Join(errs...))
	}
	return nil
}
