package gridview

// ViewportOption configures a Viewport during creation.
//
// Example:
//
//	// Default viewport: scale 4, offset (-1, -1)
//	vp := gridview.NewViewport()
//
//	// One cell per pixel, no zooming out below 1/4 cell per pixel
//	vp := gridview.NewViewport(gridview.WithScale(1), gridview.WithScaleLimits(0.25, 0))
type ViewportOption func(*viewportOptions)

type viewportOptions struct {
	scale    float64
	offset   Point
	minScale float64
	maxScale float64
}

func defaultViewportOptions() viewportOptions {
	return viewportOptions{
		scale:    DefaultScale,
		offset:   DefaultOffset,
		minScale: DefaultMinScale,
	}
}

// WithScale sets the initial scale. Non-positive or non-finite values are
// replaced by DefaultScale.
func WithScale(scale float64) ViewportOption {
	return func(o *viewportOptions) {
		o.scale = scale
	}
}

// WithOffset sets the initial offset.
func WithOffset(offset Point) ViewportOption {
	return func(o *viewportOptions) {
		o.offset = offset
	}
}

// WithScaleLimits bounds the scale to [lo, hi]. A non-positive lo keeps
// DefaultMinScale; hi <= 0 leaves the scale unbounded above.
func WithScaleLimits(lo, hi float64) ViewportOption {
	return func(o *viewportOptions) {
		if lo > 0 {
			o.minScale = lo
		}
		o.maxScale = hi
	}
}

// InterpreterOption configures an Interpreter.
type InterpreterOption func(*Interpreter)

// WithNotifier sets the notifier that receives rejected-gesture notices.
// A nil notifier restores the default, which logs through Logger.
func WithNotifier(n Notifier) InterpreterOption {
	return func(in *Interpreter) {
		in.notifier = n
	}
}

// ViewOption configures a View during creation.
type ViewOption func(*viewOptions)

type viewOptions struct {
	viewport    Viewport
	hasViewport bool
	interpreter *Interpreter
	sinks       []Sink
}

// WithViewport sets the initial viewport of a View.
func WithViewport(vp Viewport) ViewOption {
	return func(o *viewOptions) {
		o.viewport = vp
		o.hasViewport = true
	}
}

// WithInterpreter sets the gesture interpreter used by View.HandleTouch.
func WithInterpreter(in *Interpreter) ViewOption {
	return func(o *viewOptions) {
		o.interpreter = in
	}
}

// WithSink subscribes s before the first frame is rendered, so it receives
// the initial frame too.
func WithSink(s Sink) ViewOption {
	return func(o *viewOptions) {
		o.sinks = append(o.sinks, s)
	}
}
