package gridview

import (
	"fmt"
	"math"
	"slices"
)

// TouchSample is one finger position in touch space.
//
// Touch space is canvas space mirrored through the canvas origin: a finger at
// canvas pixel (x, y) has Pos (-x, -y), the canvas origin minus the finger.
// Use TouchPos to convert. In this frame adding a finger movement to the
// viewport offset drags the grid along with the finger.
type TouchSample struct {
	ID  int
	Pos Point
}

// TouchPos converts a canvas-local pixel position to touch space.
func TouchPos(canvas Point) Point {
	return Point{X: -canvas.X, Y: -canvas.Y}
}

// CanvasPos converts a touch-space position back to canvas pixels.
func CanvasPos(touch Point) Point {
	return Point{X: -touch.X, Y: -touch.Y}
}

// TouchFrame is the set of touches captured at one instant, in the order the
// input source reports them.
type TouchFrame []TouchSample

// Phase is the kind of touch event.
type Phase uint8

const (
	// PhaseStart is delivered when fingers are placed on the canvas.
	PhaseStart Phase = iota
	// PhaseMove is delivered when touching fingers move.
	PhaseMove
	// PhaseEnd is delivered when fingers are lifted.
	PhaseEnd
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// TouchEvent is a touch phase together with the touches active at that time.
type TouchEvent struct {
	Phase Phase
	Frame TouchFrame
}

// Gesture is the classification of a processed touch event.
type Gesture uint8

const (
	// GestureNone means the event changed no transform.
	GestureNone Gesture = iota
	// GesturePan is a one-finger drag.
	GesturePan
	// GesturePinch is a two-finger zoom combined with a pan of the centroid.
	GesturePinch
	// GestureRejected is a move with zero or three or more touches.
	GestureRejected
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "none"
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	case GestureRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Gesture(%d)", g)
	}
}

// GestureState is what the interpreter remembers between events. It is Idle
// when Tracking is false and Last is then nil.
type GestureState struct {
	Tracking bool
	Last     TouchFrame
}

// Outcome is the result of Step.
type Outcome struct {
	State    GestureState
	Viewport Viewport
	Gesture  Gesture
	Notice   Notice // Kind is NoticeNone unless the move was rejected
}

// Step applies one touch event to the remembered state and viewport. It is a
// pure function: the returned state never aliases ev.Frame.
//
// A move event compares the new frame against the remembered one:
//   - one touch pans by the movement of the first touch;
//   - two touches zoom about their centroid by the relative change of the
//     distance between them, and pan by the centroid's movement;
//   - zero touches, or three and more, are rejected with a Notice.
//
// The new frame is remembered after every move, rejected or not.
func Step(s GestureState, ev TouchEvent, vp Viewport) Outcome {
	out := Outcome{State: s, Viewport: vp}

	switch ev.Phase {
	case PhaseStart:
		out.State = GestureState{Tracking: true, Last: slices.Clone(ev.Frame)}
		return out
	case PhaseEnd:
		out.State = GestureState{}
		return out
	case PhaseMove:
	default:
		return out
	}

	cur := ev.Frame
	last := s.Last
	if !s.Tracking {
		last = nil
	}

	switch n := len(cur); {
	case n == 0:
		out.Gesture = GestureRejected
		out.Notice = Notice{Kind: NoticeNoTouches}
	case n == 1:
		if len(last) >= 1 {
			delta := cur[0].Pos.Sub(last[0].Pos)
			if delta.IsFinite() {
				out.Viewport = vp.Pan(delta)
				out.Gesture = GesturePan
			}
		}
	case n == 2:
		if len(last) >= 2 {
			if next, ok := pinch(vp, last[0].Pos, last[1].Pos, cur[0].Pos, cur[1].Pos); ok {
				out.Viewport = next
				out.Gesture = GesturePinch
			}
		}
	default:
		out.Gesture = GestureRejected
		out.Notice = Notice{Kind: NoticeUnsupportedGesture, Touches: n}
	}

	out.State = GestureState{Tracking: true, Last: slices.Clone(cur)}
	return out
}

// pinch computes the viewport after two fingers moved from (l0, l1) to
// (c0, c1), all in touch space. The scale follows the relative change of the
// finger distance and the offset becomes
//
//	offset - (curCenter - offset)*growth + (curCenter - lastCenter)
//
// which keeps the grid point under the current centroid in place while the
// whole view moves with the centroid. growth is recomputed from the clamped
// scale so the centroid stays put at the scale limits too.
func pinch(vp Viewport, l0, l1, c0, c1 Point) (Viewport, bool) {
	lastVec := l1.Sub(l0)
	lastCenter := l0.Add(lastVec.Mul(0.5))
	curVec := c1.Sub(c0)
	curCenter := c0.Add(curVec.Mul(0.5))
	if !lastCenter.IsFinite() || !curCenter.IsFinite() {
		return vp, false
	}

	growth := 0.0
	if lastLen := lastVec.Length(); lastLen > 0 {
		growth = (curVec.Length() - lastLen) / lastLen
	}
	if math.IsNaN(growth) || math.IsInf(growth, 0) {
		growth = 0
	}

	vp = vp.normalized()
	// 1+growth is never negative since lengths are not; a zero scale is
	// clamped to the minimum.
	scale := vp.clampScale(vp.scale * (1 + growth))
	growth = scale/vp.scale - 1

	vp.offset = vp.offset.
		Sub(curCenter.Sub(vp.offset).Mul(growth)).
		Add(curCenter.Sub(lastCenter))
	vp.scale = scale
	return vp, true
}

// Interpreter turns touch events into viewport updates. It remembers the last
// touch frame between calls and reports rejected gestures to its Notifier.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	state    GestureState
	notifier Notifier
}

// NewInterpreter creates an idle interpreter.
func NewInterpreter(opts ...InterpreterOption) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	if in.notifier == nil {
		in.notifier = LogNotifier(nil)
	}
	return in
}

// Handle applies ev to vp and returns the updated viewport. Rejected moves
// return vp unchanged and notify exactly once.
func (in *Interpreter) Handle(ev TouchEvent, vp Viewport) Viewport {
	out := in.Apply(ev, vp)
	return out.Viewport
}

// Apply is Handle returning the full Outcome.
func (in *Interpreter) Apply(ev TouchEvent, vp Viewport) Outcome {
	out := Step(in.state, ev, vp)
	in.state = out.State

	if out.Gesture != GestureNone {
		Logger().Debug("gesture",
			"phase", ev.Phase.String(),
			"touches", len(ev.Frame),
			"gesture", out.Gesture.String(),
			"scale", out.Viewport.Scale())
	}
	if out.Notice.Kind != NoticeNone {
		in.notifier.Notify(out.Notice)
	}
	return out
}

// State returns a copy of the remembered state.
func (in *Interpreter) State() GestureState {
	return GestureState{Tracking: in.state.Tracking, Last: slices.Clone(in.state.Last)}
}

// Tracking reports whether a touch frame is remembered.
func (in *Interpreter) Tracking() bool {
	return in.state.Tracking
}

// Reset forgets the remembered frame, as if all fingers were lifted.
func (in *Interpreter) Reset() {
	in.state = GestureState{}
}
