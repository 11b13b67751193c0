package gridview

import (
	"math"
	"testing"
)

func frame(pts ...Point) TouchFrame {
	f := make(TouchFrame, len(pts))
	for i, p := range pts {
		f[i] = TouchSample{ID: i + 1, Pos: p}
	}
	return f
}

func start(pts ...Point) TouchEvent { return TouchEvent{Phase: PhaseStart, Frame: frame(pts...)} }
func move(pts ...Point) TouchEvent  { return TouchEvent{Phase: PhaseMove, Frame: frame(pts...)} }
func end() TouchEvent               { return TouchEvent{Phase: PhaseEnd} }

// noticeRecorder counts notices.
type noticeRecorder struct {
	got []Notice
}

func (r *noticeRecorder) Notify(n Notice) { r.got = append(r.got, n) }

// TestPanGesture moves one finger from (10,10) to (13,17).
func TestPanGesture(t *testing.T) {
	in := NewInterpreter(WithNotifier(&noticeRecorder{}))
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10)), vp)
	if !vp.Equal(NewViewport()) {
		t.Fatalf("start changed viewport to (%v, %v)", vp.Scale(), vp.Offset())
	}

	got := in.Handle(move(Pt(13, 17)), vp)
	if got.Scale() != vp.Scale() {
		t.Errorf("Scale() = %v, want %v", got.Scale(), vp.Scale())
	}
	if d := got.Offset().Sub(vp.Offset()); d != Pt(3, 7) {
		t.Errorf("offset delta = %v, want (3, 7)", d)
	}
}

func TestPanWithoutPriorFrameOnlyRecords(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	got := in.Handle(move(Pt(50, 50)), vp)
	if !got.Equal(vp) {
		t.Errorf("first move changed viewport to (%v, %v)", got.Scale(), got.Offset())
	}
	if !in.Tracking() {
		t.Fatal("Tracking() = false after move, want true")
	}

	got = in.Handle(move(Pt(51, 49)), got)
	if d := got.Offset().Sub(vp.Offset()); d != Pt(1, -1) {
		t.Errorf("second move offset delta = %v, want (1, -1)", d)
	}
}

// TestPinchPreservesCentroid spreads two fingers symmetrically about the
// touch-space point (50,50), which is canvas pixel (-50,-50).
func TestPinchPreservesCentroid(t *testing.T) {
	tests := []struct {
		name      string
		last, cur [2]Point
		factor    float64
	}{
		{"spread x2", [2]Point{Pt(40, 50), Pt(60, 50)}, [2]Point{Pt(30, 50), Pt(70, 50)}, 2},
		{"pinch /2", [2]Point{Pt(30, 50), Pt(70, 50)}, [2]Point{Pt(40, 50), Pt(60, 50)}, 0.5},
		{"diagonal x1.5", [2]Point{Pt(46, 47), Pt(54, 53)}, [2]Point{Pt(44, 45.5), Pt(56, 54.5)}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter()
			vp := NewViewport()
			centroid := CanvasPos(Pt(50, 50))
			before := vp.CanvasToGrid(centroid)

			vp = in.Handle(start(tt.last[0], tt.last[1]), vp)
			got := in.Handle(move(tt.cur[0], tt.cur[1]), vp)

			if math.Abs(got.Scale()-vp.Scale()*tt.factor) > 1e-9 {
				t.Errorf("Scale() = %v, want %v", got.Scale(), vp.Scale()*tt.factor)
			}
			after := got.CanvasToGrid(centroid)
			if math.Abs(after.X-before.X) > 1e-9 || math.Abs(after.Y-before.Y) > 1e-9 {
				t.Errorf("grid point under centroid moved: %v -> %v", before, after)
			}
			// Same point through the forward transform.
			if c := got.GridToCanvas(before); math.Abs(c.X-centroid.X) > 1e-9 || math.Abs(c.Y-centroid.Y) > 1e-9 {
				t.Errorf("GridToCanvas(%v) = %v, want %v", before, c, centroid)
			}
		})
	}
}

func TestPinchPansWithCentroid(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10), Pt(20, 10)), vp)
	// Same distance, centroid moves by (5, 8).
	got := in.Handle(move(Pt(15, 18), Pt(25, 18)), vp)

	if got.Scale() != vp.Scale() {
		t.Errorf("Scale() = %v, want unchanged %v", got.Scale(), vp.Scale())
	}
	if d := got.Offset().Sub(vp.Offset()); d != Pt(5, 8) {
		t.Errorf("offset delta = %v, want (5, 8)", d)
	}
}

// TestPinchOffsetFormula checks offset - (c - offset)*growth + (c - lastC)
// with values that are exact in binary floating point.
func TestPinchOffsetFormula(t *testing.T) {
	tests := []struct {
		name      string
		vp        Viewport
		last, cur [2]Point
		wantScale float64
		wantOff   Point
	}{
		{
			// c = (50,50), growth = 1, centroid fixed.
			name:      "spread about fixed centroid",
			vp:        NewViewport(WithScale(1), WithOffset(Pt(0, 0))),
			last:      [2]Point{Pt(40, 50), Pt(60, 50)},
			cur:       [2]Point{Pt(30, 50), Pt(70, 50)},
			wantScale: 2,
			wantOff:   Pt(-50, -50),
		},
		{
			// lastC = (50,50), c = (45,60), growth = 1:
			// (-1,-1) - (46,61) + (-5,10) = (-52,-52).
			name:      "spread while centroid moves",
			vp:        NewViewport(),
			last:      [2]Point{Pt(40, 50), Pt(60, 50)},
			cur:       [2]Point{Pt(25, 60), Pt(65, 60)},
			wantScale: 8,
			wantOff:   Pt(-52, -52),
		},
		{
			// lastC = (50,50), c = (52,48), growth = -0.5:
			// (-1,-1) + (53,49)*0.5 + (2,-2) = (27.5, 21.5).
			name:      "pinch while centroid moves",
			vp:        NewViewport(),
			last:      [2]Point{Pt(30, 50), Pt(70, 50)},
			cur:       [2]Point{Pt(42, 48), Pt(62, 48)},
			wantScale: 2,
			wantOff:   Pt(27.5, 21.5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter()
			vp := in.Handle(start(tt.last[0], tt.last[1]), tt.vp)
			got := in.Handle(move(tt.cur[0], tt.cur[1]), vp)
			if got.Scale() != tt.wantScale || got.Offset() != tt.wantOff {
				t.Errorf("pinch = (%v, %v), want (%v, %v)",
					got.Scale(), got.Offset(), tt.wantScale, tt.wantOff)
			}
		})
	}
}

// TestDragFollowsFinger feeds canvas positions through TouchPos and checks
// the grid point first under the finger is still under it after a pan and a
// two-finger drag.
func TestDragFollowsFinger(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport(WithScale(1), WithOffset(Pt(0, 0)))

	finger := Pt(10, 10)
	anchor := vp.CanvasToGrid(finger)
	vp = in.Handle(start(TouchPos(finger)), vp)
	finger = Pt(13, 10)
	vp = in.Handle(move(TouchPos(finger)), vp)
	if got := vp.GridToCanvas(anchor); got != finger {
		t.Errorf("one-finger drag: grid %v drawn at %v, want %v", anchor, got, finger)
	}
	vp = in.Handle(end(), vp)

	a, b := Pt(20, 20), Pt(40, 20)
	mid := Pt(30, 20)
	anchor = vp.CanvasToGrid(mid)
	vp = in.Handle(start(TouchPos(a), TouchPos(b)), vp)
	shift := Pt(7, -4)
	vp = in.Handle(move(TouchPos(a.Add(shift)), TouchPos(b.Add(shift))), vp)
	if got := vp.GridToCanvas(anchor); got != mid.Add(shift) {
		t.Errorf("two-finger drag: grid %v drawn at %v, want %v", anchor, got, mid.Add(shift))
	}
}

func TestTouchPosRoundTrip(t *testing.T) {
	p := Pt(12.5, -3)
	if got := TouchPos(p); got != Pt(-12.5, 3) {
		t.Errorf("TouchPos(%v) = %v", p, got)
	}
	if got := CanvasPos(TouchPos(p)); got != p {
		t.Errorf("CanvasPos(TouchPos(%v)) = %v", p, got)
	}
}

func TestPinchDegenerateDistance(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(30, 30), Pt(30, 30)), vp)
	got := in.Handle(move(Pt(20, 30), Pt(40, 30)), vp)

	if got.Scale() != vp.Scale() {
		t.Errorf("Scale() = %v, want unchanged %v", got.Scale(), vp.Scale())
	}
	if !got.Offset().IsFinite() {
		t.Errorf("Offset() = %v, want finite", got.Offset())
	}
}

func TestPinchCollapseClampsScale(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(0, 0), Pt(10, 0)), vp)
	got := in.Handle(move(Pt(5, 0), Pt(5, 0)), vp)
	if !(got.Scale() > 0) {
		t.Fatalf("Scale() = %v, want positive", got.Scale())
	}
	if got.Scale() != DefaultMinScale {
		t.Errorf("Scale() = %v, want %v", got.Scale(), DefaultMinScale)
	}
}

func TestPinchNeedsTwoRememberedTouches(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10)), vp)
	got := in.Handle(move(Pt(10, 10), Pt(40, 40)), vp)
	if !got.Equal(vp) {
		t.Errorf("two-finger move after one-finger frame changed viewport")
	}
	// Now two touches are remembered.
	got = in.Handle(move(Pt(10, 10), Pt(70, 70)), got)
	if got.Scale() <= vp.Scale() {
		t.Errorf("Scale() = %v, want > %v", got.Scale(), vp.Scale())
	}
}

// TestThreeFingerRejected checks the viewport is untouched and exactly one
// notice is sent.
func TestThreeFingerRejected(t *testing.T) {
	rec := &noticeRecorder{}
	in := NewInterpreter(WithNotifier(rec))
	vp := NewViewport(WithScale(3.3), WithOffset(Pt(1.25, -7.5)))

	vp = in.Handle(start(Pt(1, 1), Pt(2, 2), Pt(3, 3)), vp)
	got := in.Handle(move(Pt(5, 1), Pt(9, 2), Pt(30, 3)), vp)

	if math.Float64bits(got.Scale()) != math.Float64bits(vp.Scale()) ||
		math.Float64bits(got.Offset().X) != math.Float64bits(vp.Offset().X) ||
		math.Float64bits(got.Offset().Y) != math.Float64bits(vp.Offset().Y) {
		t.Errorf("viewport changed: (%v, %v) -> (%v, %v)", vp.Scale(), vp.Offset(), got.Scale(), got.Offset())
	}
	if len(rec.got) != 1 {
		t.Fatalf("notices = %d, want 1", len(rec.got))
	}
	if rec.got[0].Kind != NoticeUnsupportedGesture || rec.got[0].Touches != 3 {
		t.Errorf("notice = %+v, want unsupported gesture with 3 touches", rec.got[0])
	}
}

func TestEmptyMoveRejected(t *testing.T) {
	rec := &noticeRecorder{}
	in := NewInterpreter(WithNotifier(rec))
	vp := NewViewport()

	got := in.Handle(TouchEvent{Phase: PhaseMove}, vp)
	if !got.Equal(vp) {
		t.Error("empty move changed viewport")
	}
	if len(rec.got) != 1 || rec.got[0].Kind != NoticeNoTouches {
		t.Errorf("notices = %+v, want one NoticeNoTouches", rec.got)
	}
}

func TestRejectedMoveReplacesLastFrame(t *testing.T) {
	in := NewInterpreter(WithNotifier(&noticeRecorder{}))
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10)), vp)
	vp = in.Handle(move(Pt(100, 100), Pt(1, 1), Pt(2, 2)), vp)

	s := in.State()
	if !s.Tracking || len(s.Last) != 3 || s.Last[0].Pos != Pt(100, 100) {
		t.Fatalf("State() = %+v, want the rejected 3-touch frame", s)
	}

	// Pan is measured from the rejected frame's first touch.
	got := in.Handle(move(Pt(101, 103)), vp)
	if d := got.Offset().Sub(vp.Offset()); d != Pt(1, 3) {
		t.Errorf("offset delta = %v, want (1, 3)", d)
	}
}

func TestEndReturnsToIdle(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10)), vp)
	vp = in.Handle(end(), vp)
	if in.Tracking() {
		t.Fatal("Tracking() = true after end, want false")
	}
	if s := in.State(); s.Last != nil {
		t.Errorf("State().Last = %v, want nil", s.Last)
	}

	got := in.Handle(move(Pt(90, 90)), vp)
	if !got.Equal(vp) {
		t.Error("first move after end changed viewport")
	}
}

func TestStartResetsFrame(t *testing.T) {
	in := NewInterpreter()
	vp := NewViewport()

	vp = in.Handle(start(Pt(10, 10)), vp)
	vp = in.Handle(start(Pt(50, 50)), vp)
	got := in.Handle(move(Pt(52, 50)), vp)
	if d := got.Offset().Sub(vp.Offset()); d != Pt(2, 0) {
		t.Errorf("offset delta = %v, want (2, 0)", d)
	}
}

func TestStepDoesNotAliasFrame(t *testing.T) {
	f := frame(Pt(1, 1))
	out := Step(GestureState{}, TouchEvent{Phase: PhaseStart, Frame: f}, NewViewport())
	f[0].Pos = Pt(99, 99)
	if out.State.Last[0].Pos != Pt(1, 1) {
		t.Errorf("remembered frame changed with caller's slice: %v", out.State.Last[0].Pos)
	}
}

func TestStepClassification(t *testing.T) {
	tracking := GestureState{Tracking: true, Last: frame(Pt(0, 0), Pt(10, 0))}
	tests := []struct {
		name   string
		state  GestureState
		ev     TouchEvent
		want   Gesture
		notice NoticeKind
	}{
		{"start", GestureState{}, start(Pt(1, 1)), GestureNone, NoticeNone},
		{"end", tracking, end(), GestureNone, NoticeNone},
		{"pan", tracking, move(Pt(3, 3)), GesturePan, NoticeNone},
		{"pan idle", GestureState{}, move(Pt(3, 3)), GestureNone, NoticeNone},
		{"pinch", tracking, move(Pt(0, 0), Pt(20, 0)), GesturePinch, NoticeNone},
		{"empty", tracking, move(), GestureRejected, NoticeNoTouches},
		{"four", tracking, move(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)), GestureRejected, NoticeUnsupportedGesture},
		{"unknown phase", tracking, TouchEvent{Phase: Phase(9)}, GestureNone, NoticeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Step(tt.state, tt.ev, NewViewport())
			if out.Gesture != tt.want || out.Notice.Kind != tt.notice {
				t.Errorf("Step() = (%v, %v), want (%v, %v)", out.Gesture, out.Notice.Kind, tt.want, tt.notice)
			}
		})
	}
}
