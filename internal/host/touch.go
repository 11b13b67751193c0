// Package host connects a gridview.View to a desktop window or to a
// headless replay loop.
package host

import (
	"slices"

	"github.com/gogpu/gridview"
)

// Tracker turns per-tick touch snapshots into gesture events.
//
// Input devices report the set of touches down at each tick. Tracker keeps
// the touches in the order they first went down, emits Start when the set of
// touches changes, Move when the same touches moved, and End when the last
// touch lifts. When some but not all touches lift, the interpreter sees End
// followed by Start with the remaining touches, so a two-finger pinch that
// loses a finger continues as a pan.
type Tracker struct {
	last gridview.TouchFrame
}

// Update takes the touches currently down and returns the events to feed to
// a gesture interpreter, usually zero or one and at most two.
func (t *Tracker) Update(down []gridview.TouchSample) []gridview.TouchEvent {
	cur := t.order(down)

	switch {
	case len(cur) == 0 && len(t.last) == 0:
		return nil
	case len(cur) == 0:
		t.last = nil
		return []gridview.TouchEvent{{Phase: gridview.PhaseEnd}}
	case len(t.last) == 0:
		t.last = cur
		return []gridview.TouchEvent{start(cur)}
	}

	var events []gridview.TouchEvent
	switch {
	case lifted(t.last, cur):
		events = append(events, gridview.TouchEvent{Phase: gridview.PhaseEnd}, start(cur))
	case len(cur) != len(t.last):
		events = append(events, start(cur))
	case !slices.Equal(cur, t.last):
		events = append(events, gridview.TouchEvent{Phase: gridview.PhaseMove, Frame: slices.Clone(cur)})
	}
	t.last = cur
	return events
}

// Active reports whether any touch is down.
func (t *Tracker) Active() bool { return len(t.last) > 0 }

// Reset forgets all touches without emitting events.
func (t *Tracker) Reset() { t.last = nil }

// order returns down sorted by first-seen order: touches already tracked
// keep their position, new touches follow in the order given.
func (t *Tracker) order(down []gridview.TouchSample) gridview.TouchFrame {
	if len(down) == 0 {
		return nil
	}
	cur := make(gridview.TouchFrame, 0, len(down))
	for _, prev := range t.last {
		if i := indexOf(down, prev.ID); i >= 0 {
			cur = append(cur, down[i])
		}
	}
	for _, s := range down {
		if indexOf(cur, s.ID) < 0 {
			cur = append(cur, s)
		}
	}
	return cur
}

func lifted(last, cur gridview.TouchFrame) bool {
	for _, s := range last {
		if indexOf(cur, s.ID) < 0 {
			return true
		}
	}
	return false
}

func indexOf(f []gridview.TouchSample, id int) int {
	return slices.IndexFunc(f, func(s gridview.TouchSample) bool { return s.ID == id })
}

func start(f gridview.TouchFrame) gridview.TouchEvent {
	return gridview.TouchEvent{Phase: gridview.PhaseStart, Frame: slices.Clone(f)}
}
