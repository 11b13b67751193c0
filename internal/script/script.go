// Package script decodes touch replay scripts.
//
// A script is a YAML document listing touch events in order:
//
//	events:
//	  - phase: start
//	    touches: [{id: 1, x: 40, y: 40}, {id: 2, x: 60, y: 60}]
//	  - phase: move
//	    touches: [{id: 1, x: 30, y: 30}, {id: 2, x: 70, y: 70}]
//	    hold: 10
//	  - phase: end
//
// x and y are canvas pixels; Steps converts them to touch space. hold is the
// number of extra idle ticks after the event.
package script

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gridview"
)

// Script is a decoded replay script.
type Script struct {
	Events []Event `yaml:"events"`
}

// Event is one touch event of a script.
type Event struct {
	Phase   string  `yaml:"phase"`
	Touches []Touch `yaml:"touches"`
	Hold    int     `yaml:"hold"`
}

// Touch is one finger position in canvas pixels.
type Touch struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Step is a touch event ready to replay, followed by Hold idle ticks.
type Step struct {
	Event gridview.TouchEvent
	Hold  int
}

// Load reads and decodes the script at path.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	steps, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	return steps, nil
}

// Parse decodes a script.
func Parse(data []byte) ([]Step, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return s.Steps()
}

// Steps converts the script to replayable steps.
func (s *Script) Steps() ([]Step, error) {
	steps := make([]Step, 0, len(s.Events))
	for i, e := range s.Events {
		phase, err := parsePhase(e.Phase)
		if err != nil {
			return nil, fmt.Errorf("event[%d]: %w", i, err)
		}
		if e.Hold < 0 {
			return nil, fmt.Errorf("event[%d]: hold must be >= 0, got %d", i, e.Hold)
		}
		frame := make(gridview.TouchFrame, len(e.Touches))
		for j, t := range e.Touches {
			frame[j] = gridview.TouchSample{ID: t.ID, Pos: gridview.TouchPos(gridview.Pt(t.X, t.Y))}
		}
		steps = append(steps, Step{
			Event: gridview.TouchEvent{Phase: phase, Frame: frame},
			Hold:  e.Hold,
		})
	}
	return steps, nil
}

func parsePhase(s string) (gridview.Phase, error) {
	switch strings.ToLower(s) {
	case "start":
		return gridview.PhaseStart, nil
	case "move":
		return gridview.PhaseMove, nil
	case "end":
		return gridview.PhaseEnd, nil
	default:
		return 0, fmt.Errorf("unknown phase %q (use start, move or end)", s)
	}
}
