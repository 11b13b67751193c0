package host

import "github.com/gogpu/gridview"

// WindowConfig controls the window runner.
type WindowConfig struct {
	Title       string
	PanStep     float64           // grid offset change per arrow key press
	ScaleStep   float64           // scale change per +/- key press
	WheelFactor float64           // zoom factor per wheel notch
	Home        gridview.Viewport // viewport restored by the R key
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "gridview"
	}
	if !(c.PanStep > 0) {
		c.PanStep = 1
	}
	if !(c.ScaleStep > 0) {
		c.ScaleStep = 0.1
	}
	if !(c.WheelFactor > 1) {
		c.WheelFactor = 1.1
	}
	return c
}
