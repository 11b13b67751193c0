package gridview

import "math"

// Viewport defaults.
const (
	// DefaultScale is the initial number of canvas pixels per grid cell.
	DefaultScale = 4.0

	// DefaultMinScale is the smallest scale a Viewport will store unless
	// WithScaleLimits sets another positive minimum.
	DefaultMinScale = 1e-3
)

// DefaultOffset is the initial viewport offset.
var DefaultOffset = Point{X: -1, Y: -1}

// Viewport maps grid space to canvas space.
//
// The forward transform takes a grid position g to the canvas position
//
//	c = g*scale - offset
//
// and the inverse used by the renderer is
//
//	g = (c + offset) / scale
//
// Viewport is an immutable value: every update returns a new Viewport with
// scale and offset changed together. The scale is always finite and within
// the viewport's limits, which are always strictly positive.
type Viewport struct {
	scale    float64
	offset   Point
	minScale float64
	maxScale float64 // 0 = unbounded
}

// NewViewport creates a viewport with DefaultScale and DefaultOffset unless
// overridden by options.
func NewViewport(opts ...ViewportOption) Viewport {
	o := defaultViewportOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := Viewport{offset: o.offset, minScale: o.minScale, maxScale: o.maxScale}
	if !(v.minScale > 0) || math.IsInf(v.minScale, 0) {
		v.minScale = DefaultMinScale
	}
	if v.maxScale < v.minScale || math.IsNaN(v.maxScale) || math.IsInf(v.maxScale, 0) {
		v.maxScale = 0
	}
	if !v.offset.IsFinite() {
		v.offset = DefaultOffset
	}
	s := o.scale
	if !validScale(s) {
		s = DefaultScale
	}
	v.scale = v.clampScale(s)
	return v
}

// Scale returns the number of canvas pixels per grid cell.
func (v Viewport) Scale() float64 {
	if v.scale == 0 {
		// Zero value: behave like NewViewport().
		return DefaultScale
	}
	return v.scale
}

// Offset returns the canvas-space offset subtracted by the forward transform.
func (v Viewport) Offset() Point {
	if v.scale == 0 {
		return DefaultOffset
	}
	return v.offset
}

// Limits returns the minimum and maximum scale. A maximum of 0 means the
// scale is unbounded above.
func (v Viewport) Limits() (lo, hi float64) {
	if v.minScale == 0 {
		return DefaultMinScale, v.maxScale
	}
	return v.minScale, v.maxScale
}

// GridToCanvas maps a grid position to its canvas position.
func (v Viewport) GridToCanvas(g Point) Point {
	return g.Mul(v.Scale()).Sub(v.Offset())
}

// CanvasToGrid maps a canvas position to a continuous grid position.
func (v Viewport) CanvasToGrid(c Point) Point {
	// Divide rather than multiply by 1/scale so CellAt agrees with Render.
	p, s := c.Add(v.Offset()), v.Scale()
	return Point{X: p.X / s, Y: p.Y / s}
}

// CellAt returns the grid cell sampled for the canvas position c.
// The result may lie outside any particular grid.
func (v Viewport) CellAt(c Point) (col, row int) {
	g := v.CanvasToGrid(c).Floor()
	return int(g.X), int(g.Y)
}

// Transform returns the forward grid-to-canvas mapping, for collaborators
// such as overlays that map many points.
func (v Viewport) Transform() Transform {
	s, off := v.Scale(), v.Offset()
	return Transform{SX: s, SY: s, TX: -off.X, TY: -off.Y}
}

// Pan returns v with delta added to the offset.
func (v Viewport) Pan(delta Point) Viewport {
	v = v.normalized()
	v.offset = v.offset.Add(delta)
	return v
}

// ZoomAt returns v scaled by factor such that the grid point under anchor
// stays under anchor. The resulting scale is clamped to the viewport limits;
// the anchor is preserved for the clamped scale.
//
// It returns ErrInvalidZoomFactor if factor is not a positive finite number.
func (v Viewport) ZoomAt(anchor Point, factor float64) (Viewport, error) {
	if !validScale(factor) {
		return v, ErrInvalidZoomFactor
	}
	return v.zoomAt(anchor, factor), nil
}

func (v Viewport) zoomAt(anchor Point, factor float64) Viewport {
	v = v.normalized()
	s := v.clampScale(v.scale * factor)
	f := s / v.scale
	// offset' = (anchor + offset)*f - anchor
	v.offset = anchor.Add(v.offset).Mul(f).Sub(anchor)
	v.scale = s
	return v
}

// WithScale returns v with the given scale, clamped to the viewport limits.
// The offset is unchanged.
func (v Viewport) WithScale(scale float64) (Viewport, error) {
	if !validScale(scale) {
		return v, ErrInvalidScale
	}
	v = v.normalized()
	v.scale = v.clampScale(scale)
	return v, nil
}

// AdjustScale returns v with delta added to the scale, clamped to the
// viewport limits. The offset is unchanged.
func (v Viewport) AdjustScale(delta float64) Viewport {
	v = v.normalized()
	s := v.scale + delta
	if math.IsNaN(s) {
		return v
	}
	v.scale = v.clampScale(s)
	return v
}

// Equal reports whether v and w have the same scale, offset and limits.
func (v Viewport) Equal(w Viewport) bool {
	return v.normalized() == w.normalized()
}

func (v Viewport) normalized() Viewport {
	if v.scale == 0 {
		return NewViewport()
	}
	return v
}

func (v Viewport) clampScale(s float64) float64 {
	lo, hi := v.Limits()
	if !(s >= lo) { // also catches NaN
		return lo
	}
	if hi > 0 && s > hi {
		return hi
	}
	if math.IsInf(s, 1) {
		return math.MaxFloat64
	}
	return s
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 1)
}
