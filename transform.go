package gridview

// Transform is an axis-aligned scale followed by a translation:
//
//	x' = x*SX + TX
//	y' = y*SY + TY
//
// Viewports never rotate or shear, so this is all a grid-to-canvas mapping
// needs. The zero value maps every point to the origin.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{SX: 1, SY: 1}
}

// Apply maps a position.
func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.SX + t.TX, Y: p.Y*t.SY + t.TY}
}

// ApplyVector maps a displacement, ignoring the translation.
func (t Transform) ApplyVector(d Point) Point {
	return Point{X: d.X * t.SX, Y: d.Y * t.SY}
}

// Then returns the transform that applies t and then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		SX: t.SX * u.SX,
		SY: t.SY * u.SY,
		TX: t.TX*u.SX + u.TX,
		TY: t.TY*u.SY + u.TY,
	}
}

// Invert returns the inverse of t. ok is false when a scale factor is zero.
func (t Transform) Invert() (inv Transform, ok bool) {
	if t.SX == 0 || t.SY == 0 {
		return Transform{}, false
	}
	return Transform{
		SX: 1 / t.SX,
		SY: 1 / t.SY,
		TX: -t.TX / t.SX,
		TY: -t.TY / t.SY,
	}, true
}

// IsIdentity reports whether t leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
