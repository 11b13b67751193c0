package gridview

import (
	"math"
	"testing"
)

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTransformThenOrder(t *testing.T) {
	scale := Transform{SX: 2, SY: 3}
	shift := Transform{SX: 1, SY: 1, TX: 10, TY: 20}

	if got := scale.Then(shift).Apply(Pt(1, 1)); got != Pt(12, 23) {
		t.Errorf("scale then shift (1,1) = %v, want (12, 23)", got)
	}
	if got := shift.Then(scale).Apply(Pt(1, 1)); got != Pt(22, 63) {
		t.Errorf("shift then scale (1,1) = %v, want (22, 63)", got)
	}
	if got := scale.Then(shift).ApplyVector(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("ApplyVector(1,1) = %v, want (2, 3)", got)
	}
}

func TestTransformInvert(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"identity", IdentityTransform()},
		{"translation", Transform{SX: 1, SY: 1, TX: -4, TY: 7}},
		{"scale", Transform{SX: 4, SY: 4}},
		{"both", Transform{SX: 0.5, SY: 8, TX: 1, TY: 1}},
	}
	p := Pt(3.25, -9)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.tr.Invert()
			if !ok {
				t.Fatal("Invert() not ok")
			}
			if got := tt.tr.Then(inv).Apply(p); !near(got, p) {
				t.Errorf("round trip of %v = %v", p, got)
			}
		})
	}

	if _, ok := (Transform{SX: 0, SY: 1}).Invert(); ok {
		t.Error("Invert() of a collapsed axis reported ok")
	}
}

func TestTransformIsIdentity(t *testing.T) {
	if !IdentityTransform().IsIdentity() {
		t.Error("IdentityTransform().IsIdentity() = false")
	}
	if (Transform{SX: 1, SY: 1, TX: 3}).IsIdentity() {
		t.Error("translation reported as identity")
	}
	if (Transform{}).IsIdentity() {
		t.Error("zero value reported as identity")
	}
}
