package vmath

import (
	"math"
	"testing"
)

func TestV2FNormalize(t *testing.T) {
	v := V2FNormalize(Vec2F{X: 3, Y: 4})
	if math.Abs(V2FMag(v)-1) > 1e-12 {
		t.Errorf("|normalize(3,4)| = %v, want 1", V2FMag(v))
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("normalize(3,4) = %+v, want (0.6, 0.8)", v)
	}
}

func TestV2FNormalizeZeroSafe(t *testing.T) {
	if v := V2FNormalize(Vec2F{}); v.X != 0 || v.Y != 0 {
		t.Errorf("normalize(0,0) = %+v, want exact zero", v)
	}
}

func TestV3FNormalizeZeroSafe(t *testing.T) {
	if v := V3FNormalize(Vec3F{}); v != (Vec3F{}) {
		t.Errorf("normalize(0,0,0) = %+v, want exact zero", v)
	}
}

func TestV3FOps(t *testing.T) {
	a := Vec3F{X: 1, Y: 2, Z: 3}
	b := Vec3F{X: 4, Y: 5, Z: 6}

	if got := V3FAdd(a, b); got != (Vec3F{X: 5, Y: 7, Z: 9}) {
		t.Errorf("add = %+v", got)
	}
	if got := V3FSub(b, a); got != (Vec3F{X: 3, Y: 3, Z: 3}) {
		t.Errorf("sub = %+v", got)
	}
	if got := V3FDot(a, b); got != 32 {
		t.Errorf("dot = %v, want 32", got)
	}
	if got := V3FScale(a, 2); got != (Vec3F{X: 2, Y: 4, Z: 6}) {
		t.Errorf("scale = %+v", got)
	}
	if got := V3FMag(Vec3F{X: 2, Y: 3, Z: 6}); got != 7 {
		t.Errorf("mag = %v, want 7", got)
	}
}
