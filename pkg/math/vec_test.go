package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	if got := (Vec2{1, 0}).Cross(Vec2{0, 1}); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := (Vec2{0, 1}).Cross(Vec2{1, 0}); got != -1 {
		t.Errorf("Vec2.Cross() = %v, want -1", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	tests := []struct {
		a, b float32
	}{
		{0, 1},
		{0.001, float32(2 * math.Pi)},
		{float32(-math.Pi), float32(3 * math.Pi)},
		{float32(math.Pi / -2), float32(math.Pi / 2)},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, 0); got != tt.a {
			t.Errorf("Lerp(%v, %v, 0) = %v, want %v", tt.a, tt.b, got, tt.a)
		}
		if got := Lerp(tt.a, tt.b, 1); got != tt.b {
			t.Errorf("Lerp(%v, %v, 1) = %v, want %v", tt.a, tt.b, got, tt.b)
		}
	}

	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v, want 3", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return the zero vector")
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got := a.Min(b); got != (Vec3{1, -1, -2}) {
		t.Errorf("Vec3.Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, 0}) {
		t.Errorf("Vec3.Max() = %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("expected finite vector")
	}
	if (Vec3{nan, 0, 0}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if (Vec3{0, 0, inf}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}
