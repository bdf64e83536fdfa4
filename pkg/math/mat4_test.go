package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3Translate(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 0, 0})

	if got != (Vec3{1, 0, 0}) {
		t.Errorf("TransformDirection: got %v, want (1, 0, 0)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns into (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{0, 1, 0})

	// (0,1,0) turns into (0,0,1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z-1) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate first, then rotate: the point moves to (1,0,0) and then to (0,0,-1).
	m := RotateY(float32(math.Pi / 2)).Mul(Translate(1, 0, 0))
	got := m.TransformVec3(Vec3{})

	if abs(got.X) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY * Translate: got %v, want (0, 0, -1)", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
