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
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation lives in the last column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30}).Mul(Scale(Vec3{2, 2, 2}))
	got := m.TransformDirection(Vec3{1, 0, 0})

	want := Vec3{2, 0, 0}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale, then rotate 90 degrees about Z, then translate.
	m := TRS(Vec3{0, 0, 1}, QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2), Vec3{2, 1, 1})
	got := m.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) -> (2,0,0) -> (0,2,0) -> (0,2,1)
	if abs(got.X) > 1e-5 || abs(got.Y-2) > 1e-5 || abs(got.Z-1) > 1e-5 {
		t.Errorf("TRS: got %v, want (0, 2, 1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	eye := m.TransformPoint(Vec3{0, 0, 5})
	if eye.Length() > 1e-5 {
		t.Errorf("LookAt should map eye to origin, got %v", eye)
	}
	// The target sits on -Z in view space.
	target := m.TransformPoint(Vec3{})
	if abs(target.Z+5) > 1e-5 {
		t.Errorf("LookAt target: got %v, want (0, 0, -5)", target)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
