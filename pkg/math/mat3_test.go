package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMat3InverseMatchesMathGL(t *testing.T) {
	m := Mat3{
		2, 0.5, 0,
		-1, 3, 0.25,
		0, 1, 4,
	}
	got, ok := m.Inverse()
	if !ok {
		t.Fatal("matrix reported singular")
	}

	want := mgl32.Mat3(m).Inv()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if abs(m.Det()-mgl32.Mat3(m).Det()) > 1e-4 {
		t.Errorf("Det: got %v, want %v", m.Det(), mgl32.Mat3(m).Det())
	}
}

func TestMat3InverseSingular(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	}
	if _, ok := m.Inverse(); ok {
		t.Error("singular matrix should not invert")
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := m.Transpose()
	want := Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}
	if got != want {
		t.Errorf("Transpose: got %v, want %v", got, want)
	}
}

func TestNormalMatrixMatchesMathGL(t *testing.T) {
	axis := Vec3{1, 1, 0}
	m := TRS(Vec3{4, 5, 6}, QuatFromAxisAngle(axis, 0.7), Vec3{2, 3, 0.5})

	got, ok := NormalMatrix(m)
	if !ok {
		t.Fatal("normal matrix reported singular")
	}

	ref := mgl32.Translate3D(4, 5, 6).
		Mul4(mgl32.HomogRotate3D(0.7, mgl32.Vec3{1, 1, 0}.Normalize())).
		Mul4(mgl32.Scale3D(2, 3, 0.5)).
		Mat3().Inv().Transpose()
	for i := range got {
		if abs(got[i]-ref[i]) > 1e-4 {
			t.Errorf("element %d: got %v, want %v", i, got[i], ref[i])
		}
	}
}

func TestNormalMatrixKeepsNormalsPerpendicular(t *testing.T) {
	// A plane spanned by (1,1,0) and (0,0,1) has normal (1,-1,0).
	m := Scale(Vec3{4, 1, 1})
	nm, _ := NormalMatrix(m)

	t1 := m.TransformDirection(Vec3{1, 1, 0})
	t2 := m.TransformDirection(Vec3{0, 0, 1})
	n := nm.MulVec3(Vec3{1, -1, 0})

	if abs(n.Dot(t1)) > 1e-5 || abs(n.Dot(t2)) > 1e-5 {
		t.Errorf("transformed normal %v not perpendicular to %v and %v", n, t1, t2)
	}
}
