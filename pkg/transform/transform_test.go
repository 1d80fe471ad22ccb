package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlicef(t, want[:], got[:], eps, "want %v, got %v", want, got)
}

func TestComposeSingle(t *testing.T) {
	a := Translate(1, 2, 3)
	p := mgl32.Vec3{4, 5, 6}
	assertVec(t, Apply(a, p), Apply(Compose(a), p))
}

func TestComposeEmptyIsIdentity(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), Compose())
}

func TestComposeOrder(t *testing.T) {
	a := Scale(2, 2, 2)
	b := Translate(1, 0, 0)
	p := mgl32.Vec3{1, 1, 1}

	got := Apply(Compose(a, b), p)
	assertVec(t, mgl32.Vec3{3, 2, 2}, got)
	assertVec(t, Apply(b, Apply(a, p)), got)

	// The reverse order would give A*(B*p) = (4,2,2).
	assert.False(t, Apply(a, Apply(b, p)).ApproxEqualThreshold(got, eps))
}

func TestRotationsAreRightHanded(t *testing.T) {
	tests := []struct {
		name string
		m    mgl32.Mat4
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"x", RotateX(90), mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{"y", RotateY(90), mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
		{"z", RotateZ(90), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"zero", RotateZ(0), mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, Apply(tt.m, tt.in))
		})
	}
}

func TestPivotRotation(t *testing.T) {
	pivot := mgl32.Vec3{8, 8, 8}
	m := Compose(TranslateVec(pivot.Mul(-1)), RotateY(180), TranslateVec(pivot))
	assertVec(t, mgl32.Vec3{16, 0, 16}, Apply(m, mgl32.Vec3{0, 0, 0}))
	assertVec(t, pivot, Apply(m, pivot))
}
