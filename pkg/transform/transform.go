// Package transform builds 4x4 affine matrices and composes them in application order.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Compose returns a single matrix equivalent to applying ms[0] to a point first,
// then ms[1], and so on. Compose(A, B) maps p to B*(A*p).
// With no arguments it returns the identity.
func Compose(ms ...mgl32.Mat4) mgl32.Mat4 {
	if len(ms) == 0 {
		return mgl32.Ident4()
	}
	result := ms[0]
	for _, m := range ms[1:] {
		result = m.Mul4(result)
	}
	return result
}

func Translate(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

// TranslateVec is Translate for a vector.
func TranslateVec(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

func Scale(x, y, z float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, z)
}

// RotateX rotates counter-clockwise around +X by the given angle in degrees.
func RotateX(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(degrees))
}

// RotateY rotates counter-clockwise around +Y by the given angle in degrees.
func RotateY(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(degrees))
}

// RotateZ rotates counter-clockwise around +Z by the given angle in degrees.
func RotateZ(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(degrees))
}

// Apply transforms a point (w=1) by m.
func Apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
