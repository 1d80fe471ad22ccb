package meshing

import (
	"math"

	"mc-icons/pkg/blockmodel"

	"github.com/go-gl/mathgl/mgl32"
)

// FaceUV converts a face's 0-16 grid UV rectangle into four texture-space
// corners matching the vertex order of its direction, with V flipped so the
// image origin is top-left, then applies the side's intrinsic quarter-turn plus
// the face rotation.
func FaceUV(face blockmodel.Face) [4]mgl32.Vec2 {
	u0 := face.UV[0] / 16
	v0 := 1 - face.UV[3]/16
	u1 := face.UV[2] / 16
	v1 := 1 - face.UV[1]/16

	corners := [4]mgl32.Vec2{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	return RotateCorners(corners, uvShift(face.Direction, face.Rotation))
}

// uvShift truncates like the float quarter-turn count it stands for, so odd
// angles that are not multiples of 90 land on the same corner as before.
func uvShift(d blockmodel.Direction, rotation int) int {
	return int(math.Trunc(float64(faceTable[d].uvOffset) + float64(rotation)/90))
}

// RotateCorners cyclically shifts the corners left by n positions; n is taken mod 4.
func RotateCorners(corners [4]mgl32.Vec2, n int) [4]mgl32.Vec2 {
	n = ((n % 4) + 4) % 4
	var out [4]mgl32.Vec2
	for i := range out {
		out[i] = corners[(i+n)%4]
	}
	return out
}
