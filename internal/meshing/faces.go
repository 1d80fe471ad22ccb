package meshing

import (
	"mc-icons/pkg/blockmodel"

	"github.com/go-gl/mathgl/mgl32"
)

// faceData describes one side of the canonical cube spanning [-0.5, 0.5] on each axis.
type faceData struct {
	// uvOffset is the intrinsic quarter-turn applied to the UV corners of this side.
	uvOffset int
	normal   mgl32.Vec3
	vertices [4]mgl32.Vec3
}

var faceTable = [...]faceData{
	blockmodel.Down: {
		uvOffset: 0,
		normal:   mgl32.Vec3{0, -1, 0},
		vertices: [4]mgl32.Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}},
	},
	blockmodel.Up: {
		uvOffset: -1,
		normal:   mgl32.Vec3{0, 1, 0},
		vertices: [4]mgl32.Vec3{{-.5, .5, -.5}, {-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}},
	},
	blockmodel.North: {
		uvOffset: 1,
		normal:   mgl32.Vec3{0, 0, -1},
		vertices: [4]mgl32.Vec3{{-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}, {.5, -.5, -.5}},
	},
	blockmodel.South: {
		uvOffset: 0,
		normal:   mgl32.Vec3{0, 0, 1},
		vertices: [4]mgl32.Vec3{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}},
	},
	blockmodel.West: {
		uvOffset: 1,
		normal:   mgl32.Vec3{-1, 0, 0},
		vertices: [4]mgl32.Vec3{{-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}, {-.5, -.5, -.5}},
	},
	blockmodel.East: {
		uvOffset: 1,
		normal:   mgl32.Vec3{1, 0, 0},
		vertices: [4]mgl32.Vec3{{.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}, {.5, -.5, .5}},
	},
}

// QuadIndices splits a quad into two triangles sharing the 0-2 diagonal.
var QuadIndices = [6]uint32{0, 1, 2, 0, 2, 3}
