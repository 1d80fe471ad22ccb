package meshing

import (
	"mc-icons/pkg/blockmodel"
	"mc-icons/pkg/transform"

	"github.com/go-gl/mathgl/mgl32"
)

// Quad is one textured face ready for rasterising.
type Quad struct {
	Direction blockmodel.Direction
	Vertices  [4]mgl32.Vec3
	// Normal is the untransformed side normal, shared by both triangles.
	Normal mgl32.Vec3
	UV     [4]mgl32.Vec2
	// Texture is the resolved "namespace:path" and TexturePath the file backing it.
	Texture     string
	TexturePath string
	TintIndex   int
	// Shade is false for faces the renderer should light at full brightness.
	Shade bool
}

// ElementTransform maps the canonical unit cube onto the element box in the
// 0-16 grid, then applies the element rotation about its origin.
func ElementTransform(e blockmodel.Element) mgl32.Mat4 {
	from := mgl32.Vec3(e.From)
	size := mgl32.Vec3(e.To).Sub(from)

	var pivot mgl32.Vec3
	var xRot, yRot, zRot float32
	if r := e.Rotation; r != nil {
		pivot = mgl32.Vec3(r.Origin)
		switch r.Axis {
		case "x":
			xRot = r.Angle
		case "y":
			yRot = r.Angle
		case "z":
			zRot = r.Angle
		}
	}

	return transform.Compose(
		transform.Translate(.5, .5, .5),
		transform.Scale(size[0], size[1], size[2]),
		transform.TranslateVec(from),

		transform.TranslateVec(pivot.Mul(-1)),
		transform.RotateX(xRot),
		transform.RotateY(yRot),
		transform.RotateZ(zRot),
		transform.TranslateVec(pivot),
	)
}

// DisplayTransform centres the 16 unit model on the origin and applies the slot placement.
func DisplayTransform(d blockmodel.Display) mgl32.Mat4 {
	return transform.Compose(
		transform.Translate(-8, -8, -8),
		transform.Scale(d.Scale[0], d.Scale[1], d.Scale[2]),

		transform.RotateZ(d.Rotation[2]),
		transform.RotateY(d.Rotation[1]),
		transform.RotateX(d.Rotation[0]),

		transform.TranslateVec(mgl32.Vec3(d.Translation)),
	)
}

// ElementQuads builds one quad per remaining face of e, in canonical direction order.
// Faces carrying a cullface are emitted as well.
func ElementQuads(e blockmodel.Element) []Quad {
	m := ElementTransform(e)
	quads := make([]Quad, 0, len(e.Faces))
	for _, dir := range blockmodel.Directions {
		face, ok := e.Faces[dir]
		if !ok {
			continue
		}
		data := faceTable[dir]

		q := Quad{
			Direction:   dir,
			Normal:      data.normal,
			UV:          FaceUV(face),
			Texture:     face.Texture,
			TexturePath: face.TexturePath,
			TintIndex:   face.TintIndex,
			Shade:       e.Shade,
		}
		for i, v := range data.vertices {
			q.Vertices[i] = transform.Apply(m, v)
		}
		quads = append(quads, q)
	}
	return quads
}

// Generate builds the quads of every element of a resolved model, in element order.
func Generate(m *blockmodel.ResolvedModel) []Quad {
	var quads []Quad
	for _, e := range m.Elements {
		quads = append(quads, ElementQuads(e)...)
	}
	return quads
}
