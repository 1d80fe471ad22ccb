package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"mc-icons/internal/meshing"
	"mc-icons/pkg/blockmodel"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeModel(dir string) *blockmodel.ResolvedModel {
	e := blockmodel.Element{To: [3]float32{16, 16, 16}, Shade: true, Faces: map[blockmodel.Direction]blockmodel.Face{}}
	for _, d := range blockmodel.Directions {
		path := filepath.Join(dir, "side.png")
		if d == blockmodel.Up {
			path = filepath.Join(dir, "top.png")
		}
		e.Faces[d] = blockmodel.Face{Direction: d, UV: blockmodel.AutoUV(d, e.From, e.To), TexturePath: path, TintIndex: -1}
	}
	return &blockmodel.ResolvedModel{
		Location: blockmodel.ResourceLocation{Namespace: "minecraft", Path: "item/log"},
		Elements: []blockmodel.Element{e},
		Displays: map[string]blockmodel.Display{"gui": {Rotation: [3]float32{30, 225, 0}, Scale: [3]float32{0.625, 0.625, 0.625}}},
		GUILight: blockmodel.GUILightSide,

		AmbientOcclusion: true,
	}
}

func TestBuildDocumentGroupsByTexture(t *testing.T) {
	mesh, err := meshing.BuildMesh(cubeModel(t.TempDir()), meshing.DefaultSlot)
	require.NoError(t, err)

	doc, err := BuildDocument(mesh)
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 1)
	prims := doc.Meshes[0].Primitives
	require.Len(t, prims, 2, "one primitive per texture")
	assert.Len(t, doc.Materials, 2)
	assert.Len(t, doc.Images, 2)

	sideCount := 0
	for _, p := range prims {
		sideCount = max(sideCount, int(doc.Accessors[p.Attributes[gltf.POSITION]].Count))
	}
	assert.Equal(t, 5*4, sideCount)

	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, [16]float32(mesh.Display), doc.Nodes[0].Matrix)
	assert.Equal(t, map[string]any{"gui_light": "side", "ambient_occlusion": true}, doc.Nodes[0].Extras)
	for _, p := range prims {
		assert.Nil(t, p.Extras, "shaded faces carry no extras")
	}
}

func TestUnshadedFacesGetOwnPrimitive(t *testing.T) {
	model := cubeModel(t.TempDir())
	flat := model.Elements[0]
	flat.Shade = false
	model.Elements = append(model.Elements, flat)

	mesh, err := meshing.BuildMesh(model, meshing.DefaultSlot)
	require.NoError(t, err)
	doc, err := BuildDocument(mesh)
	require.NoError(t, err)

	prims := doc.Meshes[0].Primitives
	require.Len(t, prims, 4, "texture x shade")
	assert.Len(t, doc.Materials, 2, "materials are shared across shade groups")
	unshaded := 0
	for _, p := range prims {
		if p.Extras != nil {
			assert.Equal(t, map[string]any{"shade": false}, p.Extras)
			unshaded++
		}
	}
	assert.Equal(t, 2, unshaded)
}

func TestWriteGLBRoundTrip(t *testing.T) {
	dir := t.TempDir()
	mesh, err := meshing.BuildMesh(cubeModel(dir), meshing.DefaultSlot)
	require.NoError(t, err)

	out := OutputPath(filepath.Join(dir, "out"), mesh.Model, "glb")
	assert.Equal(t, filepath.Join(dir, "out", "minecraft", "item", "log.glb"), out)
	require.NoError(t, WriteGLB(out, mesh))

	doc, err := gltf.Open(out)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)

	total := 0
	for _, p := range doc.Meshes[0].Primitives {
		total += int(doc.Accessors[*p.Indices].Count)
	}
	assert.Equal(t, 6*6, total, "two triangles per quad")
}

func TestEmptyMeshHasNoMeshNode(t *testing.T) {
	doc, err := BuildDocument(&meshing.Mesh{Model: blockmodel.ResourceLocation{Namespace: "minecraft", Path: "item/air"}})
	require.NoError(t, err)
	assert.Empty(t, doc.Meshes)
	require.Len(t, doc.Nodes, 1)
	assert.Nil(t, doc.Nodes[0].Mesh)
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 2, color.NRGBA{G: 200, A: 255})

	path := filepath.Join(t.TempDir(), "nested", "icon.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, g, b, a := decoded.At(1, 2).RGBA()
	assert.Equal(t, [4]uint32{0, 200 * 0x101, 0, 0xffff}, [4]uint32{r, g, b, a})
}
