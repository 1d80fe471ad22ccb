// Package export writes generated output to disk: meshes as binary glTF for an
// external renderer, layered item images as PNG.
package export

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"mc-icons/internal/meshing"
	"mc-icons/internal/texture"
	"mc-icons/pkg/blockmodel"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Generator is recorded in the asset header of every exported document.
const Generator = "mc-icons"

// OutputPath returns <dir>/<namespace>/<path>.<ext> for a model.
func OutputPath(dir string, model blockmodel.ResourceLocation, ext string) string {
	return filepath.Join(dir, model.Namespace, filepath.FromSlash(model.Path)) + "." + ext
}

// BuildDocument converts a mesh into a glTF document. Quads are grouped into one
// primitive per texture and shade flag; each texture is embedded once as PNG with
// nearest filtering. Unshaded primitives are marked in their extras. The single
// node carries the display transform as its matrix and the GUI light and ambient
// occlusion hints in its extras.
func BuildDocument(mesh *meshing.Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator
	doc.Samplers = []*gltf.Sampler{{
		MagFilter: gltf.MagNearest,
		MinFilter: gltf.MinNearest,
	}}

	type group struct {
		path  string
		shade bool
	}
	var order []group
	groups := make(map[group][]meshing.Quad)
	for _, q := range mesh.Quads {
		g := group{path: q.TexturePath, shade: q.Shade}
		if _, ok := groups[g]; !ok {
			order = append(order, g)
		}
		groups[g] = append(groups[g], q)
	}

	materials := make(map[string]uint32)
	for _, path := range mesh.TexturePaths() {
		material, err := writeMaterial(doc, path)
		if err != nil {
			return nil, err
		}
		materials[path] = material
	}

	var primitives []*gltf.Primitive
	for _, g := range order {
		prim := writePrimitive(doc, groups[g], materials[g.path])
		if !g.shade {
			prim.Extras = map[string]any{"shade": false}
		}
		primitives = append(primitives, prim)
	}

	node := &gltf.Node{
		Name:   mesh.Model.String(),
		Matrix: [16]float32(mesh.Display),
		Extras: map[string]any{
			"gui_light":         mesh.GUILight,
			"ambient_occlusion": mesh.AmbientOcclusion,
		},
	}
	if len(primitives) > 0 {
		doc.Meshes = []*gltf.Mesh{{Name: mesh.Model.String(), Primitives: primitives}}
		node.Mesh = gltf.Index(0)
	}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc, nil
}

// WriteGLB writes the mesh as a binary glTF file, creating parent directories.
func WriteGLB(path string, mesh *meshing.Mesh) error {
	doc, err := BuildDocument(mesh)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeMaterial(doc *gltf.Document, texturePath string) (uint32, error) {
	img, err := texture.Load(texturePath)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, fmt.Errorf("encode texture %s: %w", texturePath, err)
	}

	name := filepath.Base(texturePath)
	source, err := modeler.WriteImage(doc, name, "image/png", &buf)
	if err != nil {
		return 0, fmt.Errorf("embed texture %s: %w", texturePath, err)
	}
	doc.Textures = append(doc.Textures, &gltf.Texture{
		Sampler: gltf.Index(0),
		Source:  gltf.Index(source),
	})

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor:  &[4]float32{1, 1, 1, 1},
			BaseColorTexture: &gltf.TextureInfo{Index: uint32(len(doc.Textures) - 1)},
			MetallicFactor:   gltf.Float(0),
			RoughnessFactor:  gltf.Float(1),
		},
		AlphaMode:   gltf.AlphaMask,
		AlphaCutoff: gltf.Float(0),
	})
	return uint32(len(doc.Materials) - 1), nil
}

func writePrimitive(doc *gltf.Document, quads []meshing.Quad, material uint32) *gltf.Primitive {
	positions := make([][3]float32, 0, len(quads)*4)
	normals := make([][3]float32, 0, len(quads)*4)
	uvs := make([][2]float32, 0, len(quads)*4)
	indices := make([]uint32, 0, len(quads)*len(meshing.QuadIndices))

	for _, q := range quads {
		base := uint32(len(positions))
		for i := range q.Vertices {
			positions = append(positions, [3]float32(q.Vertices[i]))
			normals = append(normals, [3]float32(q.Normal))
			uvs = append(uvs, [2]float32(q.UV[i]))
		}
		for _, idx := range meshing.QuadIndices {
			indices = append(indices, base+idx)
		}
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	return &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION:   uint32(posAccessor),
			gltf.NORMAL:     uint32(normalAccessor),
			gltf.TEXCOORD_0: uint32(uvAccessor),
		},
		Indices:  gltf.Index(uint32(indicesAccessor)),
		Material: gltf.Index(material),
	}
}
