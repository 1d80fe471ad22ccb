// Package itemgen turns one model name into renderable output: a mesh for
// element models, or a stacked image for models built on builtin/generated.
package itemgen

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"mc-icons/internal/meshing"
	"mc-icons/internal/texture"
	"mc-icons/pkg/blockmodel"

	"go.uber.org/zap"
)

// GeneratedScheme is the only builtin scheme with a generator.
const GeneratedScheme = "builtin/generated"

// ErrUnsupportedBuiltin is matched by UnsupportedBuiltinSchemeError.
var ErrUnsupportedBuiltin = errors.New("unsupported builtin scheme")

type UnsupportedBuiltinSchemeError struct {
	Model  blockmodel.ResourceLocation
	Scheme string
}

func (e *UnsupportedBuiltinSchemeError) Error() string {
	return fmt.Sprintf("model %s inherits from unsupported %s", e.Model, e.Scheme)
}

func (e *UnsupportedBuiltinSchemeError) Is(target error) bool { return target == ErrUnsupportedBuiltin }

// Result holds exactly one of Mesh or Image.
type Result struct {
	Model blockmodel.ResourceLocation
	Mesh  *meshing.Mesh
	Image *image.NRGBA
}

type Generator struct {
	resolver *blockmodel.Resolver
	slot     string
	log      *zap.Logger
}

// New returns a generator placing meshes with the given display slot
// (meshing.DefaultSlot when empty).
func New(resolver *blockmodel.Resolver, slot string, log *zap.Logger) *Generator {
	if slot == "" {
		slot = meshing.DefaultSlot
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{resolver: resolver, slot: slot, log: log}
}

// Generate resolves the named model and builds its output.
func (g *Generator) Generate(name string) (*Result, error) {
	model, err := g.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	switch model.Builtin {
	case "":
		mesh, err := meshing.BuildMesh(model, g.slot)
		if err != nil {
			return nil, err
		}
		g.log.Debug("built mesh", zap.Stringer("model", model.Location), zap.Int("quads", len(mesh.Quads)))
		return &Result{Model: model.Location, Mesh: mesh}, nil
	case GeneratedScheme:
		img, err := g.layeredImage(model)
		if err != nil {
			return nil, err
		}
		return &Result{Model: model.Location, Image: img}, nil
	default:
		return nil, &UnsupportedBuiltinSchemeError{Model: model.Location, Scheme: model.Builtin}
	}
}

// LayerKeys returns the texture variables named layer0, layer1, ... in sorted order.
func LayerKeys(m *blockmodel.ResolvedModel) []string {
	var keys []string
	for k := range m.Textures {
		if strings.HasPrefix(k, "layer") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (g *Generator) layeredImage(m *blockmodel.ResolvedModel) (*image.NRGBA, error) {
	var layers []image.Image
	for _, key := range LayerKeys(m) {
		path, ok, err := g.resolver.TexturePath(m, key)
		if err != nil {
			return nil, fmt.Errorf("resolve %s of %s: %w", key, m.Location, err)
		}
		if !ok {
			g.log.Debug("skipping unresolved layer", zap.Stringer("model", m.Location), zap.String("layer", key))
			continue
		}
		tex, err := texture.Load(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, tex)
	}
	return texture.Stack(layers), nil
}
