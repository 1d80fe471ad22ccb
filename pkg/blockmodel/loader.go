package blockmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Resolver loads models and merges their ancestor chains. It holds no per-call
// state and is safe for concurrent use.
type Resolver struct {
	paths Paths
	log   *zap.Logger
}

func NewResolver(paths Paths, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{paths: paths, log: log}
}

// Paths returns the asset locations the resolver reads from.
func (r *Resolver) Paths() Paths {
	return r.paths
}

// Resolve loads the named model (namespace defaults to minecraft), merges every
// ancestor into it and resolves face texture variables to concrete textures.
// Faces whose variable chain dangles are dropped.
func (r *Resolver) Resolve(name string) (*ResolvedModel, error) {
	loc := ParseLocation(DefaultNamespace, name)

	model, err := r.resolve(loc, nil, newResolvedModel(loc))
	if err != nil {
		return nil, err
	}
	if err := r.resolveFaceTextures(model); err != nil {
		return nil, fmt.Errorf("resolve textures of %s: %w", loc, err)
	}
	return model, nil
}

// resolve applies loc and its ancestors to acc, ancestors first. visited holds
// the chain from the requested model down to loc's child.
func (r *Resolver) resolve(loc ResourceLocation, visited []ResourceLocation, acc *ResolvedModel) (*ResolvedModel, error) {
	for _, v := range visited {
		if v == loc {
			chain := make([]string, 0, len(visited)+1)
			for _, c := range visited {
				chain = append(chain, c.String())
			}
			return nil, &CyclicReferenceError{Kind: "parent", Chain: append(chain, loc.String())}
		}
	}
	visited = append(visited, loc)

	if loc.IsBuiltin() {
		acc.Builtin = loc.Path
		return acc, nil
	}

	path := r.paths.Model(loc)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ModelNotFoundError{Location: loc, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedModelError{Location: loc, Err: err}
	}
	r.log.Debug("loaded model", zap.Stringer("model", loc), zap.String("path", path), zap.String("parent", doc.Parent))

	if doc.Parent != "" {
		parent := ParseLocation(loc.Namespace, doc.Parent)
		acc, err = r.resolve(parent, visited, acc)
		if err != nil {
			return nil, err
		}
	}

	for key, ref := range doc.Textures {
		acc.Textures[key] = normaliseTextureRef(loc.Namespace, ref)
	}
	for _, el := range doc.Elements {
		for dir, face := range el.Faces {
			face.Texture = normaliseTextureRef(loc.Namespace, face.Texture)
			el.Faces[dir] = face
		}
		acc.Elements = append(acc.Elements, el)
	}
	for slot, display := range doc.Display {
		acc.Displays[slot] = display
	}
	if doc.GUILight != "" {
		acc.GUILight = doc.GUILight
	}
	if doc.TextureSize != nil {
		acc.TextureSize = *doc.TextureSize
	}
	if doc.AmbientOcclusion != nil {
		acc.AmbientOcclusion = *doc.AmbientOcclusion
	}
	return acc, nil
}

func (r *Resolver) resolveFaceTextures(m *ResolvedModel) error {
	for i := range m.Elements {
		faces := m.Elements[i].Faces
		for dir, face := range faces {
			texture, ok, err := m.ResolveTexture(face.Texture)
			if err != nil {
				return err
			}
			if !ok {
				r.log.Debug("dropping face with unresolved texture",
					zap.Stringer("model", m.Location), zap.Stringer("face", dir), zap.String("texture", face.Texture))
				delete(faces, dir)
				continue
			}
			face.Texture = texture
			face.TexturePath = r.paths.Texture(ParseLocation(DefaultNamespace, texture))
			faces[dir] = face
		}
	}
	return nil
}

// TexturePath resolves a texture variable of m and returns the file it is read from.
func (r *Resolver) TexturePath(m *ResolvedModel, key string) (string, bool, error) {
	texture, ok, err := m.ResolveTexture("#" + key)
	if err != nil || !ok {
		return "", ok, err
	}
	return r.paths.Texture(ParseLocation(DefaultNamespace, texture)), true, nil
}

// ResolveTexture follows "#var" indirections through m.Textures. It returns the
// concrete texture and true, or false when a variable in the chain is undefined
// or the chain ends in an empty reference.
func (m *ResolvedModel) ResolveTexture(ref string) (string, bool, error) {
	var chain []string
	for strings.HasPrefix(ref, "#") {
		key := ref[1:]
		for _, seen := range chain {
			if seen == key {
				return "", false, &CyclicReferenceError{Kind: "texture", Chain: append(chain, key)}
			}
		}
		chain = append(chain, key)

		next, ok := m.Textures[key]
		if !ok {
			return "", false, nil
		}
		ref = next
	}
	if ref == "" {
		return "", false, nil
	}
	return ref, true, nil
}

func normaliseTextureRef(namespace, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return ref
	}
	return NormaliseLocation(namespace, ref)
}
