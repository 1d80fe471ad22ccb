package blockmodel

import (
	"os"
	"path/filepath"
)

// Paths locates asset files inside an extracted asset tree laid out as
// <root>/<namespace>/<kind>/<path>.<ext>. A file present under Overrides
// takes precedence over the same relative file under Base.
type Paths struct {
	Base      string
	Overrides string
}

// Resolve computes the file path for an asset. Only the override candidate is
// probed; the base path is returned whether or not it exists.
func (p Paths) Resolve(namespace, kind, path, ext string) string {
	rel := filepath.Join(namespace, kind, filepath.FromSlash(path)) + "." + ext
	if p.Overrides != "" {
		override := filepath.Join(p.Overrides, rel)
		if _, err := os.Stat(override); err == nil {
			return override
		}
	}
	return filepath.Join(p.Base, rel)
}

// Model returns the JSON file path for a model location.
func (p Paths) Model(loc ResourceLocation) string {
	return p.Resolve(loc.Namespace, "models", loc.Path, "json")
}

// Texture returns the PNG file path for a texture location.
func (p Paths) Texture(loc ResourceLocation) string {
	return p.Resolve(loc.Namespace, "textures", loc.Path, "png")
}
