// Package texture loads block and item textures and stacks layered item images.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"

	"golang.org/x/image/draw"
)

// MissingColor marks the checker pixels of the placeholder texture.
var MissingColor = color.NRGBA{R: 248, G: 0, B: 248, A: 255}

// Placeholder returns the 2x2 "missing texture" image: magenta at (0,0) and (1,1),
// transparent elsewhere.
func Placeholder() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, MissingColor)
	img.SetNRGBA(1, 1, MissingColor)
	return img
}

// Load reads the texture at path. A missing file yields the placeholder. When a
// sibling .mcmeta exists the texture is an animation strip and only its first
// square frame is kept.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Placeholder(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	size := bounds.Size()
	if IsAnimated(path) {
		size.Y = size.X
	}

	rgba := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}

// IsAnimated reports whether the texture has animation metadata next to it.
func IsAnimated(path string) bool {
	_, err := os.Stat(path + ".mcmeta")
	return err == nil
}

// Stack paints layers in order onto a transparent canvas as large as the
// largest layer on each axis. Later layers are alpha-composited over earlier ones.
func Stack(layers []image.Image) *image.NRGBA {
	width, height := 1, 1
	for _, l := range layers {
		size := l.Bounds().Size()
		width = max(width, size.X)
		height = max(height, size.Y)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	for _, l := range layers {
		b := l.Bounds()
		draw.Draw(canvas, b.Sub(b.Min), l, b.Min, draw.Over)
	}
	return canvas
}
