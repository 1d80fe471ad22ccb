package meshing

import (
	"errors"
	"fmt"

	"mc-icons/pkg/blockmodel"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSlot is the display slot used for inventory icons.
const DefaultSlot = "gui"

// ErrMissingDisplay is matched by MissingDisplayError.
var ErrMissingDisplay = errors.New("missing display")

// MissingDisplayError reports a model with no placement for the requested slot.
type MissingDisplayError struct {
	Model blockmodel.ResourceLocation
	Slot  string
}

func (e *MissingDisplayError) Error() string {
	return fmt.Sprintf("model %s has no %q display", e.Model, e.Slot)
}

func (e *MissingDisplayError) Is(target error) bool { return target == ErrMissingDisplay }

// Mesh is everything the renderer needs for one model.
type Mesh struct {
	Model    blockmodel.ResourceLocation
	Quads    []Quad
	Display  mgl32.Mat4
	GUILight string

	// AmbientOcclusion is a renderer hint carried from the model.
	AmbientOcclusion bool
}

// BuildMesh generates the quads of m and the placement for the given display slot.
func BuildMesh(m *blockmodel.ResolvedModel, slot string) (*Mesh, error) {
	display, ok := m.Displays[slot]
	if !ok {
		return nil, &MissingDisplayError{Model: m.Location, Slot: slot}
	}
	return &Mesh{
		Model:    m.Location,
		Quads:    Generate(m),
		Display:  DisplayTransform(display),
		GUILight: m.GUILight,

		AmbientOcclusion: m.AmbientOcclusion,
	}, nil
}

// TexturePaths lists the distinct texture files used by the mesh, in first-use order.
func (m *Mesh) TexturePaths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, q := range m.Quads {
		if !seen[q.TexturePath] {
			seen[q.TexturePath] = true
			paths = append(paths, q.TexturePath)
		}
	}
	return paths
}
