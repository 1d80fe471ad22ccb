package blockmodel

import "encoding/json"

// GUI light modes.
const (
	GUILightSide  = "side"
	GUILightFront = "front"
)

// document is one model file as written on disk.
type document struct {
	Parent           string             `json:"parent"`
	AmbientOcclusion *bool              `json:"ambientocclusion"`
	Textures         map[string]string  `json:"textures"`
	Elements         []Element          `json:"elements"`
	Display          map[string]Display `json:"display"`
	GUILight         string             `json:"gui_light"`
	TextureSize      *[2]int            `json:"texture_size"`
}

// ResolvedModel is a model with its whole ancestor chain merged in.
type ResolvedModel struct {
	Location ResourceLocation
	// Elements are ordered root ancestor first.
	Elements []Element
	// Textures maps a variable name to "#other" or a normalized "namespace:path".
	Textures         map[string]string
	Displays         map[string]Display
	TextureSize      [2]int
	GUILight         string
	AmbientOcclusion bool
	// Builtin is the builtin scheme path (e.g. "builtin/generated") if any node named one.
	Builtin string
}

func newResolvedModel(loc ResourceLocation) *ResolvedModel {
	return &ResolvedModel{
		Location:         loc,
		Textures:         make(map[string]string),
		Displays:         make(map[string]Display),
		TextureSize:      [2]int{16, 16},
		GUILight:         GUILightSide,
		AmbientOcclusion: true,
	}
}

type Element struct {
	Name     string
	From     [3]float32
	To       [3]float32
	Rotation *Rotation
	Shade    bool
	Faces    map[Direction]Face
}

type Rotation struct {
	Origin  [3]float32 `json:"origin"`
	Angle   float32    `json:"angle"`
	Axis    string     `json:"axis"`
	Rescale bool       `json:"rescale"`
}

type Face struct {
	Direction Direction
	// UV is (u0, v0, u1, v1) in the 0-16 grid, explicit or derived by AutoUV.
	UV [4]float32
	// Texture is "#var" before resolution and "namespace:path" after.
	Texture string
	// TexturePath is the file the resolved texture is read from.
	TexturePath string
	Rotation    int
	CullFace    string
	TintIndex   int
}

type Display struct {
	Rotation    [3]float32 `json:"rotation"`
	Translation [3]float32 `json:"translation"`
	Scale       [3]float32 `json:"scale"`
}

// DefaultDisplay is the identity placement.
func DefaultDisplay() Display {
	return Display{Scale: [3]float32{1, 1, 1}}
}

func (d *Display) UnmarshalJSON(data []byte) error {
	type raw Display
	r := raw(DefaultDisplay())
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*d = Display(r)
	return nil
}

type rawFace struct {
	UV        *[4]float32 `json:"uv"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface"`
	Rotation  int         `json:"rotation"`
	TintIndex *int        `json:"tintindex"`
}

type rawElement struct {
	Name     string                `json:"name"`
	Comment  string                `json:"__comment"`
	From     [3]float32            `json:"from"`
	To       [3]float32            `json:"to"`
	Rotation *Rotation             `json:"rotation"`
	Shade    *bool                 `json:"shade"`
	Faces    map[Direction]rawFace `json:"faces"`
}

// UnmarshalJSON fills in the implicit defaults: auto UVs, shade on, no tint.
func (e *Element) UnmarshalJSON(data []byte) error {
	var r rawElement
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	*e = Element{
		Name:     r.Name,
		From:     r.From,
		To:       r.To,
		Rotation: r.Rotation,
		Shade:    r.Shade == nil || *r.Shade,
		Faces:    make(map[Direction]Face, len(r.Faces)),
	}
	if e.Name == "" {
		e.Name = r.Comment
	}

	for dir, rf := range r.Faces {
		face := Face{
			Direction: dir,
			Texture:   rf.Texture,
			CullFace:  rf.CullFace,
			Rotation:  rf.Rotation,
			TintIndex: -1,
		}
		if rf.UV != nil {
			face.UV = *rf.UV
		} else {
			face.UV = AutoUV(dir, r.From, r.To)
		}
		if rf.TintIndex != nil {
			face.TintIndex = *rf.TintIndex
		}
		e.Faces[dir] = face
	}
	return nil
}
