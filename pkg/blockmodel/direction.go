package blockmodel

import (
	"fmt"
	"strings"
)

// Direction is one of the six axis-aligned face directions of an element.
type Direction int

const (
	Down Direction = iota
	Up
	North
	South
	West
	East
)

// Directions lists every direction in canonical order.
var Directions = [...]Direction{Down, Up, North, South, West, East}

var directionNames = [...]string{"down", "up", "north", "south", "west", "east"}

// autoUVIndex selects (u0, v0, u1, v1) from the element extents [x0 y0 z0 x1 y1 z1].
var autoUVIndex = [...][4]int{
	Down:  {0, 2, 3, 5},
	Up:    {0, 2, 3, 5},
	North: {0, 1, 3, 4},
	South: {0, 1, 3, 4},
	West:  {5, 1, 2, 4},
	East:  {5, 1, 2, 4},
}

func (d Direction) String() string {
	if d < Down || d > East {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses a face key case-insensitively.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AutoUV derives face UVs in the 0-16 grid from the element box.
func AutoUV(d Direction, from, to [3]float32) [4]float32 {
	shape := [6]float32{from[0], from[1], from[2], to[0], to[1], to[2]}
	idx := autoUVIndex[d]
	return [4]float32{shape[idx[0]], shape[idx[1]], shape[idx[2]], shape[idx[3]]}
}
