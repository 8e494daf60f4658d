// Package brick defines the brick records consumed by the map builder.
package brick

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Rotation is a quarter turn about the vertical axis.
type Rotation uint8

// Rotation constants.
const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

// Rotations lists every rotation in order.
var Rotations = [...]Rotation{Deg0, Deg90, Deg180, Deg270}

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case Deg0:
		return "0"
	case Deg90:
		return "90"
	case Deg180:
		return "180"
	case Deg270:
		return "270"
	default:
		return fmt.Sprintf("Rotation(%d)", r)
	}
}

// Quarter reports whether the rotation swaps the plane axes.
func (r Rotation) Quarter() bool {
	return r == Deg90 || r == Deg270
}

// RotationFromDegrees converts 0, 90, 180 or 270 to a Rotation.
func RotationFromDegrees(deg int) (Rotation, bool) {
	switch ((deg % 360) + 360) % 360 {
	case 0:
		return Deg0, true
	case 90:
		return Deg90, true
	case 180:
		return Deg180, true
	case 270:
		return Deg270, true
	default:
		return Deg0, false
	}
}

// Direction is the world axis a brick's "up" face points along.
type Direction uint8

// Direction constants.
const (
	XPositive Direction = iota
	XNegative
	YPositive
	YNegative
	ZPositive
	ZNegative
)

// Directions lists every direction in order.
var Directions = [...]Direction{XPositive, XNegative, YPositive, YNegative, ZPositive, ZNegative}

// String returns the short axis name, e.g. "Z+".
func (d Direction) String() string {
	switch d {
	case XPositive:
		return "X+"
	case XNegative:
		return "X-"
	case YPositive:
		return "Y+"
	case YNegative:
		return "Y-"
	case ZPositive:
		return "Z+"
	case ZNegative:
		return "Z-"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Vertical reports whether the brick points along the Z axis.
func (d Direction) Vertical() bool {
	return d == ZPositive || d == ZNegative
}

// ParseDirection converts a short axis name ("X+", "z-", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, d := range Directions {
		if s == d.String() {
			return d, true
		}
	}
	return ZPositive, false
}

// Position is a brick center in world units. Z is height.
type Position struct {
	X, Y, Z int32
}

// Size holds half-extents along each axis.
type Size struct {
	X, Y, Z uint32
}

// Color is either an index into the save palette or an inline RGBA value.
type Color struct {
	Index  uint32
	RGBA   color.RGBA
	Inline bool
}

// PaletteColor returns a color referring to palette entry i.
func PaletteColor(i uint32) Color {
	return Color{Index: i}
}

// InlineColor returns a color carrying its own RGBA value.
func InlineColor(c color.RGBA) Color {
	return Color{RGBA: c, Inline: true}
}

// Brick is one placed brick as read from a save.
type Brick struct {
	AssetIndex uint32
	Position   Position
	Size       Size
	Procedural bool // Size was provided by the save
	Rotation   Rotation
	Direction  Direction
	Color      Color
	Visible    bool
}

// Top returns the height of the upper face given resolved half-extents,
// saturated to the int32 range.
func Top(p Position, s Size) int32 {
	return clamp32(int64(p.Z) + int64(s.Z))
}

// Bottom returns the height of the lower face given resolved half-extents,
// saturated to the int32 range.
func Bottom(p Position, s Size) int32 {
	return clamp32(int64(p.Z) - int64(s.Z))
}

func clamp32(v int64) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

// Save is the decoded content the map builder consumes.
type Save struct {
	Description string
	BrickCount  int // Count declared by the save header
	Bricks      []Brick
	Palette     []color.RGBA
	Assets      []string // Asset name table indexed by Brick.AssetIndex
}

// ShapeKey identifies a brick footprint: two bricks with equal keys cover
// exactly the same area of the map in the same orientation.
type ShapeKey struct {
	Asset     uint32
	SizeX     uint32
	SizeY     uint32
	X, Y      int32
	Rotation  Rotation
	Direction Direction
}

// KeyOf builds the shape key of a brick with resolved half-extents.
func KeyOf(b Brick, s Size) ShapeKey {
	return ShapeKey{
		Asset:     b.AssetIndex,
		SizeX:     s.X,
		SizeY:     s.Y,
		X:         b.Position.X,
		Y:         b.Position.Y,
		Rotation:  b.Rotation,
		Direction: b.Direction,
	}
}
