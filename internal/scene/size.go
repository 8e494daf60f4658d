package scene

import (
	"github.com/Faultbox/brickatlas/pkg/brick"
	"github.com/Faultbox/brickatlas/pkg/geom"
)

const (
	stud  = uint32(geom.StudWidth)
	tall  = uint32(geom.StudHeight)
	plate = uint32(geom.PlateHeight)
)

// catalog holds half-extents of assets whose saves carry no size.
var catalog = map[string]brick.Size{
	"B_2x2_Corner":            {X: stud, Y: stud, Z: tall / 2},
	"B_2x_Cube_Side":          {X: stud, Y: stud, Z: tall},
	"B_1x1_Brick_Side":        {X: stud / 2, Y: stud / 2, Z: tall / 2},
	"B_1x4_Brick_Side":        {X: stud * 2, Y: stud / 2, Z: tall / 2},
	"B_1x2f_Plate_Center":     {X: stud, Y: stud / 2, Z: tall / 2},
	"B_2x2f_Plate_Center":     {X: stud, Y: stud, Z: plate / 2},
	"B_1x2f_Plate_Center_Inv": {X: stud, Y: stud / 2, Z: tall / 2},
	"B_2x2f_Plate_Center_Inv": {X: stud, Y: stud, Z: plate / 2},
	"B_1x1F_Round":            {X: stud / 2, Y: stud / 2, Z: plate / 2},
	"B_1x1_Round":             {X: stud / 2, Y: stud / 2, Z: tall / 2},
	"B_2x2F_Round":            {X: stud, Y: stud, Z: plate / 2},
	"B_2x2_Round":             {X: stud, Y: stud, Z: tall / 2},
	"B_4x4_Round":             {X: stud * 2, Y: stud * 2, Z: tall / 2},
}

// ResolveSize returns the unoriented half-extents of b. Catalog assets use
// their fixed size; anything else keeps the size stored in the save, or zero
// if the save had none.
func ResolveSize(asset string, b brick.Brick) brick.Size {
	if s, ok := catalog[asset]; ok {
		return s
	}
	if !b.Procedural {
		return brick.Size{}
	}
	return b.Size
}

// Orient permutes half-extents into world axes: quarter turns swap the plane
// axes, then sideways directions move the brick's height into the plane.
func Orient(s brick.Size, rot brick.Rotation, dir brick.Direction) brick.Size {
	if rot.Quarter() {
		s.X, s.Y = s.Y, s.X
	}
	switch dir {
	case brick.XPositive, brick.XNegative:
		s.X, s.Z = s.Z, s.X
	case brick.YPositive, brick.YNegative:
		s.X, s.Y = s.Y, s.X
		s.Y, s.Z = s.Z, s.Y
	}
	return s
}
