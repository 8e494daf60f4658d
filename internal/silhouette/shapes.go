package silhouette

import (
	"github.com/Faultbox/brickatlas/pkg/geom"
)

// shape tags one composed primitive. The zero value is the plain rectangle,
// so any table cell left unset degrades to it.
type shape uint8

const (
	shapeRect shape = iota

	shapeTriTL
	shapeTriTR
	shapeTriBL
	shapeTriBR

	// Ramps are named <slope corner>_<plateau edge>.
	shapeRampBLBot
	shapeRampBRBot
	shapeRampTLTop
	shapeRampTRTop
	shapeRampTLLeft
	shapeRampBLLeft
	shapeRampTRRight
	shapeRampBRRight

	shapeCrestUp
	shapeCrestDown
	shapeCrestLeft
	shapeCrestRight

	shapeCornerTL
	shapeCornerTR
	shapeCornerBL
	shapeCornerBR

	shapeCircle

	numShapes
)

// builder produces the fill and outline meshes for one shape.
type builder struct {
	name    string
	fill    func(geom.Rect) geom.Mesh
	outline func(geom.Rect) geom.Mesh
}

var builders = [numShapes]builder{
	shapeRect: {"rectangle", geom.Rectangle, geom.OutlineRectangle},

	shapeTriTL: triangle(geom.TopLeft),
	shapeTriTR: triangle(geom.TopRight),
	shapeTriBL: triangle(geom.BotLeft),
	shapeTriBR: triangle(geom.BotRight),

	shapeRampBLBot:   ramp{geom.SideBottom, geom.BotLeft}.builder("ramp BL/bottom"),
	shapeRampBRBot:   ramp{geom.SideBottom, geom.BotRight}.builder("ramp BR/bottom"),
	shapeRampTLTop:   ramp{geom.SideTop, geom.TopLeft}.builder("ramp TL/top"),
	shapeRampTRTop:   ramp{geom.SideTop, geom.TopRight}.builder("ramp TR/top"),
	shapeRampTLLeft:  ramp{geom.SideLeft, geom.TopLeft}.builder("ramp TL/left"),
	shapeRampBLLeft:  ramp{geom.SideLeft, geom.BotLeft}.builder("ramp BL/left"),
	shapeRampTRRight: ramp{geom.SideRight, geom.TopRight}.builder("ramp TR/right"),
	shapeRampBRRight: ramp{geom.SideRight, geom.BotRight}.builder("ramp BR/right"),

	shapeCrestUp:    crest{true, geom.BotRight, geom.BotLeft}.builder("crest up"),
	shapeCrestDown:  crest{true, geom.TopRight, geom.TopLeft}.builder("crest down"),
	shapeCrestLeft:  crest{false, geom.BotRight, geom.TopRight}.builder("crest left"),
	shapeCrestRight: crest{false, geom.BotLeft, geom.TopLeft}.builder("crest right"),

	shapeCornerTL: {"corner TL", cornerFill(geom.TopLeft), cornerOutlineTL},
	shapeCornerTR: {"corner TR", cornerFill(geom.TopRight), cornerOutlineTR},
	shapeCornerBL: {"corner BL", cornerFill(geom.BotLeft), cornerOutlineBL},
	shapeCornerBR: {"corner BR", cornerFill(geom.BotRight), cornerOutlineBR},

	shapeCircle: {
		"circle",
		func(r geom.Rect) geom.Mesh { return geom.CircleFill(r, geom.CircleResolution) },
		func(r geom.Rect) geom.Mesh { return geom.CircleOutline(r, geom.CircleResolution) },
	},
}

func triangle(c geom.Corner) builder {
	return builder{
		name:    "triangle " + c.String(),
		fill:    func(r geom.Rect) geom.Mesh { return geom.Triangle(r, c) },
		outline: func(r geom.Rect) geom.Mesh { return geom.OutlineTriangle(r, c) },
	}
}

func (s shape) String() string {
	if s < numShapes {
		return builders[s].name
	}
	return builders[shapeRect].name
}
