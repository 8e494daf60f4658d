package silhouette

import "github.com/Faultbox/brickatlas/pkg/brick"

// table maps direction and rotation to a shape. Unset cells are rectangles.
type table [len(brick.Directions)][len(brick.Rotations)]shape

// pair repeats a for rotations 0 and 90 and b for 180 and 270.
func pair(a, b shape) [len(brick.Rotations)]shape {
	return [len(brick.Rotations)]shape{a, a, b, b}
}

// sideways fills only the quarter-turn rotations.
func sideways(deg90, deg270 shape) [len(brick.Rotations)]shape {
	return [len(brick.Rotations)]shape{brick.Deg90: deg90, brick.Deg270: deg270}
}

var tables = [numFamilies]table{
	SideWedge: {
		brick.ZPositive: {shapeTriTL, shapeTriTR, shapeTriBR, shapeTriBL},
		brick.ZNegative: {shapeTriTR, shapeTriTL, shapeTriBL, shapeTriBR},
	},
	Wedge: {
		brick.XPositive: sideways(shapeTriBL, shapeTriTL),
		brick.XNegative: sideways(shapeTriTR, shapeTriBR),
		brick.YPositive: sideways(shapeTriTL, shapeTriTR),
		brick.YNegative: sideways(shapeTriBR, shapeTriBL),
	},
	Ramp: {
		brick.XPositive: sideways(shapeRampBLBot, shapeRampTLTop),
		brick.XNegative: sideways(shapeRampTRTop, shapeRampBRBot),
		brick.YPositive: sideways(shapeRampTLLeft, shapeRampTRRight),
		brick.YNegative: sideways(shapeRampBRRight, shapeRampBLLeft),
	},
	RampCorner: {
		brick.XPositive: pair(shapeRampBLBot, shapeRampTLTop),
		brick.XNegative: pair(shapeRampTRTop, shapeRampBRBot),
		brick.YPositive: pair(shapeRampTLLeft, shapeRampTRRight),
		brick.YNegative: pair(shapeRampBRRight, shapeRampBLLeft),
	},
	RampCornerInverted: {
		brick.XPositive: pair(shapeRampBRBot, shapeRampTRTop),
		brick.XNegative: pair(shapeRampTLTop, shapeRampBLBot),
		brick.YPositive: pair(shapeRampBLLeft, shapeRampBRRight),
		brick.YNegative: pair(shapeRampTRRight, shapeRampTLLeft),
	},
	RampCrest: {
		brick.XPositive: sideways(shapeCrestRight, shapeCrestRight),
		brick.XNegative: sideways(shapeCrestLeft, shapeCrestLeft),
		brick.YPositive: sideways(shapeCrestDown, shapeCrestDown),
		brick.YNegative: sideways(shapeCrestUp, shapeCrestUp),
	},
	RampCrestEnd: {
		brick.XPositive: {shapeTriTL, shapeCrestRight, shapeTriBL, shapeCrestRight},
		brick.XNegative: {shapeTriBR, shapeCrestLeft, shapeTriTR, shapeCrestLeft},
		brick.YPositive: {shapeTriTR, shapeCrestDown, shapeTriTL, shapeCrestDown},
		brick.YNegative: {shapeTriBL, shapeCrestUp, shapeTriBR, shapeCrestUp},
	},
	Corner: {
		brick.ZPositive: {shapeCornerTL, shapeCornerTR, shapeCornerBR, shapeCornerBL},
		brick.ZNegative: {shapeCornerTR, shapeCornerTL, shapeCornerBL, shapeCornerBR},
	},
	Round: {
		brick.ZPositive: {shapeCircle, shapeCircle, shapeCircle, shapeCircle},
		brick.ZNegative: {shapeCircle, shapeCircle, shapeCircle, shapeCircle},
	},
}

// lookup never fails: anything outside the tables is a rectangle.
func lookup(f Family, d brick.Direction, r brick.Rotation) shape {
	if f >= numFamilies || int(d) >= len(brick.Directions) || int(r) >= len(brick.Rotations) {
		return shapeRect
	}
	return tables[f][d][r]
}
