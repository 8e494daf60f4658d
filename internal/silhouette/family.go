// Package silhouette maps a brick's asset family, direction and rotation to
// the triangles of its top-down footprint and outline.
package silhouette

import "fmt"

// Family groups brick assets that share a top-down silhouette.
type Family uint8

// Family constants. Plain is the fallback for every unknown asset.
const (
	Plain Family = iota
	SideWedge
	Wedge
	Ramp
	RampCorner
	RampCornerInverted
	RampCrest
	RampCrestEnd
	Corner
	Round
	numFamilies
)

// Families lists every family in order.
var Families = [...]Family{
	Plain, SideWedge, Wedge, Ramp, RampCorner, RampCornerInverted,
	RampCrest, RampCrestEnd, Corner, Round,
}

var familyNames = [numFamilies]string{
	Plain:              "Plain",
	SideWedge:          "SideWedge",
	Wedge:              "Wedge",
	Ramp:               "Ramp",
	RampCorner:         "RampCorner",
	RampCornerInverted: "RampCornerInverted",
	RampCrest:          "RampCrest",
	RampCrestEnd:       "RampCrestEnd",
	Corner:             "Corner",
	Round:              "Round",
}

// String returns the family name.
func (f Family) String() string {
	if f < numFamilies {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", f)
}

// assetFamilies maps asset names with a non-rectangular silhouette.
var assetFamilies = map[string]Family{
	"PB_DefaultSideWedge":          SideWedge,
	"PB_DefaultSideWedgeTile":      SideWedge,
	"PB_DefaultWedge":              Wedge,
	"PB_DefaultMicroWedge":         Wedge,
	"PB_DefaultRamp":               Ramp,
	"PB_DefaultRampInverted":       Ramp,
	"PB_DefaultRampCorner":         RampCorner,
	"PB_DefaultRampCornerInverted": RampCornerInverted,
	"PB_DefaultRampCrest":          RampCrest,
	"PB_DefaultRampCrestEnd":       RampCrestEnd,
	"B_2x2_Corner":                 Corner,
	"B_1x1F_Round":                 Round,
	"B_1x1_Round":                  Round,
	"B_2x2F_Round":                 Round,
	"B_2x2_Round":                  Round,
	"B_4x4_Round":                  Round,
}

// FamilyOf returns the silhouette family of an asset name.
// Unknown assets are Plain.
func FamilyOf(asset string) Family {
	if f, ok := assetFamilies[asset]; ok {
		return f
	}
	return Plain
}
