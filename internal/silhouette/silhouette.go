package silhouette

import (
	"github.com/Faultbox/brickatlas/pkg/brick"
	"github.com/Faultbox/brickatlas/pkg/geom"
)

// Fill returns the footprint triangles of a brick of the given family,
// direction and rotation covering r.
func Fill(f Family, d brick.Direction, rot brick.Rotation, r geom.Rect) geom.Mesh {
	return builders[lookup(f, d, rot)].fill(r)
}

// Outline returns the border triangles matching Fill.
func Outline(f Family, d brick.Direction, rot brick.Rotation, r geom.Rect) geom.Mesh {
	return builders[lookup(f, d, rot)].outline(r)
}

// Silhouette returns both the fill and the outline.
func Silhouette(f Family, d brick.Direction, rot brick.Rotation, r geom.Rect) (fill, outline geom.Mesh) {
	b := builders[lookup(f, d, rot)]
	return b.fill(r), b.outline(r)
}

// ShapeName describes the primitive chosen for the given orientation,
// e.g. "triangle BotLeft" or "rectangle".
func ShapeName(f Family, d brick.Direction, rot brick.Rotation) string {
	return lookup(f, d, rot).String()
}
