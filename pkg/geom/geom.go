// Package geom provides the 2D triangle primitives used to draw brick footprints.
//
// All coordinates live in the world plane seen from above. +Y points "down" on
// screen, so the Y1 edge of a Rect is its top edge.
package geom

import "math"

// Base grid units in world space.
const (
	StudWidth   = 10.0 // Width of one stud; ramp plateaus are one stud wide
	StudHeight  = 12.0 // Height of a full brick
	PlateHeight = 4.0  // Height of a plate
)

// OutlineThickness is the half-width T of every outline band.
const OutlineThickness float32 = 0.8

// CircleResolution is the default number of wedges used for round footprints.
const CircleResolution = 16

// Point is a 2D vertex.
type Point struct {
	X, Y float32
}

// Mesh is a flat triangle list. Every three points form one triangle.
type Mesh []Point

// Triangles returns the number of triangles in the mesh.
func (m Mesh) Triangles() int {
	return len(m) / 3
}

// Area returns the summed unsigned area of all triangles.
func (m Mesh) Area() float64 {
	var sum float64
	for i := 0; i+2 < len(m); i += 3 {
		sum += math.Abs(TriangleArea(m[i], m[i+1], m[i+2]))
	}
	return sum
}

// TriangleArea returns the signed area of triangle abc.
// Positive for clockwise winding on a Y-down screen.
func TriangleArea(a, b, c Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	return ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay)) / 2
}

// Concat joins meshes into a single fresh mesh.
func Concat(parts ...Mesh) Mesh {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Mesh, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Rect is an axis-aligned box in the world plane.
// X2 >= X1 and Y2 >= Y1; zero-area rects are legal.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// Width returns the horizontal span.
func (r Rect) Width() float32 { return r.X2 - r.X1 }

// Height returns the vertical span.
func (r Rect) Height() float32 { return r.Y2 - r.Y1 }

// Half returns the half-extents of the rect.
func (r Rect) Half() (float32, float32) {
	return r.Width() / 2, r.Height() / 2
}

// Center returns the midpoint of the rect.
func (r Rect) Center() Point {
	return Point{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// Degenerate reports whether the rect has no area.
func (r Rect) Degenerate() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Grow returns the rect expanded by d on every side.
func (r Rect) Grow(d float32) Rect {
	return Rect{r.X1 - d, r.Y1 - d, r.X2 + d, r.Y2 + d}
}

// TopHalf returns the upper half of the rect.
func (r Rect) TopHalf() Rect {
	_, hy := r.Half()
	return Rect{r.X1, r.Y1, r.X2, r.Y2 - hy}
}

// BottomHalf returns the lower half of the rect.
func (r Rect) BottomHalf() Rect {
	_, hy := r.Half()
	return Rect{r.X1, r.Y1 + hy, r.X2, r.Y2}
}

// LeftHalf returns the left half of the rect.
func (r Rect) LeftHalf() Rect {
	hx, _ := r.Half()
	return Rect{r.X1, r.Y1, r.X2 - hx, r.Y2}
}

// RightHalf returns the right half of the rect.
func (r Rect) RightHalf() Rect {
	hx, _ := r.Half()
	return Rect{r.X1 + hx, r.Y1, r.X2, r.Y2}
}

// Quarter returns the quarter of the rect touching the given corner.
func (r Rect) Quarter(c Corner) Rect {
	hx, hy := r.Half()
	switch c {
	case TopLeft:
		return Rect{r.X1, r.Y1, r.X2 - hx, r.Y2 - hy}
	case TopRight:
		return Rect{r.X1 + hx, r.Y1, r.X2, r.Y2 - hy}
	case BotLeft:
		return Rect{r.X1, r.Y1 + hy, r.X2 - hx, r.Y2}
	default:
		return Rect{r.X1 + hx, r.Y1 + hy, r.X2, r.Y2}
	}
}

// StripTop returns the band of the given thickness along the top edge.
func (r Rect) StripTop(d float32) Rect { return Rect{r.X1, r.Y1, r.X2, r.Y1 + d} }

// StripBottom returns the band of the given thickness along the bottom edge.
func (r Rect) StripBottom(d float32) Rect { return Rect{r.X1, r.Y2 - d, r.X2, r.Y2} }

// StripLeft returns the band of the given thickness along the left edge.
func (r Rect) StripLeft(d float32) Rect { return Rect{r.X1, r.Y1, r.X1 + d, r.Y2} }

// StripRight returns the band of the given thickness along the right edge.
func (r Rect) StripRight(d float32) Rect { return Rect{r.X2 - d, r.Y1, r.X2, r.Y2} }

// CutTop returns the rect with a band of the given thickness removed from the top.
func (r Rect) CutTop(d float32) Rect { return Rect{r.X1, r.Y1 + d, r.X2, r.Y2} }

// CutBottom returns the rect with a band of the given thickness removed from the bottom.
func (r Rect) CutBottom(d float32) Rect { return Rect{r.X1, r.Y1, r.X2, r.Y2 - d} }

// CutLeft returns the rect with a band of the given thickness removed from the left.
func (r Rect) CutLeft(d float32) Rect { return Rect{r.X1 + d, r.Y1, r.X2, r.Y2} }

// CutRight returns the rect with a band of the given thickness removed from the right.
func (r Rect) CutRight(d float32) Rect { return Rect{r.X1, r.Y1, r.X2 - d, r.Y2} }
