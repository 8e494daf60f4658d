package geom

import "math"

// Side is a bit set of rect edges.
type Side uint8

// Side bits.
const (
	SideTop Side = 1 << iota
	SideRight
	SideBottom
	SideLeft
)

// Has reports whether s contains every bit of other.
func (s Side) Has(other Side) bool {
	return s&other == other
}

// AngularOffsets returns how far an edge must move along each axis so that
// the slanted diagonal of r keeps a perceived thickness of OutlineThickness.
//
// With aspect = w/h and θ = atan2(1, aspect): dx = T/sin(θ), dy = dx/aspect.
func AngularOffsets(r Rect) (dx, dy float32) {
	if r.Degenerate() {
		return OutlineThickness, OutlineThickness
	}
	aspect := float64(r.Width()) / float64(r.Height())
	theta := math.Atan2(1, aspect)
	x := float64(OutlineThickness) / math.Sin(theta)
	return float32(x), float32(x / aspect)
}

// mitre returns the offsets of the mitre points at the two acute corners of a
// right triangle spanning r: mx along the horizontal leg, my along the
// vertical leg.
func mitre(r Rect) (mx, my float32) {
	if r.Degenerate() {
		return OutlineThickness, OutlineThickness
	}
	dx, dy := AngularOffsets(r)
	w, h := r.Width(), r.Height()
	return dx + OutlineThickness*w/h, dy + OutlineThickness*h/w
}

// bands holds the inner and outer edge coordinates of a triangle outline.
// Straight coordinates sit T from the edge; angular ones sit at the mitre.
type bands struct {
	olx, ilx, oty, ity, orx, irx, oby, iby         float32
	olex, ilex, otey, itey, orex, irex, obey, ibey float32
}

func newBands(r Rect) bands {
	t := OutlineThickness
	mx, my := mitre(r)
	return bands{
		olx: r.X1 - t, ilx: r.X1 + t,
		oty: r.Y1 - t, ity: r.Y1 + t,
		orx: r.X2 + t, irx: r.X2 - t,
		oby: r.Y2 + t, iby: r.Y2 - t,

		olex: r.X1 - mx, ilex: r.X1 + mx,
		otey: r.Y1 - my, itey: r.Y1 + my,
		orex: r.X2 + mx, irex: r.X2 - mx,
		obey: r.Y2 + my, ibey: r.Y2 - my,
	}
}

// OutlineLegX returns the band along the horizontal leg of the right
// triangle Triangle(r, c).
func OutlineLegX(r Rect, c Corner) Mesh {
	b := newBands(r)
	switch c {
	case TopLeft:
		return Mesh{
			{b.olx, b.oty}, {b.ilx, b.ity}, {b.irex, b.ity},
			{b.olx, b.oty}, {b.irex, b.ity}, {b.orex, b.oty},
		}
	case TopRight:
		return Mesh{
			{b.olex, b.oty}, {b.ilex, b.ity}, {b.irx, b.ity},
			{b.olex, b.oty}, {b.irx, b.ity}, {b.orx, b.oty},
		}
	case BotLeft:
		return Mesh{
			{b.olx, b.oby}, {b.ilx, b.iby}, {b.irex, b.iby},
			{b.irex, b.iby}, {b.olx, b.oby}, {b.orex, b.oby},
		}
	default:
		return Mesh{
			{b.olex, b.oby}, {b.ilex, b.iby}, {b.irx, b.iby},
			{b.olex, b.oby}, {b.irx, b.iby}, {b.orx, b.oby},
		}
	}
}

// OutlineLegY returns the band along the vertical leg of the right
// triangle Triangle(r, c).
func OutlineLegY(r Rect, c Corner) Mesh {
	b := newBands(r)
	switch c {
	case TopLeft:
		return Mesh{
			{b.olx, b.oty}, {b.olx, b.obey}, {b.ilx, b.ibey},
			{b.olx, b.oty}, {b.ilx, b.ibey}, {b.ilx, b.ity},
		}
	case TopRight:
		return Mesh{
			{b.orx, b.oty}, {b.irx, b.ity}, {b.irx, b.ibey},
			{b.orx, b.oty}, {b.irx, b.ibey}, {b.orx, b.obey},
		}
	case BotLeft:
		return Mesh{
			{b.olx, b.otey}, {b.ilx, b.itey}, {b.olx, b.oby},
			{b.ilx, b.itey}, {b.olx, b.oby}, {b.ilx, b.iby},
		}
	default:
		return Mesh{
			{b.orx, b.oby}, {b.irx, b.iby}, {b.irx, b.itey},
			{b.orx, b.oby}, {b.irx, b.itey}, {b.orx, b.otey},
		}
	}
}

// OutlineHypotenuse returns the band along the slanted edge of the right
// triangle Triangle(r, c).
func OutlineHypotenuse(r Rect, c Corner) Mesh {
	b := newBands(r)
	switch c {
	case TopLeft:
		return Mesh{
			{b.ilx, b.ibey}, {b.olx, b.obey}, {b.irex, b.ity},
			{b.irex, b.ity}, {b.olx, b.obey}, {b.orex, b.oty},
		}
	case TopRight:
		return Mesh{
			{b.olex, b.oty}, {b.orx, b.obey}, {b.irx, b.ibey},
			{b.olex, b.oty}, {b.irx, b.ibey}, {b.ilex, b.ity},
		}
	case BotLeft:
		return Mesh{
			{b.orex, b.oby}, {b.irex, b.iby}, {b.ilx, b.itey},
			{b.orex, b.oby}, {b.ilx, b.itey}, {b.olx, b.otey},
		}
	default:
		return Mesh{
			{b.olex, b.oby}, {b.ilex, b.iby}, {b.irx, b.itey},
			{b.olex, b.oby}, {b.irx, b.itey}, {b.orx, b.otey},
		}
	}
}

// OutlineTriangle returns a mitred border around Triangle(r, c).
// Degenerate rects get a plain rectangle border.
func OutlineTriangle(r Rect, c Corner) Mesh {
	if r.Degenerate() {
		return OutlineRectangle(r)
	}
	return Concat(OutlineLegX(r, c), OutlineLegY(r, c), OutlineHypotenuse(r, c))
}

// OutlineTop returns the border band along the top edge of r.
func OutlineTop(r Rect) Mesh {
	t := OutlineThickness
	return Rectangle(Rect{r.X1 - t, r.Y1 - t, r.X2 + t, r.Y1 + t})
}

// OutlineRight returns the border band along the right edge of r.
func OutlineRight(r Rect) Mesh {
	t := OutlineThickness
	return Rectangle(Rect{r.X2 - t, r.Y1 - t, r.X2 + t, r.Y2 + t})
}

// OutlineBottom returns the border band along the bottom edge of r.
func OutlineBottom(r Rect) Mesh {
	t := OutlineThickness
	return Rectangle(Rect{r.X1 - t, r.Y2 - t, r.X2 + t, r.Y2 + t})
}

// OutlineLeft returns the border band along the left edge of r.
func OutlineLeft(r Rect) Mesh {
	t := OutlineThickness
	return Rectangle(Rect{r.X1 - t, r.Y1 - t, r.X1 + t, r.Y2 + t})
}

// OutlineRectangle returns the four border bands of r.
func OutlineRectangle(r Rect) Mesh {
	return Concat(OutlineTop(r), OutlineRight(r), OutlineBottom(r), OutlineLeft(r))
}

// OutlineRectangleExcluding returns the border of r without the given sides.
// Each excluded edge is pulled in by T so the remaining bands end at the seam
// instead of overlapping the neighbouring piece.
func OutlineRectangleExcluding(r Rect, excluded Side) Mesh {
	t := OutlineThickness
	if excluded.Has(SideTop) {
		r.Y1 += t
	}
	if excluded.Has(SideRight) {
		r.X2 -= t
	}
	if excluded.Has(SideBottom) {
		r.Y2 -= t
	}
	if excluded.Has(SideLeft) {
		r.X1 += t
	}

	parts := make([]Mesh, 0, 4)
	if !excluded.Has(SideTop) {
		parts = append(parts, OutlineTop(r))
	}
	if !excluded.Has(SideRight) {
		parts = append(parts, OutlineRight(r))
	}
	if !excluded.Has(SideBottom) {
		parts = append(parts, OutlineBottom(r))
	}
	if !excluded.Has(SideLeft) {
		parts = append(parts, OutlineLeft(r))
	}
	return Concat(parts...)
}
