package silhouette

import (
	"github.com/Faultbox/brickatlas/pkg/geom"
)

// ramp is a flat plateau one stud wide along one edge, with a sloped right
// triangle covering the rest of the footprint.
type ramp struct {
	edge   geom.Side   // edge the plateau sits on
	corner geom.Corner // right angle of the slope triangle
}

// plateauWidth clamps the plateau to the span available.
func plateauWidth(span float32) float32 {
	return max(min(geom.StudWidth, span), 0)
}

func (rp ramp) split(r geom.Rect) (flat, slope geom.Rect) {
	switch rp.edge {
	case geom.SideTop:
		p := plateauWidth(r.Height())
		return r.StripTop(p), r.CutTop(p)
	case geom.SideBottom:
		p := plateauWidth(r.Height())
		return r.StripBottom(p), r.CutBottom(p)
	case geom.SideLeft:
		p := plateauWidth(r.Width())
		return r.StripLeft(p), r.CutLeft(p)
	default:
		p := plateauWidth(r.Width())
		return r.StripRight(p), r.CutRight(p)
	}
}

// seam returns the plateau side that touches the slope.
func (rp ramp) seam() geom.Side {
	switch rp.edge {
	case geom.SideTop:
		return geom.SideBottom
	case geom.SideBottom:
		return geom.SideTop
	case geom.SideLeft:
		return geom.SideRight
	default:
		return geom.SideLeft
	}
}

func (rp ramp) horizontal() bool {
	return rp.edge == geom.SideTop || rp.edge == geom.SideBottom
}

func (rp ramp) fill(r geom.Rect) geom.Mesh {
	flat, slope := rp.split(r)
	return geom.Concat(geom.Rectangle(flat), geom.Triangle(slope, rp.corner))
}

func (rp ramp) outline(r geom.Rect) geom.Mesh {
	flat, slope := rp.split(r)
	var leg geom.Mesh
	if rp.horizontal() {
		leg = geom.OutlineLegY(slope, rp.corner)
	} else {
		leg = geom.OutlineLegX(slope, rp.corner)
	}
	return geom.Concat(
		geom.OutlineRectangleExcluding(flat, rp.seam()),
		leg,
		geom.OutlineHypotenuse(slope, rp.corner),
		rp.joint(slope),
	)
}

// joint closes the gap between the hypotenuse band and the plateau border at
// the acute corner of the slope that sits on the seam.
func (rp ramp) joint(s geom.Rect) geom.Mesh {
	dx, dy := geom.AngularOffsets(s)
	left := rp.corner == geom.TopLeft || rp.corner == geom.BotLeft
	top := rp.corner == geom.TopLeft || rp.corner == geom.TopRight

	if rp.horizontal() {
		y, into := s.Y2, dy
		if rp.edge == geom.SideTop {
			y, into = s.Y1, -dy
		}
		x, along := s.X1, dx
		if left {
			x, along = s.X2, -dx
		}
		return geom.Mesh{{X: x, Y: y}, {X: x + along, Y: y}, {X: x, Y: y + into}}
	}

	x, into := s.X2, dx
	if rp.edge == geom.SideLeft {
		x, into = s.X1, -dx
	}
	y, along := s.Y1, dy
	if top {
		y, along = s.Y2, -dy
	}
	return geom.Mesh{{X: x, Y: y}, {X: x, Y: y + along}, {X: x + into, Y: y}}
}

func (rp ramp) builder(name string) builder {
	return builder{name: name, fill: rp.fill, outline: rp.outline}
}

// crest is two mirrored slope triangles meeting along a ridge.
type crest struct {
	sideBySide bool        // halves split left/right rather than top/bottom
	first      geom.Corner // right angle in the left or top half
	second     geom.Corner // right angle in the right or bottom half
}

func (c crest) halves(r geom.Rect) (geom.Rect, geom.Rect) {
	if c.sideBySide {
		return r.LeftHalf(), r.RightHalf()
	}
	return r.TopHalf(), r.BottomHalf()
}

func (c crest) fill(r geom.Rect) geom.Mesh {
	a, b := c.halves(r)
	return geom.Concat(geom.Triangle(a, c.first), geom.Triangle(b, c.second))
}

// outline skips the legs on the ridge between the halves.
func (c crest) outline(r geom.Rect) geom.Mesh {
	a, b := c.halves(r)
	leg := geom.OutlineLegY
	if c.sideBySide {
		leg = geom.OutlineLegX
	}
	return geom.Concat(
		leg(a, c.first), geom.OutlineHypotenuse(a, c.first),
		leg(b, c.second), geom.OutlineHypotenuse(b, c.second),
	)
}

func (c crest) builder(name string) builder {
	return builder{name: name, fill: c.fill, outline: c.outline}
}

// cornerFill returns an L-shaped footprint: the full half along the edge
// holding c plus the quarter that turns the L.
func cornerFill(c geom.Corner) func(geom.Rect) geom.Mesh {
	return func(r geom.Rect) geom.Mesh {
		switch c {
		case geom.TopLeft:
			return geom.Concat(geom.Top(r), geom.BotLeftQuarter(r))
		case geom.TopRight:
			return geom.Concat(geom.Top(r), geom.BotRightQuarter(r))
		case geom.BotRight:
			return geom.Concat(geom.Bottom(r), geom.TopRightQuarter(r))
		default:
			return geom.Concat(geom.Bottom(r), geom.TopLeftQuarter(r))
		}
	}
}

func cornerOutlineTL(r geom.Rect) geom.Mesh {
	sx, sy := r.Half()
	t := geom.OutlineThickness
	return geom.Concat(
		geom.OutlineTop(r), geom.OutlineLeft(r),
		geom.OutlineBottom(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2 - sx, Y2: r.Y2}),
		geom.OutlineRight(geom.Rect{X1: r.X1, Y1: r.Y1 + sy, X2: r.X2 - sx, Y2: r.Y2}),
		geom.OutlineBottom(geom.Rect{X1: r.X1 + sx, Y1: r.Y1, X2: r.X2, Y2: r.Y2 - sy}),
		geom.OutlineRight(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2 - sy}),
		geom.Rectangle(geom.Rect{X1: r.X1 + sx - t, Y1: r.Y1 + sy - t, X2: r.X1 + sx, Y2: r.Y1 + sy}),
	)
}

func cornerOutlineTR(r geom.Rect) geom.Mesh {
	sx, sy := r.Half()
	t := geom.OutlineThickness
	return geom.Concat(
		geom.OutlineTop(r), geom.OutlineRight(r),
		geom.OutlineLeft(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2 - sy}),
		geom.OutlineBottom(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2 - sx, Y2: r.Y2 - sy}),
		geom.OutlineLeft(geom.Rect{X1: r.X1 + sx, Y1: r.Y1 + sy, X2: r.X2, Y2: r.Y2}),
		geom.OutlineBottom(geom.Rect{X1: r.X1 + sx, Y1: r.Y1, X2: r.X2, Y2: r.Y2}),
		geom.Rectangle(geom.Rect{X1: r.X1 + sx, Y1: r.Y1 + sy - t, X2: r.X1 + sx + t, Y2: r.Y1 + sy}),
	)
}

func cornerOutlineBR(r geom.Rect) geom.Mesh {
	sx, sy := r.Half()
	t := geom.OutlineThickness
	return geom.Concat(
		geom.OutlineBottom(r), geom.OutlineRight(r),
		geom.OutlineTop(geom.Rect{X1: r.X1 + sx, Y1: r.Y1, X2: r.X2, Y2: r.Y2}),
		geom.OutlineLeft(geom.Rect{X1: r.X1 + sx, Y1: r.Y1, X2: r.X2, Y2: r.Y2 - sy}),
		geom.OutlineTop(geom.Rect{X1: r.X1, Y1: r.Y1 + sy, X2: r.X2 - sx, Y2: r.Y2}),
		geom.OutlineLeft(geom.Rect{X1: r.X1, Y1: r.Y1 + sy, X2: r.X2, Y2: r.Y2}),
		geom.Rectangle(geom.Rect{X1: r.X1 + sx, Y1: r.Y1 + sy, X2: r.X1 + sx + t, Y2: r.Y1 + sy + t}),
	)
}

func cornerOutlineBL(r geom.Rect) geom.Mesh {
	sx, sy := r.Half()
	t := geom.OutlineThickness
	return geom.Concat(
		geom.OutlineBottom(r), geom.OutlineLeft(r),
		geom.OutlineTop(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2 - sx, Y2: r.Y2}),
		geom.OutlineRight(geom.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2 - sx, Y2: r.Y2 - sy}),
		geom.OutlineTop(geom.Rect{X1: r.X1 + sx, Y1: r.Y1 + sy, X2: r.X2, Y2: r.Y2}),
		geom.OutlineRight(geom.Rect{X1: r.X1, Y1: r.Y1 + sy, X2: r.X2, Y2: r.Y2}),
		geom.Rectangle(geom.Rect{X1: r.X1 + sx - t, Y1: r.Y1 + sy, X2: r.X1 + sx, Y2: r.Y1 + sy + t}),
	)
}
