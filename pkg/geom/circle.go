package geom

import "math"

// ring returns n points on the ellipse inscribed in r, grown by d.
func ring(r Rect, n int, d float32) []Point {
	c := r.Center()
	rx, ry := r.Half()
	rx = max(rx+d, 0)
	ry = max(ry+d, 0)

	pts := make([]Point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: c.X + rx*float32(math.Cos(a)),
			Y: c.Y + ry*float32(math.Sin(a)),
		}
	}
	return pts
}

// CircleFill approximates the circle inscribed in r with n wedges.
// Fewer than 3 wedges is raised to 3.
func CircleFill(r Rect, n int) Mesh {
	n = max(n, 3)
	c := r.Center()
	pts := ring(r, n, 0)

	out := make(Mesh, 0, 3*n)
	for i := range n {
		out = append(out, c, pts[i], pts[(i+1)%n])
	}
	return out
}

// CircleOutline returns an annulus of width 2T centered on the circle
// inscribed in r. The inner radius is clamped at zero.
func CircleOutline(r Rect, n int) Mesh {
	n = max(n, 3)
	outer := ring(r, n, OutlineThickness)
	inner := ring(r, n, -OutlineThickness)

	out := make(Mesh, 0, 6*n)
	for i := range n {
		j := (i + 1) % n
		out = append(out,
			outer[i], outer[j], inner[j],
			outer[i], inner[j], inner[i],
		)
	}
	return out
}
