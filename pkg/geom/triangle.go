package geom

import "fmt"

// Corner selects which right-angle corner of a rect a triangle keeps.
type Corner uint8

// Corner constants.
const (
	TopLeft Corner = iota
	TopRight
	BotLeft
	BotRight
)

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BotLeft:
		return "BotLeft"
	case BotRight:
		return "BotRight"
	default:
		return fmt.Sprintf("Corner(%d)", c)
	}
}

// Opposite returns the diagonally opposite corner.
func (c Corner) Opposite() Corner {
	switch c {
	case TopLeft:
		return BotRight
	case TopRight:
		return BotLeft
	case BotLeft:
		return TopRight
	default:
		return TopLeft
	}
}

// Triangle returns the right triangle covering half of r, with its right
// angle at corner c.
func Triangle(r Rect, c Corner) Mesh {
	switch c {
	case TopLeft:
		return Mesh{{r.X1, r.Y1}, {r.X1, r.Y2}, {r.X2, r.Y1}}
	case TopRight:
		return Mesh{{r.X2, r.Y1}, {r.X1, r.Y1}, {r.X2, r.Y2}}
	case BotRight:
		return Mesh{{r.X2, r.Y2}, {r.X2, r.Y1}, {r.X1, r.Y2}}
	default:
		return Mesh{{r.X1, r.Y2}, {r.X2, r.Y2}, {r.X1, r.Y1}}
	}
}

// Rectangle returns r as two triangles sharing the (X1,Y2)-(X2,Y1) diagonal.
func Rectangle(r Rect) Mesh {
	return Concat(Triangle(r, TopLeft), Triangle(r, BotRight))
}

// Top fills the upper half of r.
func Top(r Rect) Mesh { return Rectangle(r.TopHalf()) }

// Bottom fills the lower half of r.
func Bottom(r Rect) Mesh { return Rectangle(r.BottomHalf()) }

// Left fills the left half of r.
func Left(r Rect) Mesh { return Rectangle(r.LeftHalf()) }

// Right fills the right half of r.
func Right(r Rect) Mesh { return Rectangle(r.RightHalf()) }

// TopLeftQuarter fills the top-left quarter of r.
func TopLeftQuarter(r Rect) Mesh { return Rectangle(r.Quarter(TopLeft)) }

// TopRightQuarter fills the top-right quarter of r.
func TopRightQuarter(r Rect) Mesh { return Rectangle(r.Quarter(TopRight)) }

// BotLeftQuarter fills the bottom-left quarter of r.
func BotLeftQuarter(r Rect) Mesh { return Rectangle(r.Quarter(BotLeft)) }

// BotRightQuarter fills the bottom-right quarter of r.
func BotRightQuarter(r Rect) Mesh { return Rectangle(r.Quarter(BotRight)) }
