package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an integer world-plane box.
type Bounds struct {
	X1, Y1, X2, Y2 int32
}

// EmptyBounds is the bounds of a scene with nothing in it. Extending it by
// any box yields that box.
var EmptyBounds = Bounds{math.MaxInt32, math.MaxInt32, math.MinInt32, math.MinInt32}

// IsEmpty reports whether the bounds contain no box.
func (b Bounds) IsEmpty() bool {
	return b.X1 > b.X2 || b.Y1 > b.Y2
}

// Extend grows b to cover the given box.
func (b Bounds) Extend(x1, y1, x2, y2 int32) Bounds {
	return Bounds{min(b.X1, x1), min(b.Y1, y1), max(b.X2, x2), max(b.Y2, y2)}
}

// Width returns the horizontal span, zero when empty.
func (b Bounds) Width() int32 {
	if b.IsEmpty() {
		return 0
	}
	return b.X2 - b.X1
}

// Height returns the vertical span, zero when empty.
func (b Bounds) Height() int32 {
	if b.IsEmpty() {
		return 0
	}
	return b.Y2 - b.Y1
}

// Relative returns the bounds shifted so that c is the origin. The centroid
// is truncated to whole units first.
func (b Bounds) Relative(c mgl64.Vec2) Bounds {
	if b.IsEmpty() {
		return b
	}
	cx, cy := int32(c.X()), int32(c.Y())
	return Bounds{b.X1 - cx, b.Y1 - cy, b.X2 - cx, b.Y2 - cy}
}

func (b Bounds) String() string {
	if b.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("(%d, %d)-(%d, %d)", b.X1, b.Y1, b.X2, b.Y2)
}

// Extent accumulates the area-weighted centroid and bounds of placed bricks.
// The zero value is not ready for use; call NewExtent.
type Extent struct {
	area   float64
	sum    mgl64.Vec2
	bounds Bounds
	count  int
}

// NewExtent returns an empty accumulator.
func NewExtent() Extent {
	return Extent{bounds: EmptyBounds}
}

// Add folds one brick into the totals. Its weight is its footprint area.
func (e *Extent) Add(p Placed) {
	x, y := p.Position.X, p.Position.Y
	sx, sy := int32(p.Size.X), int32(p.Size.Y)

	a := 4 * float64(p.Size.X) * float64(p.Size.Y)
	e.area += a
	e.sum = e.sum.Add(mgl64.Vec2{float64(x), float64(y)}.Mul(a))
	e.bounds = e.bounds.Extend(x-sx, y-sy, x+sx, y+sy)
	e.count++
}

// Count returns how many bricks were added.
func (e *Extent) Count() int { return e.count }

// Centroid returns the area-weighted mean position. ok is false when the
// total area is zero, in which case the origin is returned.
func (e *Extent) Centroid() (c mgl64.Vec2, ok bool) {
	if e.area == 0 {
		return mgl64.Vec2{}, false
	}
	return e.sum.Mul(1 / e.area), true
}

// Bounds returns the running box over all brick footprints.
func (e *Extent) Bounds() Bounds { return e.bounds }
