package scene

import (
	"github.com/Faultbox/brickatlas/internal/silhouette"
	"github.com/Faultbox/brickatlas/pkg/brick"
	"github.com/Faultbox/brickatlas/pkg/geom"
)

// Placed is a brick whose Size holds resolved, oriented half-extents.
type Placed struct {
	brick.Brick
	Asset  string
	Family silhouette.Family
}

// Place resolves and orients the size of b exactly once.
func Place(asset string, b brick.Brick) Placed {
	b.Size = Orient(ResolveSize(asset, b), b.Rotation, b.Direction)
	b.Procedural = true
	return Placed{Brick: b, Asset: asset, Family: silhouette.FamilyOf(asset)}
}

// Top returns the height of the upper face.
func (p Placed) Top() int32 { return brick.Top(p.Position, p.Size) }

// Bottom returns the height of the lower face.
func (p Placed) Bottom() int32 { return brick.Bottom(p.Position, p.Size) }

// Key returns the footprint identity used for occlusion.
func (p Placed) Key() brick.ShapeKey { return brick.KeyOf(p.Brick, p.Size) }

// Footprint returns the world-plane rectangle covered by the brick.
func (p Placed) Footprint() geom.Rect {
	x, y := float32(p.Position.X), float32(p.Position.Y)
	sx, sy := float32(p.Size.X), float32(p.Size.Y)
	return geom.Rect{X1: x - sx, Y1: y - sy, X2: x + sx, Y2: y + sy}
}

// Silhouette returns the fill and outline triangles of the brick.
func (p Placed) Silhouette() (fill, outline geom.Mesh) {
	return silhouette.Silhouette(p.Family, p.Direction, p.Rotation, p.Footprint())
}
