package scene

import (
	"testing"

	"github.com/Faultbox/brickatlas/internal/silhouette"
	"github.com/Faultbox/brickatlas/pkg/brick"
	"github.com/Faultbox/brickatlas/pkg/geom"
)

func TestResolveSize(t *testing.T) {
	procedural := brick.Brick{Size: brick.Size{X: 7, Y: 8, Z: 9}, Procedural: true}
	unset := brick.Brick{Size: brick.Size{X: 7, Y: 8, Z: 9}}

	tests := []struct {
		asset string
		b     brick.Brick
		want  brick.Size
	}{
		{"B_2x2_Corner", unset, brick.Size{X: 10, Y: 10, Z: 6}},
		{"B_2x_Cube_Side", unset, brick.Size{X: 10, Y: 10, Z: 12}},
		{"B_1x4_Brick_Side", unset, brick.Size{X: 20, Y: 5, Z: 6}},
		{"B_2x2f_Plate_Center_Inv", unset, brick.Size{X: 10, Y: 10, Z: 2}},
		{"B_1x1F_Round", unset, brick.Size{X: 5, Y: 5, Z: 2}},
		{"B_4x4_Round", procedural, brick.Size{X: 20, Y: 20, Z: 6}},
		{"PB_DefaultBrick", procedural, brick.Size{X: 7, Y: 8, Z: 9}},
		{"PB_DefaultBrick", unset, brick.Size{}},
	}
	for _, tt := range tests {
		if got := ResolveSize(tt.asset, tt.b); got != tt.want {
			t.Errorf("ResolveSize(%q): expected %+v, got %+v", tt.asset, tt.want, got)
		}
	}
}

func TestOrient(t *testing.T) {
	s := brick.Size{X: 1, Y: 2, Z: 3}
	tests := []struct {
		rot  brick.Rotation
		dir  brick.Direction
		want brick.Size
	}{
		{brick.Deg0, brick.ZPositive, brick.Size{X: 1, Y: 2, Z: 3}},
		{brick.Deg180, brick.ZNegative, brick.Size{X: 1, Y: 2, Z: 3}},
		{brick.Deg90, brick.ZPositive, brick.Size{X: 2, Y: 1, Z: 3}},
		{brick.Deg270, brick.ZPositive, brick.Size{X: 2, Y: 1, Z: 3}},
		{brick.Deg0, brick.XPositive, brick.Size{X: 3, Y: 2, Z: 1}},
		{brick.Deg90, brick.XNegative, brick.Size{X: 3, Y: 1, Z: 2}},
		{brick.Deg0, brick.YPositive, brick.Size{X: 2, Y: 3, Z: 1}},
		{brick.Deg90, brick.YNegative, brick.Size{X: 1, Y: 3, Z: 2}},
	}
	for _, tt := range tests {
		if got := Orient(s, tt.rot, tt.dir); got != tt.want {
			t.Errorf("Orient(%v, %v): expected %+v, got %+v", tt.rot, tt.dir, tt.want, got)
		}
	}
}

func TestPlace(t *testing.T) {
	b := brick.Brick{
		Position:  brick.Position{X: 100, Y: -50, Z: 30},
		Rotation:  brick.Deg90,
		Direction: brick.ZPositive,
	}
	p := Place("B_1x4_Brick_Side", b)

	if p.Family != silhouette.Plain {
		t.Errorf("expected Plain family, got %v", p.Family)
	}
	if p.Size != (brick.Size{X: 5, Y: 20, Z: 6}) {
		t.Errorf("expected oriented size 5x20x6, got %+v", p.Size)
	}
	if !p.Procedural {
		t.Error("expected placed size to be marked as set")
	}
	if p.Top() != 36 || p.Bottom() != 24 {
		t.Errorf("expected top 36 bottom 24, got %d %d", p.Top(), p.Bottom())
	}
	want := geom.Rect{X1: 95, Y1: -70, X2: 105, Y2: -30}
	if got := p.Footprint(); got != want {
		t.Errorf("expected footprint %+v, got %+v", want, got)
	}

	round := Place("B_2x2_Round", brick.Brick{Direction: brick.ZPositive})
	if round.Family != silhouette.Round {
		t.Errorf("expected Round family, got %v", round.Family)
	}
	fill, outline := round.Silhouette()
	if fill.Triangles() != geom.CircleResolution || len(outline) == 0 {
		t.Errorf("expected circle silhouette, got %d fill triangles", fill.Triangles())
	}
}
