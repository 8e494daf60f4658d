package preview

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"

	"github.com/Faultbox/brickatlas/internal/scene"
)

var (
	red = color.RGBA{R: 255, A: 255}
	bg  = color.RGBA{R: 10, G: 20, B: 30, A: 255}
)

// corner is one red triangle covering the top-left half of [-8, 8]^2.
var corner = []float32{
	-8, -8, 1, 0, 0,
	8, -8, 1, 0, 0,
	-8, 8, 1, 0, 0,
}

func render(t *testing.T, vertices []float32, opts Options) *image.RGBA {
	t.Helper()
	img, err := Render(vertices, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img
}

func TestViewMatrix(t *testing.T) {
	v := View{Width: 100, Height: 60, Center: mgl32.Vec2{7, -3}, Scale: 2}
	p := v.Matrix().TransformPoint(gg.Pt(7, -3))
	if math.Abs(p.X-50) > 1e-4 || math.Abs(p.Y-30) > 1e-4 {
		t.Errorf("expected center at (50, 30), got (%v, %v)", p.X, p.Y)
	}

	p = v.Matrix().TransformPoint(gg.Pt(8, -3))
	if math.Abs(p.X-52) > 1e-4 {
		t.Errorf("expected one unit to span 2 pixels, got x=%v", p.X)
	}

	v.Rotation = 90
	p = v.Matrix().TransformPoint(gg.Pt(8, -3))
	if math.Abs(p.X-50) > 1e-4 || math.Abs(p.Y-32) > 1e-4 {
		t.Errorf("expected rotated point at (50, 32), got (%v, %v)", p.X, p.Y)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name   string
		b      scene.Bounds
		center mgl32.Vec2
		margin float32
		want   float32
	}{
		{"wide", scene.Bounds{X1: 0, Y1: 0, X2: 200, Y2: 50}, mgl32.Vec2{100, 25}, 0, 0.5},
		{"tall", scene.Bounds{X1: -10, Y1: -100, X2: 10, Y2: 100}, mgl32.Vec2{}, 0, 0.5},
		{"margin", scene.Bounds{X1: 0, Y1: 0, X2: 80, Y2: 80}, mgl32.Vec2{40, 40}, 10, 1},
		{"off center", scene.Bounds{X1: 0, Y1: 0, X2: 100, Y2: 100}, mgl32.Vec2{25, 50}, 0, 50.0 / 75},
		{"empty", scene.EmptyBounds, mgl32.Vec2{}, 0, 1},
		{"flat", scene.Bounds{X1: 5, Y1: 0, X2: 5, Y2: 10}, mgl32.Vec2{5, 5}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.b, tt.center, 100, 100, tt.margin); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderTriangle(t *testing.T) {
	img := render(t, corner, Options{
		View:       View{Width: 20, Height: 20, Scale: 1},
		Background: bg,
	})

	if got := img.Bounds().Dx(); got != 20 {
		t.Fatalf("expected width 20, got %d", got)
	}
	if got := img.RGBAAt(5, 5); got != red {
		t.Errorf("expected red inside the triangle, got %v", got)
	}
	if got := img.RGBAAt(17, 17); got != bg {
		t.Errorf("expected background outside the triangle, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("expected background in the corner, got %v", got)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	verts := append([]float32(nil), corner...)
	verts = append(verts,
		-8, -8, 0, 0, 1,
		8, -8, 0, 0, 1,
		-8, 8, 0, 0, 1,
	)
	img := render(t, verts, Options{View: View{Width: 20, Height: 20, Scale: 1}, Background: bg})
	if got, want := img.RGBAAt(5, 5), (color.RGBA{B: 255, A: 255}); got != want {
		t.Errorf("expected the later triangle on top %v, got %v", want, got)
	}
}

func TestRenderRotated(t *testing.T) {
	img := render(t, corner, Options{
		View:       View{Width: 20, Height: 20, Scale: 1, Rotation: 180},
		Background: bg,
	})
	if got := img.RGBAAt(14, 14); got != red {
		t.Errorf("expected the triangle turned into the lower right, got %v", got)
	}
	if got := img.RGBAAt(5, 5); got != bg {
		t.Errorf("expected background in the upper left, got %v", got)
	}
}

func TestRenderClipsOffscreen(t *testing.T) {
	huge := []float32{
		-1000, -1000, 0, 1, 0,
		3000, -1000, 0, 1, 0,
		-1000, 3000, 0, 1, 0,
	}
	far := []float32{
		500, 500, 1, 1, 1,
		510, 500, 1, 1, 1,
		500, 510, 1, 1, 1,
	}
	img := render(t, append(huge, far...), Options{View: View{Width: 16, Height: 16, Scale: 1}, Background: bg})

	green := color.RGBA{G: 255, A: 255}
	for _, p := range [][2]int{{0, 0}, {15, 0}, {0, 15}, {15, 15}, {8, 8}} {
		if got := img.RGBAAt(p[0], p[1]); got != green {
			t.Errorf("pixel %v: expected green, got %v", p, got)
		}
	}
}

func TestRenderSupersample(t *testing.T) {
	img := render(t, corner, Options{
		View:        View{Width: 20, Height: 20, Scale: 1},
		Background:  bg,
		Supersample: 3,
	})
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("expected 20x20 output, got %v", b)
	}
	if got := img.RGBAAt(4, 4); got.R < 250 || got.G > 5 {
		t.Errorf("expected red inside the triangle, got %v", got)
	}
	if got := img.RGBAAt(18, 18); got.R > 15 {
		t.Errorf("expected background outside the triangle, got %v", got)
	}
}

func TestRenderIgnoresPartialTriangle(t *testing.T) {
	img := render(t, corner[:10], Options{View: View{Width: 8, Height: 8, Scale: 1}, Background: bg})
	if got := img.RGBAAt(4, 4); got != bg {
		t.Errorf("expected trailing partial triangle to be skipped, got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	img := render(t, corner, Options{View: View{Width: 20, Height: 20, Scale: 1}, Background: bg})
	path := filepath.Join(t.TempDir(), "out", "map.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open png: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if got := color.RGBAModel.Convert(decoded.At(5, 5)).(color.RGBA); got != red {
		t.Errorf("expected red after round trip, got %v", got)
	}
}
