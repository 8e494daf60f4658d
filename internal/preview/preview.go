// Package preview rasterizes built vertex buffers into images so a map can
// be inspected without a GPU. Drawing goes through gg's software renderer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/Faultbox/brickatlas/internal/colorspace"
	"github.com/Faultbox/brickatlas/internal/scene"
)

// View places the world plane on the image.
type View struct {
	Width, Height int
	Center        mgl32.Vec2 // world point drawn at the image center
	Scale         float32    // pixels per world unit
	Rotation      float32    // degrees
}

// Matrix maps world coordinates to pixel coordinates.
func (v View) Matrix() gg.Matrix {
	m := gg.Translate(float64(v.Width)/2, float64(v.Height)/2)
	m = m.Multiply(gg.Scale(float64(v.Scale), float64(v.Scale)))
	m = m.Multiply(gg.Rotate(float64(mgl32.DegToRad(v.Rotation))))
	return m.Multiply(gg.Translate(-float64(v.Center.X()), -float64(v.Center.Y())))
}

// Fit returns the scale that keeps b inside a w by h image, with margin
// pixels on every side, when center is drawn at the image center. Empty or
// flat bounds give 1.
func Fit(b scene.Bounds, center mgl32.Vec2, w, h int, margin float32) float32 {
	if b.IsEmpty() {
		return 1
	}
	hx := max(center.X()-float32(b.X1), float32(b.X2)-center.X())
	hy := max(center.Y()-float32(b.Y1), float32(b.Y2)-center.Y())
	if hx <= 0 || hy <= 0 {
		return 1
	}
	sx := (float32(w)/2 - margin) / hx
	sy := (float32(h)/2 - margin) / hy
	if s := min(sx, sy); s > 0 {
		return s
	}
	return 1
}

// Options controls one render.
type Options struct {
	View
	Background  color.RGBA
	Supersample int // render at this multiple and downscale; <= 1 disables
}

// Render draws every triangle in vertices, in order, and returns the image.
// vertices uses the scene.VertexSize layout; a trailing partial triangle is
// ignored.
func Render(vertices []float32, opts Options) (*image.RGBA, error) {
	w, h := max(opts.Width, 1), max(opts.Height, 1)
	k := max(opts.Supersample, 1)

	view := opts.View
	view.Width, view.Height = w*k, h*k
	view.Scale *= float32(k)

	dc := gg.NewContext(view.Width, view.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(opts.Background))
	dc.SetTransform(view.Matrix())

	if err := triangles(dc, vertices); err != nil {
		return nil, err
	}

	src := dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if k == 1 {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst, nil
}

func triangles(dc *gg.Context, vertices []float32) error {
	const stride = 3 * scene.VertexSize
	for i := 0; i+stride <= len(vertices); i += stride {
		v := vertices[i:]
		dc.SetColor(colorspace.ToRGBA(v[2], v[3], v[4], 1))
		dc.MoveTo(float64(v[0]), float64(v[1]))
		for j := 1; j < 3; j++ {
			p := v[j*scene.VertexSize:]
			dc.LineTo(float64(p[0]), float64(p[1]))
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("filling triangle %d: %w", i/stride, err)
		}
	}
	return nil
}

// WritePNG encodes img to path, creating parent directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
