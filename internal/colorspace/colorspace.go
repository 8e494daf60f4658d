// Package colorspace converts 8-bit save colors into the normalized floats
// stored in vertex buffers.
package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Black is the outline color.
var Black = Color{0, 0, 0, 1}

// FromRGBA creates a color from 8-bit RGBA values without any transfer curve.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// RGB returns the color channels without alpha.
func (c Color) RGB() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ToRGBA quantizes normalized channels back to 8 bits, clamping to [0, 1].
func ToRGBA(r, g, b, a float32) color.RGBA {
	return color.RGBA{R: quantize(r), G: quantize(g), B: quantize(b), A: quantize(a)}
}

func quantize(v float32) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}

// Converter maps a save color to buffer RGB.
type Converter interface {
	Convert(c color.RGBA) [3]float32
}

// Linear divides each channel by 255 and applies no curve.
type Linear struct{}

// Convert implements Converter.
func (Linear) Convert(c color.RGBA) [3]float32 {
	return FromRGBA(c).RGB()
}

// SRGB treats save colors as linear light and encodes them with the sRGB
// transfer function, which is what a display expects.
type SRGB struct{}

// Convert implements Converter.
func (SRGB) Convert(c color.RGBA) [3]float32 {
	return [3]float32{srgbTable[c.R], srgbTable[c.G], srgbTable[c.B]}
}

var srgbTable = func() (t [256]float32) {
	for i := range t {
		t[i] = float32(Encode(float64(i) / 255))
	}
	return t
}()

// Encode applies the sRGB transfer function to a linear value in [0, 1].
func Encode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// ByName returns the converter for "srgb" or "linear".
func ByName(name string) (Converter, error) {
	switch name {
	case "", "srgb":
		return SRGB{}, nil
	case "linear":
		return Linear{}, nil
	default:
		return nil, fmt.Errorf("unknown color space %q", name)
	}
}
