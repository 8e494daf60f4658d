package colorspace

import (
	"image/color"
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	got := Linear{}.Convert(color.RGBA{R: 255, G: 51, B: 0, A: 255})
	want := [3]float32{1, 0.2, 0}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("channel %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSRGBEndpoints(t *testing.T) {
	got := SRGB{}.Convert(color.RGBA{R: 0, G: 255, B: 1, A: 255})
	if got[0] != 0 {
		t.Errorf("expected black to stay 0, got %v", got[0])
	}
	if math.Abs(float64(got[1])-1) > 1e-6 {
		t.Errorf("expected white to stay 1, got %v", got[1])
	}
	if want := Encode(1.0 / 255); math.Abs(float64(got[2])-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, got[2])
	}
}

func TestSRGBBrightensMidtones(t *testing.T) {
	mid := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lin := Linear{}.Convert(mid)
	enc := SRGB{}.Convert(mid)
	if enc[0] <= lin[0] {
		t.Errorf("expected encoded midtone above linear, got %v <= %v", enc[0], lin[0])
	}
}

func TestEncodeKnee(t *testing.T) {
	if got, want := Encode(0.002), 12.92*0.002; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected linear segment %v, got %v", want, got)
	}
}

func TestEncodeMonotonic(t *testing.T) {
	prev := -1.0
	for _, v := range []float64{0, 0.001, 0.0031308, 0.0031309, 0.01, 0.2, 0.5, 0.9, 1} {
		got := Encode(v)
		if got <= prev {
			t.Errorf("Encode(%v) = %v, expected above %v", v, got, prev)
		}
		prev = got
	}
}

func TestToRGBAClamps(t *testing.T) {
	got := ToRGBA(-1, 0.5, 2, 1)
	want := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Converter
		wantErr bool
	}{
		{"", SRGB{}, false},
		{"srgb", SRGB{}, false},
		{"linear", Linear{}, false},
		{"cmyk", nil, true},
	}
	for _, tt := range tests {
		got, err := ByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ByName(%q): unexpected error state %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ByName(%q): expected %T, got %T", tt.name, tt.want, got)
		}
	}
}
