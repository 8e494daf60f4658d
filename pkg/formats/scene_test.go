package formats

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/brickatlas/pkg/brick"
)

const harborScene = `
description: harbor
palette:
  - "#ff0000"
  - [0, 128, 255]
  - "#11223344"
assets: [PB_DefaultBrick]
bricks:
  - asset: 0
    position: [0, 0, 6]
    size: [5, 5, 6]
  - asset: PB_DefaultWedge
    position: [10, -20, 12]
    size: [10, 10, 6]
    rotation: 90
    direction: x+
    color: 2
  - asset: B_2x2_Round
    position: [40, 40, 6]
    color: "#00ff00"
    visible: false
  - asset: PB_DefaultWedge
    color: [1, 2, 3, 4]
`

func TestParseScene(t *testing.T) {
	save, err := ParseScene([]byte(harborScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if save.Description != "harbor" {
		t.Errorf("expected description 'harbor', got %q", save.Description)
	}
	if save.BrickCount != 4 {
		t.Errorf("expected brick count 4, got %d", save.BrickCount)
	}

	wantAssets := []string{"PB_DefaultBrick", "PB_DefaultWedge", "B_2x2_Round"}
	if len(save.Assets) != len(wantAssets) {
		t.Fatalf("expected assets %v, got %v", wantAssets, save.Assets)
	}
	for i := range wantAssets {
		if save.Assets[i] != wantAssets[i] {
			t.Errorf("asset %d: expected %q, got %q", i, wantAssets[i], save.Assets[i])
		}
	}

	wantPalette := []color.RGBA{
		{R: 255, A: 255},
		{G: 128, B: 255, A: 255},
		{R: 0x11, G: 0x22, B: 0x33, A: 0x44},
	}
	for i := range wantPalette {
		if save.Palette[i] != wantPalette[i] {
			t.Errorf("palette %d: expected %v, got %v", i, wantPalette[i], save.Palette[i])
		}
	}

	if len(save.Bricks) != 4 {
		t.Fatalf("expected 4 bricks, got %d", len(save.Bricks))
	}

	b := save.Bricks[0]
	if !b.Procedural || b.Size != (brick.Size{X: 5, Y: 5, Z: 6}) {
		t.Errorf("expected procedural size 5x5x6, got %+v (procedural=%v)", b.Size, b.Procedural)
	}
	if b.Direction != brick.ZPositive || b.Rotation != brick.Deg0 {
		t.Errorf("expected default orientation, got %v %v", b.Direction, b.Rotation)
	}
	if b.Color != brick.PaletteColor(0) || !b.Visible {
		t.Errorf("expected palette 0 and visible, got %+v", b)
	}

	b = save.Bricks[1]
	if b.AssetIndex != 1 || b.Rotation != brick.Deg90 || b.Direction != brick.XPositive {
		t.Errorf("expected wedge at 90 X+, got asset %d %v %v", b.AssetIndex, b.Rotation, b.Direction)
	}
	if b.Position != (brick.Position{X: 10, Y: -20, Z: 12}) {
		t.Errorf("unexpected position %+v", b.Position)
	}
	if b.Color != brick.PaletteColor(2) {
		t.Errorf("expected palette color 2, got %+v", b.Color)
	}

	b = save.Bricks[2]
	if b.Procedural {
		t.Error("expected unset size for a catalog asset")
	}
	if b.Visible {
		t.Error("expected brick to be invisible")
	}
	if b.Color != brick.InlineColor(color.RGBA{G: 255, A: 255}) {
		t.Errorf("expected inline green, got %+v", b.Color)
	}

	b = save.Bricks[3]
	if b.AssetIndex != 1 {
		t.Errorf("expected repeated asset name to reuse index 1, got %d", b.AssetIndex)
	}
	if b.Color != brick.InlineColor(color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("expected inline color from list, got %+v", b.Color)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"rotation", "bricks: [{asset: 0, rotation: 45}]", ErrInvalidRotation},
		{"direction", "bricks: [{asset: 0, direction: up}]", ErrInvalidDirection},
		{"hex color", `bricks: [{asset: 0, color: "#12345"}]`, ErrInvalidColor},
		{"channel count", "bricks: [{asset: 0, color: [1, 2]}]", ErrInvalidColor},
		{"channel range", "palette: [[1, 2, 300]]", ErrInvalidColor},
		{"map color", "bricks: [{asset: 0, color: {r: 1}}]", ErrInvalidColor},
		{"position", "bricks: [{asset: 0, position: [1, 2]}]", ErrInvalidVector},
		{"size", "bricks: [{asset: 0, size: [1, 2, 3, 4]}]", ErrInvalidVector},
		{"missing asset", "bricks: [{position: [0, 0, 0]}]", ErrInvalidAsset},
		{"list asset", "bricks: [{asset: [1]}]", ErrInvalidAsset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSceneInvalidYAML(t *testing.T) {
	if _, err := ParseScene([]byte("bricks: [unterminated")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParseSceneDeclaredCount(t *testing.T) {
	save, err := ParseScene([]byte("brick_count: 99\nbricks: [{asset: 0}]"))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}
	if save.BrickCount != 99 {
		t.Errorf("expected declared count 99, got %d", save.BrickCount)
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(harborScene), 0644); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}
	save, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if len(save.Bricks) != 4 {
		t.Errorf("expected 4 bricks, got %d", len(save.Bricks))
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
