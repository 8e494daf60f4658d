// Package formats reads brick scenes and writes built vertex buffers.
package formats

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/brickatlas/pkg/brick"
)

// Scene document errors.
var (
	ErrInvalidRotation  = errors.New("invalid rotation: expected 0, 90, 180 or 270")
	ErrInvalidDirection = errors.New("invalid direction: expected X+, X-, Y+, Y-, Z+ or Z-")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidVector    = errors.New("invalid vector: expected 3 integers")
	ErrInvalidAsset     = errors.New("invalid asset reference")
)

// sceneDoc is the YAML layout of a scene file.
//
//	description: harbor
//	palette: ["#ff0000", [0, 128, 255, 255]]
//	assets: [PB_DefaultBrick]
//	bricks:
//	  - asset: PB_DefaultWedge   # name or index into assets
//	    position: [0, 0, 6]
//	    size: [10, 10, 6]        # omit for fixed-size assets
//	    rotation: 90
//	    direction: Z+
//	    color: 0                 # palette index or inline "#rrggbb[aa]"
type sceneDoc struct {
	Description string      `yaml:"description"`
	BrickCount  int         `yaml:"brick_count"`
	Palette     []yaml.Node `yaml:"palette"`
	Assets      []string    `yaml:"assets"`
	Bricks      []brickDoc  `yaml:"bricks"`
}

type brickDoc struct {
	Asset     yaml.Node `yaml:"asset"`
	Position  []int32   `yaml:"position"`
	Size      []uint32  `yaml:"size"`
	Rotation  int       `yaml:"rotation"`
	Direction string    `yaml:"direction"`
	Color     yaml.Node `yaml:"color"`
	Visible   *bool     `yaml:"visible"`
}

// LoadScene reads and parses a scene file from disk.
func LoadScene(path string) (*brick.Save, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses a YAML scene document. Asset names used by bricks but
// missing from the assets list are appended to it.
func ParseScene(data []byte) (*brick.Save, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	save := &brick.Save{
		Description: doc.Description,
		BrickCount:  doc.BrickCount,
		Assets:      append([]string(nil), doc.Assets...),
		Palette:     make([]color.RGBA, 0, len(doc.Palette)),
		Bricks:      make([]brick.Brick, 0, len(doc.Bricks)),
	}
	if save.BrickCount == 0 {
		save.BrickCount = len(doc.Bricks)
	}

	assetIndex := make(map[string]uint32, len(save.Assets))
	for i, name := range save.Assets {
		if _, ok := assetIndex[name]; !ok {
			assetIndex[name] = uint32(i)
		}
	}

	for i := range doc.Palette {
		c, err := parseRGBA(&doc.Palette[i])
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		save.Palette = append(save.Palette, c)
	}

	for i := range doc.Bricks {
		b, err := doc.Bricks[i].toBrick(save, assetIndex)
		if err != nil {
			return nil, fmt.Errorf("brick %d: %w", i, err)
		}
		save.Bricks = append(save.Bricks, b)
	}

	return save, nil
}

func (d *brickDoc) toBrick(save *brick.Save, assetIndex map[string]uint32) (brick.Brick, error) {
	b := brick.Brick{Visible: true}

	idx, err := resolveAsset(&d.Asset, save, assetIndex)
	if err != nil {
		return b, err
	}
	b.AssetIndex = idx

	switch len(d.Position) {
	case 0:
	case 3:
		b.Position = brick.Position{X: d.Position[0], Y: d.Position[1], Z: d.Position[2]}
	default:
		return b, fmt.Errorf("position: %w", ErrInvalidVector)
	}

	switch len(d.Size) {
	case 0:
	case 3:
		b.Size = brick.Size{X: d.Size[0], Y: d.Size[1], Z: d.Size[2]}
		b.Procedural = true
	default:
		return b, fmt.Errorf("size: %w", ErrInvalidVector)
	}

	rot, ok := brick.RotationFromDegrees(d.Rotation)
	if !ok {
		return b, fmt.Errorf("%w: %d", ErrInvalidRotation, d.Rotation)
	}
	b.Rotation = rot

	b.Direction = brick.ZPositive
	if d.Direction != "" {
		dir, ok := brick.ParseDirection(d.Direction)
		if !ok {
			return b, fmt.Errorf("%w: %q", ErrInvalidDirection, d.Direction)
		}
		b.Direction = dir
	}

	c, err := parseBrickColor(&d.Color)
	if err != nil {
		return b, err
	}
	b.Color = c

	if d.Visible != nil {
		b.Visible = *d.Visible
	}
	return b, nil
}

// resolveAsset accepts an integer index or an asset name.
func resolveAsset(n *yaml.Node, save *brick.Save, assetIndex map[string]uint32) (uint32, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidAsset)
	}
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: line %d", ErrInvalidAsset, n.Line)
	}
	if n.ShortTag() == "!!int" {
		v, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAsset, n.Value)
		}
		return uint32(v), nil
	}
	name := strings.TrimSpace(n.Value)
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidAsset)
	}
	if idx, ok := assetIndex[name]; ok {
		return idx, nil
	}
	idx := uint32(len(save.Assets))
	save.Assets = append(save.Assets, name)
	assetIndex[name] = idx
	return idx, nil
}

// parseBrickColor accepts a palette index or an inline color.
// A missing color means palette entry 0.
func parseBrickColor(n *yaml.Node) (brick.Color, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return brick.PaletteColor(0), nil
	}
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!int" {
		v, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return brick.Color{}, fmt.Errorf("%w: palette index %q", ErrInvalidColor, n.Value)
		}
		return brick.PaletteColor(uint32(v)), nil
	}
	c, err := parseRGBA(n)
	if err != nil {
		return brick.Color{}, err
	}
	return brick.InlineColor(c), nil
}

// parseRGBA accepts "#rrggbb", "#rrggbbaa" or a list of 3 or 4 channel values.
func parseRGBA(n *yaml.Node) (color.RGBA, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseHexColor(n.Value)
	case yaml.SequenceNode:
		var ch []uint8
		if err := n.Decode(&ch); err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		switch len(ch) {
		case 3:
			return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
		case 4:
			return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: expected 3 or 4 channels, got %d", ErrInvalidColor, len(ch))
	default:
		return color.RGBA{}, fmt.Errorf("%w: line %d", ErrInvalidColor, n.Line)
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
