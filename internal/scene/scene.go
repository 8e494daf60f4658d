// Package scene turns a decoded save into a render-ready triangle buffer.
//
// Prepare resolves sizes, orients bricks, hides exact duplicates and orders
// bricks by height. Build then streams the visible bricks through the
// silhouette tables into a flat vertex buffer with a height-bucket index.
// A prepared Scene is never modified, so any number of builds may run on it.
package scene

import (
	"errors"
	"image/color"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/brickatlas/internal/logger"
	"github.com/Faultbox/brickatlas/pkg/brick"
)

// ErrNilSave is returned when Prepare is given no save.
var ErrNilSave = errors.New("nil save")

// Scene is a prepared save.
type Scene struct {
	Description string
	Declared    int // brick count from the save header

	// Bricks holds the bricks visible in the save, in load order, with
	// oriented sizes.
	Bricks  []Placed
	Visible Visibility // survivors of deduplication
	Order   []int      // indices into Bricks, ascending by top

	Palette []color.RGBA

	Hidden    int // bricks the save itself marks invisible
	Discarded int // bricks hidden by deduplication

	// MinHeight and MaxHeight span every brick in Bricks, including
	// discarded ones. Both are zero for an empty scene.
	MinHeight, MaxHeight int32
}

// Prepare validates the save and runs the size, orientation, dedup and sort
// stages. The save is not modified.
func Prepare(save *brick.Save) (*Scene, error) {
	if save == nil {
		return nil, ErrNilSave
	}
	if err := Validate(save); err != nil {
		return nil, err
	}

	s := &Scene{
		Description: save.Description,
		Declared:    save.BrickCount,
		Bricks:      make([]Placed, 0, len(save.Bricks)),
		Palette:     save.Palette,
	}

	for _, b := range save.Bricks {
		if !b.Visible {
			s.Hidden++
			continue
		}
		s.Bricks = append(s.Bricks, Place(save.Assets[b.AssetIndex], b))
	}

	s.Visible = Deduplicate(s.Bricks, nil)
	s.Discarded = len(s.Bricks) - s.Visible.Count()
	s.Order = SortByHeight(s.Bricks)
	s.MinHeight, s.MaxHeight = heightRange(s.Bricks)

	logger.Debug("scene prepared",
		zap.Int("loaded", len(save.Bricks)),
		zap.Int("hidden", s.Hidden),
		zap.Int("discarded", s.Discarded),
		zap.Int32("minHeight", s.MinHeight),
		zap.Int32("maxHeight", s.MaxHeight),
	)

	return s, nil
}

// VisibleCount returns the number of bricks that will be drawn.
func (s *Scene) VisibleCount() int {
	return s.Visible.Count()
}

// Extent returns the centroid and bounds accumulator over visible bricks.
func (s *Scene) Extent() Extent {
	e := NewExtent()
	for i, p := range s.Bricks {
		if s.Visible.Has(i) {
			e.Add(p)
		}
	}
	return e
}

func heightRange(bricks []Placed) (lo, hi int32) {
	if len(bricks) == 0 {
		return 0, 0
	}
	lo, hi = math.MaxInt32, math.MinInt32
	for _, p := range bricks {
		lo = min(lo, p.Bottom())
		hi = max(hi, p.Top())
	}
	return lo, hi
}
